package handlers

import "github.com/sahayak-assistant/server/internal/assistant/model"

// Fixed reply texts per language. Every deterministic handler answers from
// these tables so a reply is always produced in the profile's language.

var timeFormats = map[model.Language]string{
	model.English: "⏰ Current time: %s",
	model.Hindi:   "⏰ अभी का समय: %s",
	model.Telugu:  "⏰ ప్రస్తుత సమయం: %s",
}

var weatherFormats = map[model.Language]string{
	model.English: "🌦 Weather for %s: %s, temperature %.0f°C, humidity %d%%.",
	model.Hindi:   "🌦 %s का मौसम: %s, तापमान %.0f°C, नमी %d%%।",
	model.Telugu:  "🌦 %s వాతావరణం: %s, ఉష్ణోగ్రత %.0f°C, తేమ %d%%.",
}

var weatherUnavailable = map[model.Language]string{
	model.English: "Weather data is unavailable right now. Please try again later.",
	model.Hindi:   "मौसम की जानकारी अभी उपलब्ध नहीं है। कृपया बाद में कोशिश करें।",
	model.Telugu:  "వాతావరణ సమాచారం ప్రస్తుతం అందుబాటులో లేదు. దయచేసి తర్వాత ప్రయత్నించండి.",
}

var weatherAskLocation = map[model.Language]string{
	model.English: "📍 Please tell me your district or state first, then ask about the weather again.",
	model.Hindi:   "📍 पहले अपना ज़िला या राज्य बताएं, फिर मौसम के बारे में पूछें।",
	model.Telugu:  "📍 ముందుగా మీ జిల్లా లేదా రాష్ట్రం చెప్పండి, తర్వాత వాతావరణం గురించి అడగండి.",
}

var priceFormats = map[model.Language]string{
	model.English: "💰 Market price for %s: around ₹%d per quintal.",
	model.Hindi:   "💰 %s का बाज़ार भाव: लगभग ₹%d प्रति क्विंटल।",
	model.Telugu:  "💰 %s మార్కెట్ ధర: సుమారు ₹%d ప్రతి క్వింటాల్.",
}

var priceUnknown = map[model.Language]string{
	model.English: "I don't have a price for that commodity yet. Try wheat, rice, cotton, maize or groundnut.",
	model.Hindi:   "उस वस्तु का भाव अभी मेरे पास नहीं है। गेहूं, चावल, कपास, मक्का या मूंगफली पूछ कर देखें।",
	model.Telugu:  "ఆ వస్తువు ధర నా దగ్గర ఇంకా లేదు. గోధుమ, వరి, పత్తి, మొక్కజొన్న లేదా వేరుశనగ అడగండి.",
}

var profileSummaryHeaders = map[model.Language]string{
	model.English: "✅ Your details so far:",
	model.Hindi:   "✅ अब तक की आपकी जानकारी:",
	model.Telugu:  "✅ ఇప్పటివరకు మీ వివరాలు:",
}

var profileComplete = map[model.Language]string{
	model.English: "Your profile is complete. Ask me anything!",
	model.Hindi:   "आपकी जानकारी पूरी है। अब कुछ भी पूछें!",
	model.Telugu:  "మీ వివరాలు పూర్తయ్యాయి. ఇప్పుడు ఏదైనా అడగండి!",
}

var greetings = map[model.Language]string{
	model.English: "👋 Welcome! I am here to help. Tell me your details or ask a question.",
	model.Hindi:   "👋 स्वागत है! मैं आपकी मदद के लिए हूं। अपनी जानकारी बताएं या कोई सवाल पूछें।",
	model.Telugu:  "👋 స్వాగతం! నేను మీకు సహాయం చేయడానికి ఉన్నాను. మీ వివరాలు చెప్పండి లేదా ప్రశ్న అడగండి.",
}

// fieldQuestions asks for one missing profile attribute.
var fieldQuestions = map[string]map[model.Language]string{
	model.FieldAge: {
		model.English: "🧾 What is your age?",
		model.Hindi:   "🧾 आपकी उम्र क्या है?",
		model.Telugu:  "🧾 మీ వయస్సు ఎంత?",
	},
	model.FieldGender: {
		model.English: "🧑‍⚕️ What is your gender? (Male / Female)",
		model.Hindi:   "🧑‍⚕️ आपका लिंग क्या है? (Male / Female)",
		model.Telugu:  "🧑‍⚕️ మీ లింగం ఏమిటి? (Male / Female)",
	},
	model.FieldSymptoms: {
		model.English: "❓ What problem are you facing? What symptoms do you have?",
		model.Hindi:   "❓ आपको क्या तकलीफ़ है? कौन से लक्षण दिख रहे हैं?",
		model.Telugu:  "❓ మీకు ఏ సమస్య ఉంది? మీకు ఏ లక్షణాలు కనిపిస్తున్నాయి?",
	},
	model.FieldState: {
		model.English: "📍 Which state are you in?",
		model.Hindi:   "📍 आप किस राज्य में हैं?",
		model.Telugu:  "📍 మీరు ఏ రాష్ట్రంలో ఉన్నారు?",
	},
	model.FieldDistrict: {
		model.English: "📍 Which district are you in?",
		model.Hindi:   "📍 आपका ज़िला कौन सा है?",
		model.Telugu:  "📍 మీ జిల్లా ఏది?",
	},
	model.FieldCrop: {
		model.English: "🌾 Which crop are you growing?",
		model.Hindi:   "🌾 आप कौन सी फसल उगा रहे हैं?",
		model.Telugu:  "🌾 మీరు ఏ పంట పండిస్తున్నారు?",
	},
}

func text(table map[model.Language]string, lang model.Language) string {
	if msg, ok := table[lang]; ok {
		return msg
	}
	return table[model.DefaultLanguage]
}

// Greeting is sent once when a session opens.
func Greeting(lang model.Language) string {
	return text(greetings, lang)
}
