// Package prompt assembles the delegated-call prompt: language exclusivity,
// domain persona, profile fields, domain safety rules, then the literal user
// message. Rendering is deterministic for identical inputs.
package prompt

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/sahayak-assistant/server/internal/assistant/model"
)

//go:embed template/system_prompt.txt
var systemPrompt string

// SafeMedicines is the only set of medicines the medical persona may suggest.
var SafeMedicines = []string{
	"paracetamol", "oral rehydration solution (ORS)", "cetirizine",
	"antacid gel", "povidone-iodine ointment",
}

// Render produces the full prompt for one delegated message.
func Render(ctx context.Context, cfg model.PersonaConfig, profile model.Profile, userMessage string) (string, error) {
	domain := model.ParseDomain(cfg.Domain)

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPrompt),
	)
	vars := map[string]any{
		"Language":     profile.Language.String(),
		"Persona":      persona(cfg.AssistantName, domain),
		"ProfileLines": profileLines(profile, domain),
		"SafetyRules":  safetyRules(domain),
		"UserMessage":  userMessage,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("prompt render: empty result")
	}
	return msgs[0].Content, nil
}

func persona(name string, domain model.Domain) string {
	if domain == model.DomainMedical {
		return fmt.Sprintf("You are %s, a cautious medical triage assistant for rural India. "+
			"Give short, general self-care guidance and always advise visiting a doctor for anything persistent or severe.", name)
	}
	return fmt.Sprintf("You are %s, a practical agriculture advisor for Indian farmers. "+
		"Give short, actionable guidance suited to smallholder farms and the farmer's region.", name)
}

func profileLines(p model.Profile, domain model.Domain) string {
	lines := []string{"- language: " + p.Language.String()}
	for _, field := range domain.Fields() {
		value := p.Get(field)
		if value == "" {
			value = "not provided"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", field, value))
	}
	return strings.Join(lines, "\n")
}

func safetyRules(domain model.Domain) string {
	if domain != model.DomainMedical {
		return ""
	}
	return "Safety rules:\n" +
		"- You may only suggest these over-the-counter medicines: " + strings.Join(SafeMedicines, ", ") + ".\n" +
		"- Never prescribe antibiotics, prescription-only or controlled substances, or dosages for them.\n\n"
}
