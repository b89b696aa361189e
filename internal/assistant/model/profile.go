package model

import "strings"

// Domain selects which persona the assistant runs as.
type Domain string

const (
	DomainAgriculture Domain = "agriculture"
	DomainMedical     Domain = "medical"
)

// ParseDomain normalises a configured domain value, defaulting to agriculture.
func ParseDomain(v string) Domain {
	if strings.EqualFold(strings.TrimSpace(v), string(DomainMedical)) {
		return DomainMedical
	}
	return DomainAgriculture
}

// Fields returns the domain's profile attribute names in presentation order.
func (d Domain) Fields() []string {
	if d == DomainMedical {
		return []string{FieldAge, FieldGender, FieldSymptoms}
	}
	return []string{FieldState, FieldDistrict, FieldCrop}
}

// Canonical attribute names shared by frames, profiles and the profile store.
const (
	FieldState    = "state"
	FieldDistrict = "district"
	FieldCrop     = "crop"
	FieldAge      = "age"
	FieldGender   = "gender"
	FieldSymptoms = "symptoms"
)

// Profile is the session's merged view of everything the client has told us.
// A field omitted in an update keeps its previously merged value; updates
// never reset a field to empty.
type Profile struct {
	Language   Language
	Attributes map[string]string
}

// NewProfile returns the default profile assigned to a fresh session.
func NewProfile() Profile {
	return Profile{
		Language:   DefaultLanguage,
		Attributes: make(map[string]string),
	}
}

// Merge applies the optional fields of an inbound frame using partial-update
// semantics: only non-empty values overwrite.
func (p *Profile) Merge(f InboundFrame) {
	p.Language = ParseLanguage(f.Language, p.Language)
	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}
	for name, value := range f.attributes() {
		if v := strings.TrimSpace(value); v != "" {
			p.Attributes[name] = v
		}
	}
}

// Get returns the named attribute, empty when unknown.
func (p Profile) Get(name string) string {
	return p.Attributes[name]
}

// StoreFields flattens the profile into the field map persisted by the
// profile store. Only known fields are written so a record stays idempotent
// under last-write-wins per field.
func (p Profile) StoreFields() map[string]string {
	fields := map[string]string{"language": p.Language.String()}
	for name, value := range p.Attributes {
		fields[name] = value
	}
	return fields
}

// Missing reports the first domain field the profile has no value for, and
// false when the profile is complete for that domain.
func (p Profile) Missing(d Domain) (string, bool) {
	for _, name := range d.Fields() {
		if strings.TrimSpace(p.Attributes[name]) == "" {
			return name, true
		}
	}
	return "", false
}
