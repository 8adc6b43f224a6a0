package types

import "encoding/json"

type EntityType byte

const (
	EntityUnknown    EntityType = 0
	EntitySymptom    EntityType = 1
	EntityCondition  EntityType = 2
	EntityMedication EntityType = 3
	EntityAnatomy    EntityType = 4
	EntityProcedure  EntityType = 5
	EntityLabTest    EntityType = 6
	EntityVitalSign  EntityType = 7
	EntityDosage     EntityType = 8
	EntityTemporal   EntityType = 9
	EntityPerson     EntityType = 10
)

func (t EntityType) Name() string {
	switch t {
	case EntitySymptom:
		return "SYMPTOM"
	case EntityCondition:
		return "CONDITION"
	case EntityMedication:
		return "MEDICATION"
	case EntityAnatomy:
		return "ANATOMY"
	case EntityProcedure:
		return "PROCEDURE"
	case EntityLabTest:
		return "LAB_TEST"
	case EntityVitalSign:
		return "VITAL_SIGN"
	case EntityDosage:
		return "DOSAGE"
	case EntityTemporal:
		return "TEMPORAL"
	case EntityPerson:
		return "PERSON"
	}
	return "UNKNOWN"
}

func (t EntityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name())
}

func (t *EntityType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, known := range []EntityType{
		EntitySymptom, EntityCondition, EntityMedication, EntityAnatomy,
		EntityProcedure, EntityLabTest, EntityVitalSign, EntityDosage,
		EntityTemporal, EntityPerson,
	} {
		if known.Name() == name {
			*t = known
			return nil
		}
	}
	*t = EntityUnknown
	return nil
}

// MedicalEntity is one extracted mention. Immutable once the extractor has
// filtered and resolved overlaps; the span indexes the full note text.
type MedicalEntity struct {
	Span
	Text           string            `json:"text"`
	Type           EntityType        `json:"type"`
	Confidence     float64           `json:"confidence"`
	NormalizedForm string            `json:"normalized_form,omitempty"`
	Section        string            `json:"section,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
}

func (ent *MedicalEntity) GetSpan() *Span {
	return &ent.Span
}
