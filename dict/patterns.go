package dict

import (
	"regexp"

	"clinscribe.com/cna/types"
)

// Baseline confidences per pattern class. Dictionary hits outrank generic
// regex matches; curated vitals regexes are trusted almost as much.
const (
	ConfidenceDictionary = 0.90
	ConfidenceVitals     = 0.90
	ConfidenceLabValue   = 0.85
	ConfidenceMedication = 0.80
	ConfidenceDosage     = 0.80
	ConfidenceTemporal   = 0.70
)

// Pattern is one pattern-bank entry: a compiled case-insensitive regex that
// yields candidates of a fixed type and baseline confidence.
type Pattern struct {
	Name       string
	Type       types.EntityType
	Confidence float64
	Re         *regexp.Regexp
}

func getPatterns() []Pattern {
	return []Pattern{
		{
			Name:       "blood_pressure",
			Type:       types.EntityVitalSign,
			Confidence: ConfidenceVitals,
			Re:         regexp.MustCompile(`(?i)\b\d{2,3}\s*/\s*\d{2,3}\s*mm\s?hg\b|(?i:\b(?:bp|blood pressure|pa|pressao arterial)[:\s]+\d{2,3}\s*/\s*\d{2,3}\b)`),
		},
		{
			Name:       "heart_rate",
			Type:       types.EntityVitalSign,
			Confidence: ConfidenceVitals,
			Re:         regexp.MustCompile(`(?i)\b(?:hr|heart rate|pulse|fc)[:\s]+\d{2,3}\s*(?:bpm)?\b`),
		},
		{
			Name:       "temperature",
			Type:       types.EntityVitalSign,
			Confidence: ConfidenceVitals,
			Re:         regexp.MustCompile(`(?i)\b(?:temp|temperature|temperatura)[:\s]+\d{2,3}(?:\.\d)?\s*(?:\x{00b0}?\s*[cf])?\b|\b\d{2,3}(?:\.\d)?\s*\x{00b0}\s*[cf]\b`),
		},
		{
			Name:       "oxygen_saturation",
			Type:       types.EntityVitalSign,
			Confidence: ConfidenceVitals,
			Re:         regexp.MustCompile(`(?i)\b(?:spo2|o2 sat|oxygen saturation|saturacao)[:\s]+\d{2,3}\s*%?`),
		},
		{
			Name:       "respiratory_rate",
			Type:       types.EntityVitalSign,
			Confidence: ConfidenceVitals,
			Re:         regexp.MustCompile(`(?i)\b(?:rr|respiratory rate|fr)[:\s]+\d{1,2}\b`),
		},
		{
			Name:       "dosage",
			Type:       types.EntityDosage,
			Confidence: ConfidenceDosage,
			Re:         regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:mg|mcg|g|ml|ui|units?)(?:\s*/\s*(?:day|dia|dose|kg))?\b`),
		},
		{
			Name:       "medication_suffix",
			Type:       types.EntityMedication,
			Confidence: ConfidenceMedication,
			Re:         regexp.MustCompile(`(?i)\b[a-z]{3,}(?:cillin|mycin|floxacin|azole|prazole|olol|dipine|pril|sartan|statin|formin|zepam|tidine|setron|parin)\b`),
		},
		{
			Name:       "lab_value",
			Type:       types.EntityLabTest,
			Confidence: ConfidenceLabValue,
			Re:         regexp.MustCompile(`(?i)\b(?:hemoglobin|hgb|hematocrit|hct|glucose|glicemia|creatinine|creatinina|urea|sodium|potassium|troponin|lactate|wbc|platelets?|inr|crp|tsh)\s*[:=]?\s*\d+(?:[.,]\d+)?\s*(?:mg/dl|g/dl|mmol/l|meq/l|ng/ml|x?10\^?\d*/?[u\x{00b5}]?l|%)?`),
		},
		{
			Name:       "temporal_duration",
			Type:       types.EntityTemporal,
			Confidence: ConfidenceTemporal,
			Re:         regexp.MustCompile(`(?i)\b(?:for|por|ha)\s+\d+\s+(?:minutes?|hours?|days?|weeks?|months?|years?|minutos?|horas?|dias?|semanas?|meses|anos?)\b|\b\d+\s+(?:days?|weeks?|months?|years?|dias?|semanas?|meses|anos?)\s+(?:ago|atras)\b`),
		},
		{
			Name:       "temporal_relative",
			Type:       types.EntityTemporal,
			Confidence: ConfidenceTemporal,
			Re:         regexp.MustCompile(`(?i)\b(?:yesterday|today|this morning|last night|last week|ontem|hoje|esta manha|na noite passada)\b`),
		},
		{
			Name:       "date",
			Type:       types.EntityTemporal,
			Confidence: ConfidenceTemporal,
			Re:         regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`),
		},
	}
}
