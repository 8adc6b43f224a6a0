package structured

import (
	"regexp"
	"sort"
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

// Template names accepted by Extract.
const (
	TemplateGeneral   = "general"
	TemplateAdmission = "admission"
	TemplateDischarge = "discharge"
	TemplateLabReport = "lab_report"
	TemplateRadiology = "radiology"
	TemplateProcedure = "procedure"
)

// Metadata reports how much the extraction found. Confidence is the filled
// fraction of the general fields; completeness is the fraction of the
// template's required fields that are present.
type Metadata struct {
	Confidence   float64 `json:"confidence"`
	Completeness float64 `json:"completeness"`
}

type Extractor struct {
	tables *dict.Tables
}

func NewExtractor(tables *dict.Tables) *Extractor {
	return &Extractor{tables: tables}
}

var (
	ageRe      = regexp.MustCompile(`(?i)\b(\d{1,3})[\s-]*(?:year[\s-]*old|y/?o\b|anos)`)
	ageFieldRe = regexp.MustCompile(`(?i)\bage\s*:?\s*(\d{1,3})\b`)
	genderRe   = regexp.MustCompile(`(?i)\b(male|female|man|woman|masculino|feminino|homem|mulher)\b`)
	idRe       = regexp.MustCompile(`(?i)\b(?:mrn|medical record|patient id|prontuario)\s*[:#]?\s*([a-z0-9-]+)`)
	nameRe     = regexp.MustCompile(`(?i)(?:patient name|nome do paciente|name)\s*:\s*([^\n,]+)`)

	bpRe   = regexp.MustCompile(`\b(\d{2,3}\s*/\s*\d{2,3})\s*(?:mm\s?[Hh]g)?\b`)
	hrRe   = regexp.MustCompile(`(?i)\b(?:hr|heart rate|pulse|fc)\s*:?\s*(\d{2,3})`)
	tempRe = regexp.MustCompile(`(?i)\b(?:temp(?:erature)?|temperatura)\s*:?\s*(\d{2,3}(?:\.\d)?)`)

	diagnosisRe = regexp.MustCompile(`(?i)(?:diagnosis|impression|assessment|diagnostico|hipotese diagnostica)\s*:\s*([^\n]+)`)
	allergyRe   = regexp.MustCompile(`(?i)allerg(?:y|ies|ias?)\s*:?\s*([^\n]+)`)

	admissionDateRe = regexp.MustCompile(`(?i)(?:admission date|admitted on|data de internacao)\s*:?\s*([\d/.-]+)`)
	dischargeDateRe = regexp.MustCompile(`(?i)(?:discharge date|discharged on|data de alta)\s*:?\s*([\d/.-]+)`)
	durationRe      = regexp.MustCompile(`(?i)\b(?:for|por|ha)\s+(\d+\s+(?:minutes?|hours?|days?|weeks?|months?|years?|minutos?|horas?|dias?|semanas?|meses|anos?))\b`)

	medicationSuffixRe = regexp.MustCompile(`(?i)\b[a-z]{3,}(?:cillin|mycin|floxacin|azole|prazole|olol|dipine|pril|sartan|statin|formin|zepam|tidine|setron|parin)\b`)
)

// Extract applies the general field extraction plus the named template's
// layer. Template fields never overwrite general ones; they only add.
func (e *Extractor) Extract(text string, template string) (map[string]interface{}, Metadata, error) {
	if template == "" {
		template = TemplateGeneral
	}
	tmpl, isOk := templates[template]
	if !isOk {
		return nil, Metadata{}, &types.UnsupportedTemplateError{Name: template}
	}

	data := map[string]interface{}{
		"patient_info":  e.extractPatientInfo(text),
		"vital_signs":   e.extractVitals(text),
		"clinical_data": e.extractClinicalData(text),
	}
	if tmpl.layer != nil {
		tmpl.layer(e, text, data)
	}

	meta := Metadata{
		Confidence:   generalConfidence(data),
		Completeness: tmpl.completeness(data),
	}
	return data, meta, nil
}

func (e *Extractor) extractPatientInfo(text string) map[string]interface{} {
	info := map[string]interface{}{
		"age":    "",
		"gender": "",
		"id":     "",
		"name":   "",
	}
	if m := ageRe.FindStringSubmatch(text); m != nil {
		info["age"] = m[1]
	} else if m := ageFieldRe.FindStringSubmatch(text); m != nil {
		info["age"] = m[1]
	}
	if m := genderRe.FindStringSubmatch(text); m != nil {
		info["gender"] = normalizeGender(m[1])
	}
	if m := idRe.FindStringSubmatch(text); m != nil {
		info["id"] = m[1]
	}
	if m := nameRe.FindStringSubmatch(text); m != nil {
		info["name"] = strings.TrimSpace(m[1])
	}
	return info
}

func (e *Extractor) extractVitals(text string) map[string]interface{} {
	vitals := map[string]interface{}{
		"blood_pressure": "",
		"heart_rate":     "",
		"temperature":    "",
	}
	if m := bpRe.FindStringSubmatch(text); m != nil {
		vitals["blood_pressure"] = strings.ReplaceAll(m[1], " ", "")
	}
	if m := hrRe.FindStringSubmatch(text); m != nil {
		vitals["heart_rate"] = m[1]
	}
	if m := tempRe.FindStringSubmatch(text); m != nil {
		vitals["temperature"] = m[1]
	}
	return vitals
}

func (e *Extractor) extractClinicalData(text string) map[string]interface{} {
	data := map[string]interface{}{
		"medications":      e.extractMedications(text),
		"diagnoses":        []string{},
		"allergies":        []string{},
		"admission_date":   "",
		"discharge_date":   "",
		"symptom_duration": "",
	}
	if m := diagnosisRe.FindStringSubmatch(text); m != nil {
		data["diagnoses"] = []string{strings.TrimSpace(m[1])}
	}
	if m := allergyRe.FindStringSubmatch(text); m != nil {
		data["allergies"] = splitList(m[1])
	}
	if m := admissionDateRe.FindStringSubmatch(text); m != nil {
		data["admission_date"] = m[1]
	}
	if m := dischargeDateRe.FindStringSubmatch(text); m != nil {
		data["discharge_date"] = m[1]
	}
	if m := durationRe.FindStringSubmatch(text); m != nil {
		data["symptom_duration"] = strings.ToLower(m[1])
	}
	return data
}

// extractMedications merges suffix-pattern matches with dictionary hits,
// deduplicated and sorted for stable output.
func (e *Extractor) extractMedications(text string) []string {
	lowered := strings.ToLower(text)
	set := make(map[string]bool)

	for _, match := range medicationSuffixRe.FindAllString(lowered, -1) {
		set[match] = true
	}
	for _, term := range e.tables.Terms[types.EntityMedication] {
		if containsWord(lowered, term) {
			set[term] = true
		}
	}

	medications := make([]string, 0, len(set))
	for med := range set {
		medications = append(medications, med)
	}
	sort.Strings(medications)
	return medications
}

func generalConfidence(data map[string]interface{}) float64 {
	total := 0
	filled := 0
	for _, sectionName := range []string{"patient_info", "vital_signs", "clinical_data"} {
		section, isOk := data[sectionName].(map[string]interface{})
		if !isOk {
			continue
		}
		for _, value := range section {
			total++
			if isFilled(value) {
				filled++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(filled) / float64(total)
}

func isFilled(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	case []map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}

func normalizeGender(raw string) string {
	switch strings.ToLower(raw) {
	case "male", "man", "masculino", "homem":
		return "male"
	default:
		return "female"
	}
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func containsWord(lowered string, term string) bool {
	idx := strings.Index(lowered, term)
	if idx == -1 {
		return false
	}
	before := idx == 0 || !isWordChar(lowered[idx-1])
	afterIdx := idx + len(term)
	after := afterIdx == len(lowered) || !isWordChar(lowered[afterIdx])
	return before && after
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-'
}
