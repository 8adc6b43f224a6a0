package structured

import (
	"regexp"
	"strconv"
	"strings"
)

type templateDef struct {
	layer          func(e *Extractor, text string, data map[string]interface{})
	requiredFields []fieldPath
}

type fieldPath struct {
	section string
	field   string
}

// completeness counts how many of the template's required fields the
// extraction actually filled. Templates without requirements are complete by
// definition.
func (t templateDef) completeness(data map[string]interface{}) float64 {
	if len(t.requiredFields) == 0 {
		return 1.0
	}
	present := 0
	for _, path := range t.requiredFields {
		section, isOk := data[path.section].(map[string]interface{})
		if !isOk {
			continue
		}
		if isFilled(section[path.field]) {
			present++
		}
	}
	return float64(present) / float64(len(t.requiredFields))
}

var (
	admissionReasonRe  = regexp.MustCompile(`(?i)(?:reason for admission|admitted for|motivo da internacao)\s*:?\s*([^\n]+)`)
	referringRe        = regexp.MustCompile(`(?i)(?:referring physician|referred by|medico solicitante)\s*:?\s*([^\n]+)`)
	dispositionRe      = regexp.MustCompile(`(?i)(?:discharge disposition|discharged to|destino)\s*:?\s*([^\n]+)`)
	followupRe         = regexp.MustCompile(`(?i)(?:follow.?up|retorno)\s*(?:in|with|em|com)?\s*:?\s*([^\n]+)`)
	dischargeMedsRe    = regexp.MustCompile(`(?i)discharge medications\s*:?\s*([^\n]+)`)
	modalityRe         = regexp.MustCompile(`(?i)\b(ct|mri|x-?ray|ultrasound|radiograph|pet|tomografia|ressonancia|ultrassom)\b`)
	findingsRe         = regexp.MustCompile(`(?i)(?:findings|achados)\s*:\s*([^\n]+(?:\n(?:[^\n:]+)$)*)`)
	impressionRe       = regexp.MustCompile(`(?i)(?:impression|impressao)\s*:\s*([^\n]+)`)
	procedureNameRe    = regexp.MustCompile(`(?i)procedure(?:\s+performed|\s+name)?\s*:\s*([^\n]+)`)
	anesthesiaRe       = regexp.MustCompile(`(?i)anesthesia\s*:?\s*([^\n]+)`)
	complicationsRe    = regexp.MustCompile(`(?i)complications\s*:?\s*([^\n]+)`)
	labResultLineRe    = regexp.MustCompile(`(?i)\b(hemoglobin|hematocrit|glucose|creatinine|urea|sodium|potassium|wbc|platelets|troponin|lactate|crp|inr|tsh|bilirubin|albumin|cholesterol)\s*[:=]?\s*(\d+(?:[.,]\d+)?)\s*([a-z%/^0-9]*)`)
)

// The dispatch table replaces a template-name conditional chain. Each layer
// only lays new keys on top of the general extraction.
var templates = map[string]templateDef{
	TemplateGeneral: {},
	TemplateAdmission: {
		layer: layerAdmission,
		requiredFields: []fieldPath{
			{"admission_details", "admission_reason"},
			{"clinical_data", "diagnoses"},
		},
	},
	TemplateDischarge: {
		layer: layerDischarge,
		requiredFields: []fieldPath{
			{"discharge_details", "disposition"},
			{"clinical_data", "medications"},
		},
	},
	TemplateLabReport: {
		layer: layerLabReport,
		requiredFields: []fieldPath{
			{"lab_details", "results"},
		},
	},
	TemplateRadiology: {
		layer: layerRadiology,
		requiredFields: []fieldPath{
			{"imaging_details", "findings"},
		},
	},
	TemplateProcedure: {
		layer: layerProcedure,
		requiredFields: []fieldPath{
			{"procedure_details", "procedure_name"},
		},
	},
}

func layerAdmission(e *Extractor, text string, data map[string]interface{}) {
	details := map[string]interface{}{
		"admission_reason":    firstGroup(admissionReasonRe, text),
		"referring_physician": firstGroup(referringRe, text),
	}
	data["admission_details"] = details
}

func layerDischarge(e *Extractor, text string, data map[string]interface{}) {
	details := map[string]interface{}{
		"disposition":           firstGroup(dispositionRe, text),
		"followup":              firstGroup(followupRe, text),
		"discharge_medications": splitList(firstGroup(dischargeMedsRe, text)),
	}
	data["discharge_details"] = details
}

func layerLabReport(e *Extractor, text string, data map[string]interface{}) {
	var results []map[string]interface{}
	for _, match := range labResultLineRe.FindAllStringSubmatch(text, -1) {
		test := strings.ToLower(match[1])
		rawValue := strings.ReplaceAll(match[2], ",", ".")
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			continue
		}
		result := map[string]interface{}{
			"test":  test,
			"value": value,
			"unit":  strings.ToLower(match[3]),
		}
		if normalRange, isOk := e.tables.LabNormalRanges[test]; isOk {
			result["abnormal"] = value < normalRange.Low || value >= normalRange.High
		}
		results = append(results, result)
	}
	data["lab_details"] = map[string]interface{}{"results": results}
}

func layerRadiology(e *Extractor, text string, data map[string]interface{}) {
	modality := ""
	if m := modalityRe.FindStringSubmatch(text); m != nil {
		modality = strings.ToLower(m[1])
	}
	details := map[string]interface{}{
		"modality":   modality,
		"findings":   firstGroup(findingsRe, text),
		"impression": firstGroup(impressionRe, text),
	}
	data["imaging_details"] = details
}

func layerProcedure(e *Extractor, text string, data map[string]interface{}) {
	details := map[string]interface{}{
		"procedure_name": firstGroup(procedureNameRe, text),
		"anesthesia":     firstGroup(anesthesiaRe, text),
		"complications":  firstGroup(complicationsRe, text),
	}
	data["procedure_details"] = details
}

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
