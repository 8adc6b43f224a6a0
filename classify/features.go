package classify

import (
	"regexp"

	"clinscribe.com/cna/dict"
)

type featurePredicate struct {
	name string
	res  []*regexp.Regexp
}

// Feature predicates are evaluated once per document and shared by every
// profile scoring pass.
var featurePredicates = []featurePredicate{
	{
		name: dict.FeatChiefComplaint,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:chief complaint|cc|presenting complaint|queixa principal|qp)\s*:`),
		},
	},
	{
		name: dict.FeatLabValues,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:hemoglobin|glucose|creatinine|sodium|potassium|wbc|troponin|lactate)\s*[:=]?\s*\d`),
			regexp.MustCompile(`(?i)reference range`),
		},
	},
	{
		name: dict.FeatVitalSigns,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d{2,3}\s*/\s*\d{2,3}\s*mm\s?hg\b`),
			regexp.MustCompile(`(?i)\b(?:bp|hr|rr|spo2|temp(?:erature)?|heart rate|blood pressure)[:\s]+\d`),
		},
	},
	{
		name: dict.FeatMedications,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:mg|mcg|ml|units?)\b`),
			regexp.MustCompile(`(?im)^\s*(?:medications|meds|medicamentos)\s*:`),
		},
	},
	{
		name: dict.FeatDischargeInstr,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*discharge (?:instructions|medications|diagnosis)\s*:`),
			regexp.MustCompile(`(?i)\bfollow.?up (?:in|with)\b`),
		},
	},
	{
		name: dict.FeatProcedureDescr,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*procedure(?: performed| name)?\s*:`),
			regexp.MustCompile(`(?i)\binformed consent\b`),
		},
	},
	{
		name: dict.FeatImagingFindings,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:ct|mri|x-?ray|ultrasound|radiograph|tomografia)\b[\s\S]{0,200}(?:findings|impression|achados|impressao)\s*:`),
			regexp.MustCompile(`(?im)^\s*(?:technique|comparison)\s*:`),
		},
	},
	{
		name: dict.FeatAssessment,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:assessment|impression|avaliacao|hipotese diagnostica|hd)\s*:`),
		},
	},
	{
		name: dict.FeatPlan,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:plan|conduta|plano)\s*:`),
		},
	},
}

var soapHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*s(?:ubjective)?\s*:`),
	regexp.MustCompile(`(?im)^\s*o(?:bjective)?\s*:`),
	regexp.MustCompile(`(?im)^\s*a(?:ssessment)?\s*:`),
	regexp.MustCompile(`(?im)^\s*p(?:lan)?\s*:`),
}

// EvaluateFeatures computes every boolean feature flag for one document.
func EvaluateFeatures(text string) map[string]bool {
	features := make(map[string]bool, len(featurePredicates)+1)
	for _, pred := range featurePredicates {
		for _, re := range pred.res {
			if re.MatchString(text) {
				features[pred.name] = true
				break
			}
		}
	}

	soapCount := 0
	for _, re := range soapHeadings {
		if re.MatchString(text) {
			soapCount++
		}
	}
	if soapCount >= 3 {
		features[dict.FeatSOAPStructure] = true
	}

	return features
}
