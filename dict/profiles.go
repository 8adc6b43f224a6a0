package dict

import (
	"regexp"

	"clinscribe.com/cna/types"
)

// Classification feature flags. Predicates live in the classifier; profiles
// reference flags by name.
const (
	FeatChiefComplaint   = "has_chief_complaint"
	FeatSOAPStructure    = "has_soap_structure"
	FeatLabValues        = "has_lab_values"
	FeatVitalSigns       = "has_vital_signs"
	FeatMedications      = "has_medications"
	FeatDischargeInstr   = "has_discharge_instructions"
	FeatProcedureDescr   = "has_procedure_description"
	FeatImagingFindings  = "has_imaging_findings"
	FeatAssessment       = "has_assessment"
	FeatPlan             = "has_plan"
)

// DocTypeProfile is one document-type scoring rule set. Raw score is
// keyword hits x KeywordWeight minus 0.5 per negative hit, plus 2.0 per
// structural match, 1.5 per required feature, 0.5 per bonus feature, then
// normalized against the profile's theoretical maximum and floored at 0.
type DocTypeProfile struct {
	Type               string
	Keywords           []string
	KeywordWeight      float64
	NegativeKeywords   []string
	StructuralPatterns []*regexp.Regexp
	RequiredFeatures   []string
	BonusFeatures      []string
}

func getDocTypeProfiles() []DocTypeProfile {
	return []DocTypeProfile{
		{
			Type:          types.DocTypeAdmission,
			Keywords:      []string{"admission", "admitted", "chief complaint", "history of present illness", "admit to", "internacao", "admissao"},
			KeywordWeight: 1.0,
			NegativeKeywords: []string{"discharge", "alta hospitalar"},
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*chief complaint\s*:`),
				regexp.MustCompile(`(?im)^\s*history of present illness\s*:`),
			},
			RequiredFeatures: []string{FeatChiefComplaint},
			BonusFeatures:    []string{FeatVitalSigns, FeatAssessment, FeatPlan},
		},
		{
			Type:          types.DocTypeDischarge,
			Keywords:      []string{"discharge", "discharged home", "discharge summary", "follow up", "hospital course", "alta hospitalar", "retorno"},
			KeywordWeight: 1.0,
			NegativeKeywords: []string{"admission note"},
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*discharge (?:medications|instructions|diagnosis)\s*:`),
				regexp.MustCompile(`(?im)^\s*hospital course\s*:`),
			},
			RequiredFeatures: []string{FeatDischargeInstr},
			BonusFeatures:    []string{FeatMedications, FeatPlan},
		},
		{
			Type:          types.DocTypeProgress,
			Keywords:      []string{"progress", "overnight", "remains", "continues", "stable", "improving", "evolucao", "estavel"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*s(?:ubjective)?\s*:`),
				regexp.MustCompile(`(?im)^\s*o(?:bjective)?\s*:`),
			},
			RequiredFeatures: []string{FeatSOAPStructure},
			BonusFeatures:    []string{FeatVitalSigns, FeatAssessment},
		},
		{
			Type:          types.DocTypeConsultation,
			Keywords:      []string{"consultation", "consulted", "thank you for", "referring", "recommendations", "parecer", "interconsulta"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*reason for consult(?:ation)?\s*:`),
				regexp.MustCompile(`(?im)^\s*recommendations\s*:`),
			},
			BonusFeatures: []string{FeatAssessment, FeatPlan},
		},
		{
			Type:          types.DocTypeEmergency,
			Keywords:      []string{"emergency", "triage", "ambulance", "acute", "er visit", "resuscitation", "emergencia", "pronto socorro"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*triage\s*:`),
				regexp.MustCompile(`(?im)^\s*mode of arrival\s*:`),
			},
			RequiredFeatures: []string{FeatChiefComplaint},
			BonusFeatures:    []string{FeatVitalSigns},
		},
		{
			Type:          types.DocTypeProcedure,
			Keywords:      []string{"procedure", "performed", "anesthesia", "incision", "operative", "complications", "procedimento", "anestesia"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*procedure (?:performed|name)?\s*:`),
				regexp.MustCompile(`(?im)^\s*(?:pre|post)-?operative diagnosis\s*:`),
			},
			RequiredFeatures: []string{FeatProcedureDescr},
		},
		{
			Type:          types.DocTypeLabReport,
			Keywords:      []string{"laboratory", "specimen", "reference range", "result", "collected", "laboratorio", "amostra"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*(?:test|exame)\s*(?:name)?\s*:`),
				regexp.MustCompile(`(?i)reference range`),
			},
			RequiredFeatures: []string{FeatLabValues},
		},
		{
			Type:          types.DocTypeRadiology,
			Keywords:      []string{"radiograph", "ct", "mri", "ultrasound", "impression", "contrast", "findings", "laudo", "radiografia"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?im)^\s*(?:findings|achados)\s*:`),
				regexp.MustCompile(`(?im)^\s*(?:impression|impressao)\s*:`),
				regexp.MustCompile(`(?im)^\s*technique\s*:`),
			},
			RequiredFeatures: []string{FeatImagingFindings},
		},
		{
			Type:          types.DocTypePrescription,
			Keywords:      []string{"prescription", "dispense", "refills", "take", "daily", "twice", "receita", "tomar", "comprimido"},
			KeywordWeight: 1.0,
			StructuralPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b\d+\s*(?:mg|mcg|ml)\b.*\b(?:daily|bid|tid|qid|once|twice|ao dia)\b`),
			},
			RequiredFeatures: []string{FeatMedications},
		},
		{
			Type:          types.DocTypeGeneral,
			Keywords:      []string{"patient", "paciente", "clinical", "note"},
			KeywordWeight: 0.5,
		},
	}
}
