package dict

import (
	"clinscribe.com/cna/types"
)

// Tables is the process-wide read-only configuration for the analysis core.
// Built once at startup and shared by reference between components; nothing
// mutates it after Load returns, so concurrent pipeline runs need no
// coordination.
type Tables struct {
	Terms                map[types.EntityType][]string
	Synonyms             map[types.EntityType]map[string]string
	Patterns             []Pattern
	SectionPatterns      []SectionPattern
	Profiles             []DocTypeProfile
	UrgencyAxes          map[string][]string
	Intensifiers         []string
	EmergencyKeywords    map[string]float64
	CriticalCombinations []CriticalCombination
	CriticalFindingTerms map[string]bool
	ClinicalKeywords     []string
	Stopwords            map[string]bool
	MedicalTerms         map[string]bool
	LabNormalRanges      map[string]NormalRange
}

// Sentiment axis names, also the keys of Tables.UrgencyAxes and of the
// sentiment result map.
const (
	AxisUrgency  = "urgency"
	AxisConcern  = "concern"
	AxisPain     = "pain_level"
	AxisDistress = "emotional_distress"
)

func Default() *Tables {
	return &Tables{
		Terms: map[types.EntityType][]string{
			types.EntitySymptom:    getSymptomTerms(),
			types.EntityCondition:  getConditionTerms(),
			types.EntityMedication: getMedicationTerms(),
			types.EntityAnatomy:    getAnatomyTerms(),
			types.EntityProcedure:  getProcedureTerms(),
			types.EntityLabTest:    getLabTestTerms(),
		},
		Synonyms:        getSynonyms(),
		Patterns:        getPatterns(),
		SectionPatterns: getSectionPatterns(),
		Profiles:        getDocTypeProfiles(),
		UrgencyAxes: map[string][]string{
			AxisUrgency:  getUrgencyAxisWords(),
			AxisConcern:  getConcernAxisWords(),
			AxisPain:     getPainAxisWords(),
			AxisDistress: getDistressAxisWords(),
		},
		Intensifiers:         getIntensifiers(),
		EmergencyKeywords:    getEmergencyKeywordWeights(),
		CriticalCombinations: getCriticalCombinations(),
		CriticalFindingTerms: getCriticalFindingTerms(),
		ClinicalKeywords:     getClinicalKeywords(),
		Stopwords:            getStopwords(),
		MedicalTerms:         buildMedicalTermSet(),
		LabNormalRanges:      getLabNormalRanges(),
	}
}
