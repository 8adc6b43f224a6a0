package dict

import (
	"regexp"

	"clinscribe.com/cna/types"
)

// SectionPattern holds the ordered heading regex variants for one section
// name. The first variant that matches wins; later variants are not tried.
// Every variant anchors the heading at a line start and captures the section
// body up to the next heading-like line, a blank line, or end of text.
type SectionPattern struct {
	Section  string
	Variants []*regexp.Regexp
}

const sectionBody = `\s*((?:.|\n)*?)(?:\n[a-zA-Z][a-zA-Z /]{2,40}:|\n\s*\n|$)`

func heading(names string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|\n)\s*(?:` + names + `)\s*:` + sectionBody)
}

func getSectionPatterns() []SectionPattern {
	return []SectionPattern{
		{
			Section: types.SectionChiefComplaint,
			Variants: []*regexp.Regexp{
				heading(`chief complaint|cc|presenting complaint|queixa principal|qp`),
			},
		},
		{
			Section: types.SectionHPI,
			Variants: []*regexp.Regexp{
				heading(`history of present illness|hpi|historia da doenca atual|hda`),
			},
		},
		{
			Section: types.SectionHistory,
			Variants: []*regexp.Regexp{
				heading(`past medical history|medical history|pmh|antecedentes|historia pregressa`),
				heading(`history`),
			},
		},
		{
			Section: types.SectionMedications,
			Variants: []*regexp.Regexp{
				heading(`medications|current medications|meds|medicamentos|medicacoes em uso`),
			},
		},
		{
			Section: types.SectionAllergies,
			Variants: []*regexp.Regexp{
				heading(`allergies|drug allergies|alergias`),
			},
		},
		{
			Section: types.SectionPhysicalExam,
			Variants: []*regexp.Regexp{
				heading(`physical exam(?:ination)?|pe|exame fisico|ef`),
			},
		},
		{
			Section: types.SectionExamination,
			Variants: []*regexp.Regexp{
				heading(`examination|exam|objective|objetivo`),
			},
		},
		{
			Section: types.SectionLabResults,
			Variants: []*regexp.Regexp{
				heading(`lab(?:oratory)? results|labs|laboratorio|exames laboratoriais`),
			},
		},
		{
			Section: types.SectionAssessment,
			Variants: []*regexp.Regexp{
				heading(`assessment|impression|diagnosis|avaliacao|hipotese diagnostica|hd`),
			},
		},
		{
			Section: types.SectionPlan,
			Variants: []*regexp.Regexp{
				heading(`plan|treatment plan|conduta|plano`),
			},
		},
	}
}
