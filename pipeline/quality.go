package pipeline

import (
	"clinscribe.com/cna/types"
	"clinscribe.com/cna/utils"
)

const (
	completenessWeight = 0.30
	clarityWeight      = 0.20
	detailWeight       = 0.20
	structureWeight    = 0.15
	objectivityWeight  = 0.15

	// Clarity has no real implementation; the constant matches historical
	// behavior downstream consumers calibrate against.
	clarityStub = 0.9
)

// Section groups counted toward completeness; either member satisfies the
// group.
var completenessGroups = [][]string{
	{types.SectionChiefComplaint},
	{types.SectionHistory, types.SectionHPI},
	{types.SectionExamination, types.SectionPhysicalExam},
	{types.SectionAssessment},
	{types.SectionPlan},
}

func scoreQuality(text string, sections types.Sections, entities []types.MedicalEntity) float64 {
	present := 0
	for _, group := range completenessGroups {
		for _, name := range group {
			if _, isOk := sections[name]; isOk {
				present++
				break
			}
		}
	}
	completeness := float64(present) / float64(len(completenessGroups))

	detail := 0.0
	wordCount := len(utils.Tokenize(text))
	if wordCount > 0 {
		detail = float64(len(entities)) / float64(wordCount) * 50
		if detail > 1.0 {
			detail = 1.0
		}
	}

	structure := 0.5
	if len(sections) > 1 {
		structure = 1.0
	}

	objectivity := float64(utils.CountNumericTokens(text)) / 10
	if objectivity > 1.0 {
		objectivity = 1.0
	}

	return completenessWeight*completeness +
		clarityWeight*clarityStub +
		detailWeight*detail +
		structureWeight*structure +
		objectivityWeight*objectivity
}
