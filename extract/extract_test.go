package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

func newExtractor(t *testing.T) Extractor {
	t.Helper()
	return NewExtractor(dict.Default())
}

func findByText(entities []types.MedicalEntity, text string) *types.MedicalEntity {
	for i := range entities {
		if entities[i].Text == text {
			return &entities[i]
		}
	}
	return nil
}

func TestExtractEmptyText(t *testing.T) {
	require.Empty(t, newExtractor(t)("", nil))
}

func TestExtractDictionaryEntities(t *testing.T) {
	text := "Patient has chest pain and fever. Started aspirin."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	chestPain := findByText(entities, "chest pain")
	require.NotNil(t, chestPain)
	require.Equal(t, types.EntitySymptom, chestPain.Type)
	require.Equal(t, dict.ConfidenceDictionary, chestPain.Confidence)
	require.Equal(t, "chest pain", chestPain.NormalizedForm)
	require.Equal(t, "chest pain", text[chestPain.Start:chestPain.End])

	fever := findByText(entities, "fever")
	require.NotNil(t, fever)
	require.Equal(t, types.EntitySymptom, fever.Type)

	aspirin := findByText(entities, "aspirin")
	require.NotNil(t, aspirin)
	require.Equal(t, types.EntityMedication, aspirin.Type)
}

func TestExtractPatternEntities(t *testing.T) {
	text := "Vitals: BP 150/95 mmHg, temp 38.5C. Metoprolol 50mg twice daily for 3 days."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	var foundVital, foundDosage, foundTemporal bool
	for _, ent := range entities {
		switch ent.Type {
		case types.EntityVitalSign:
			foundVital = true
		case types.EntityDosage:
			foundDosage = true
		case types.EntityTemporal:
			foundTemporal = true
		}
	}
	require.True(t, foundVital, "expected a vital sign entity")
	require.True(t, foundDosage, "expected a dosage entity")
	require.True(t, foundTemporal, "expected a temporal entity")
}

func TestExtractDeterminism(t *testing.T) {
	text := "Patient has chest pain and fever."
	sections := types.Sections{types.SectionContent: text}
	extractor := newExtractor(t)

	first := extractor(text, sections)
	second := extractor(text, sections)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("extraction is not deterministic (-first +second):\n%s", diff)
	}
}

func TestExtractNoOverlappingSpans(t *testing.T) {
	text := "Chief Complaint: chest pain and shortness of breath. BP 150/95, " +
		"troponin 0.9 ng/mL, aspirin 100mg daily for 5 days."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})
	require.NotEmpty(t, entities)

	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			require.False(t, entities[i].Intersects(entities[j].Span),
				"entities %q and %q overlap", entities[i].Text, entities[j].Text)
		}
	}
}

func TestExtractConfidenceOrdering(t *testing.T) {
	text := "Patient has chest pain. Aspirin 100mg for 3 days."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})
	require.NotEmpty(t, entities)

	for i := 1; i < len(entities); i++ {
		require.GreaterOrEqual(t, entities[i-1].Confidence, entities[i].Confidence,
			"entities must be ordered confidence-descending")
	}
}

func TestExtractConfidenceFloor(t *testing.T) {
	text := "Seen 2 days ago, now on amoxicillin 500mg."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	for _, ent := range entities {
		require.GreaterOrEqual(t, ent.Confidence, 0.5)
	}
}

func TestExtractLongestDictionaryPhraseWins(t *testing.T) {
	text := "Reports shortness of breath on exertion."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	sob := findByText(entities, "shortness of breath")
	require.NotNil(t, sob, "multi-word phrase should be matched whole")
	require.Equal(t, types.EntitySymptom, sob.Type)
}

func TestExtractSynonymNormalization(t *testing.T) {
	text := "Complains of cephalgia since yesterday."
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	cephalgia := findByText(entities, "cephalgia")
	require.NotNil(t, cephalgia)
	require.Equal(t, "headache", cephalgia.NormalizedForm)
}

func TestExtractSectionTagging(t *testing.T) {
	sections := types.Sections{
		types.SectionChiefComplaint: "chest pain for 2 hours",
		types.SectionPlan:           "start aspirin",
	}
	text := "Chief Complaint: chest pain for 2 hours\nPlan: start aspirin"
	entities := newExtractor(t)(text, sections)

	chestPain := findByText(entities, "chest pain")
	require.NotNil(t, chestPain)
	require.Equal(t, types.SectionChiefComplaint, chestPain.Section)

	aspirin := findByText(entities, "aspirin")
	require.NotNil(t, aspirin)
	require.Equal(t, types.SectionPlan, aspirin.Section)
}

func TestExtractCaseInsensitive(t *testing.T) {
	text := "PATIENT HAS CHEST PAIN"
	entities := newExtractor(t)(text, types.Sections{types.SectionContent: text})

	chestPain := findByText(entities, "CHEST PAIN")
	require.NotNil(t, chestPain)
	require.Equal(t, "chest pain", chestPain.NormalizedForm)
}
