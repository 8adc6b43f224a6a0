package dict

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"clinscribe.com/cna/types"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	for _, entityType := range []types.EntityType{
		types.EntitySymptom, types.EntityCondition, types.EntityMedication,
		types.EntityAnatomy, types.EntityProcedure, types.EntityLabTest,
	} {
		require.NotEmpty(t, tables.Terms[entityType], "no terms for %s", entityType.Name())
	}

	require.Len(t, tables.Profiles, 10)
	require.Len(t, tables.UrgencyAxes, 4)
	require.NotEmpty(t, tables.Patterns)
	require.NotEmpty(t, tables.SectionPatterns)
	require.NotEmpty(t, tables.EmergencyKeywords)
	require.NotEmpty(t, tables.LabNormalRanges)
	require.True(t, tables.MedicalTerms["chest pain"])
	require.True(t, tables.Stopwords["patient"])
}

func TestPatternConfidencesAboveFloor(t *testing.T) {
	for _, pattern := range getPatterns() {
		require.GreaterOrEqual(t, pattern.Confidence, 0.5, "pattern %s", pattern.Name)
		require.LessOrEqual(t, pattern.Confidence, 1.0, "pattern %s", pattern.Name)
	}
}

func TestSynonymsNormalizeToDictionaryTerms(t *testing.T) {
	synonyms := getSynonyms()
	require.Equal(t, "headache", synonyms[types.EntitySymptom]["cephalgia"])
	require.Equal(t, "stroke", synonyms[types.EntityCondition]["avc"])
}

func TestLoadWithoutOverrides(t *testing.T) {
	tables, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, tables)
}

func TestLoadMissingDirFallsBack(t *testing.T) {
	tables, err := Load("/nonexistent/vocabulary")
	require.NoError(t, err)
	require.NotNil(t, tables)
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	override := `
terms:
  SYMPTOM:
    - photophobia
synonyms:
  SYMPTOM:
    fotofobia: photophobia
emergency_keywords:
  massive hemoptysis: 0.85
clinical_keywords:
  - photophobia
stopwords:
  - hereby
`
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "extra.yaml"), []byte(override), 0644))

	tables, err := Load(dir)
	require.NoError(t, err)
	require.Contains(t, tables.Terms[types.EntitySymptom], "photophobia")
	require.Equal(t, "photophobia", tables.Synonyms[types.EntitySymptom]["fotofobia"])
	require.Equal(t, 0.85, tables.EmergencyKeywords["massive hemoptysis"])
	require.Contains(t, tables.ClinicalKeywords, "photophobia")
	require.True(t, tables.Stopwords["hereby"])
}

func TestLoadIgnoresNonYamlFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "notes.txt"), []byte("not yaml"), 0644))

	tables, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, tables)
}

func TestNormalRange(t *testing.T) {
	ranges := getLabNormalRanges()
	hemoglobin, isOk := ranges["hemoglobin"]
	require.True(t, isOk)
	require.Less(t, hemoglobin.Low, hemoglobin.High)
	require.Equal(t, "g/dl", hemoglobin.Unit)
}
