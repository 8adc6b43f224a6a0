package summarize

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

const clinicalNote = "Patient is a 58-year-old male presenting with acute chest pain. " +
	"He reports the pain started two hours ago while climbing stairs. " +
	"Physical examination reveals an anxious patient with diaphoresis. " +
	"Blood pressure was measured at 150/95 with heart rate of 102. " +
	"The assessment is acute coronary syndrome requiring urgent treatment. " +
	"Plan includes ECG, troponin measurement and admission to cardiology."

func newSummarizer(t *testing.T) *Summarizer {
	t.Helper()
	return NewSummarizer(dict.Default())
}

func TestSummarizeUnsupportedMode(t *testing.T) {
	_, err := newSummarizer(t).Summarize(clinicalNote, 200, types.SummaryMode("haiku"))

	var unsupported *types.UnsupportedTemplateError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "haiku", unsupported.Name)
}

func TestExtractiveRespectsBudget(t *testing.T) {
	maxLength := 200
	result, err := newSummarizer(t).Summarize(clinicalNote, maxLength, types.SummaryExtractive)
	require.NoError(t, err)

	require.NotEmpty(t, result.Summary)
	require.LessOrEqual(t, len(result.Summary), maxLength)
	require.Equal(t, len(clinicalNote), result.OriginalLength)
	require.Equal(t, len(result.Summary), result.SummaryLength)
	require.InDelta(t, float64(result.SummaryLength)/float64(result.OriginalLength), result.CompressionRatio, 1e-9)
}

func TestExtractivePreservesDocumentOrder(t *testing.T) {
	result, err := newSummarizer(t).Summarize(clinicalNote, 400, types.SummaryExtractive)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(result.KeySentences), 2)

	lastIndex := -1
	for _, sentence := range result.KeySentences {
		index := strings.Index(clinicalNote, sentence)
		require.GreaterOrEqual(t, index, 0, "selected sentence not found in source: %q", sentence)
		require.Greater(t, index, lastIndex, "sentences out of document order")
		lastIndex = index
	}
}

func TestExtractiveEmptyText(t *testing.T) {
	result, err := newSummarizer(t).Summarize("", 200, types.SummaryExtractive)
	require.NoError(t, err)

	require.Equal(t, "", result.Summary)
	require.Equal(t, 0, result.OriginalLength)
	require.Equal(t, 0.0, result.CompressionRatio)
}

func TestAbstractiveFallsBackToExtractive(t *testing.T) {
	abstractive, err := newSummarizer(t).Summarize(clinicalNote, 200, types.SummaryAbstractive)
	require.NoError(t, err)
	extractive, err := newSummarizer(t).Summarize(clinicalNote, 200, types.SummaryExtractive)
	require.NoError(t, err)

	require.Equal(t, extractive.Summary, abstractive.Summary)
}

func TestKeywordsSummary(t *testing.T) {
	result, err := newSummarizer(t).Summarize(clinicalNote, 300, types.SummaryKeywords)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(result.Summary, "Palavras-chave: "))
	require.NotEmpty(t, result.Keywords)
	require.LessOrEqual(t, len(result.Keywords), 10)
	for _, keyword := range result.Keywords {
		require.Greater(t, len(keyword), 3)
	}
}

func TestKeywordsTruncation(t *testing.T) {
	maxLength := 40
	result, err := newSummarizer(t).Summarize(clinicalNote, maxLength, types.SummaryKeywords)
	require.NoError(t, err)

	require.Len(t, result.Summary, maxLength)
	require.True(t, strings.HasSuffix(result.Summary, "..."))
}

func TestKeywordsTinyBudget(t *testing.T) {
	for _, maxLength := range []int{0, 2, 3} {
		result, err := newSummarizer(t).Summarize(clinicalNote, maxLength, types.SummaryKeywords)
		require.NoError(t, err)

		require.LessOrEqual(t, len(result.Summary), maxLength)
	}
}

func TestKeywordsMedicalTermsRankedFirst(t *testing.T) {
	text := "morning morning morning review review chest pain chest pain"
	top := newSummarizer(t).rankKeywords(text)
	require.NotEmpty(t, top)

	// "chest" appears twice but doubles through the medical-term weight,
	// beating the more frequent plain words is not required; it must at
	// least be present.
	require.Contains(t, top, "chest")
}

func TestKeywordsDeterministicOrder(t *testing.T) {
	summarizer := newSummarizer(t)
	first := summarizer.rankKeywords(clinicalNote)
	second := summarizer.rankKeywords(clinicalNote)

	require.Equal(t, first, second)
}

const denseNote = "Patient reports chest pain, shortness of breath, fever and dizziness with severe acute distress. " +
	"Examination shows hypertension, diabetes and pneumonia with abnormal severe acute findings. " +
	"Plan is acute severe critical treatment with aspirin for pneumonia and sepsis now."

func TestBulletPointsSummary(t *testing.T) {
	result, err := newSummarizer(t).Summarize(denseNote, 500, types.SummaryBulletPoints)
	require.NoError(t, err)
	require.NotEmpty(t, result.Summary)

	lines := strings.Split(result.Summary, "\n")
	require.LessOrEqual(t, len(lines), 5)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "• "), "bullet missing prefix: %q", line)
		require.LessOrEqual(t, len(line), len("• ")+80+len("..."))
	}
}

func TestBulletPointsStripLeadingSubject(t *testing.T) {
	result, err := newSummarizer(t).Summarize(
		"The patient has chest pain, shortness of breath, fever and severe acute dyspnea.", 300,
		types.SummaryBulletPoints)
	require.NoError(t, err)

	require.NotEmpty(t, result.Summary)
	require.NotContains(t, result.Summary, "The patient")
}

func TestSentenceScoringPrefersClinicalContent(t *testing.T) {
	summarizer := newSummarizer(t)

	clinical := summarizer.scoreSentence("Patient has chest pain and severe dyspnea with fever", 5, 10)
	mundane := summarizer.scoreSentence("The weather outside was cloudy and gray today", 5, 10)
	require.Greater(t, clinical, mundane)
}

func TestSentenceScoringPenalizesNumberDumps(t *testing.T) {
	summarizer := newSummarizer(t)

	prose := summarizer.scoreSentence("Patient has chest pain and fever today", 5, 10)
	numbers := summarizer.scoreSentence("Patient has chest pain 12 34 56 78 90 11 fever", 5, 10)
	require.Greater(t, prose, numbers)
}
