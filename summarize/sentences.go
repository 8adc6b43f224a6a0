package summarize

import (
	"regexp"
	"strings"

	"clinscribe.com/cna/utils"
)

const (
	minSentenceLen  = 10
	minCandidateLen = 20

	densityWeight      = 0.4
	positionWeight     = 0.2
	lengthWeight       = 0.1
	clinicalHitBonus   = 0.1
	clinicalBonusCap   = 0.3
	numericPenalty     = 0.2
	numericTokenLimit  = 5
	positionEarly      = 0.8
	positionLate       = 0.6
	positionMiddle     = 0.3
	lengthScoreIdeal   = 1.0
	lengthScoreShort   = 0.3
	lengthScoreLong    = 0.6
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

type scoredSentence struct {
	text  string
	index int
	score float64
}

// splitSentences breaks text on sentence punctuation and drops fragments
// shorter than minLen characters.
func splitSentences(text string, minLen int) []string {
	var sentences []string
	for _, raw := range sentenceSplitRe.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) >= minLen {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// scoreSentence combines medical-term density, document position, length and
// clinical-keyword presence, with a penalty for number-heavy lines (tables,
// vital dumps).
func (s *Summarizer) scoreSentence(sentence string, index int, total int) float64 {
	lowered := strings.ToLower(sentence)
	words := utils.Tokenize(sentence)
	wordCount := len(words)
	if wordCount == 0 {
		return 0
	}

	hits := 0
	for term := range s.tables.MedicalTerms {
		if strings.Contains(lowered, term) {
			hits++
		}
	}
	density := float64(hits) / float64(wordCount)

	position := positionMiddle
	boundary := float64(total) * 0.2
	switch {
	case float64(index) < boundary:
		position = positionEarly
	case float64(index) >= float64(total)-boundary:
		position = positionLate
	}

	length := lengthScoreIdeal
	switch {
	case wordCount < 5:
		length = lengthScoreShort
	case wordCount > 25:
		length = lengthScoreLong
	}

	clinical := 0.0
	for _, keyword := range s.tables.ClinicalKeywords {
		if strings.Contains(lowered, keyword) {
			clinical += clinicalHitBonus
		}
	}
	if clinical > clinicalBonusCap {
		clinical = clinicalBonusCap
	}

	score := densityWeight*density + positionWeight*position + lengthWeight*length + clinical
	if utils.CountNumericTokens(sentence) > numericTokenLimit {
		score -= numericPenalty
	}
	return score
}
