package summarize

import (
	"sort"
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

const (
	budgetFillStop   = 0.9
	keywordCount     = 10
	keywordPrefix    = "Palavras-chave: "
	bulletPrefix     = "• "
	bulletMax        = 5
	bulletThreshold  = 0.5
	bulletTruncateAt = 80
)

type modeFunc func(s *Summarizer, text string, maxLength int) types.SummaryResult

// Mode dispatch instead of a conditional chain; abstractive generation is not
// implemented and falls back to extractive selection.
var modeFuncs = map[types.SummaryMode]modeFunc{
	types.SummaryExtractive:   (*Summarizer).extractive,
	types.SummaryAbstractive:  (*Summarizer).extractive,
	types.SummaryKeywords:     (*Summarizer).keywords,
	types.SummaryBulletPoints: (*Summarizer).bullets,
}

type Summarizer struct {
	tables *dict.Tables
}

func NewSummarizer(tables *dict.Tables) *Summarizer {
	return &Summarizer{tables: tables}
}

func (s *Summarizer) Summarize(text string, maxLength int, mode types.SummaryMode) (types.SummaryResult, error) {
	fn, isOk := modeFuncs[mode]
	if !isOk {
		return types.SummaryResult{}, &types.UnsupportedTemplateError{Name: string(mode)}
	}
	result := fn(s, text, maxLength)
	result.OriginalLength = len(text)
	result.SummaryLength = len(result.Summary)
	if result.OriginalLength > 0 {
		result.CompressionRatio = float64(result.SummaryLength) / float64(result.OriginalLength)
	}
	return result, nil
}

// extractive picks the highest-scoring sentences that fit the budget, then
// restores document order before joining. The reorder matters: a summary in
// score order reads scrambled.
func (s *Summarizer) extractive(text string, maxLength int) types.SummaryResult {
	result := types.SummaryResult{SummaryType: types.SummaryExtractive}

	sentences := splitSentences(text, minCandidateLen)
	if len(sentences) == 0 {
		return result
	}

	scored := make([]scoredSentence, len(sentences))
	for i, sentence := range sentences {
		scored[i] = scoredSentence{
			text:  sentence,
			index: i,
			score: s.scoreSentence(sentence, i, len(sentences)),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var selected []scoredSentence
	used := 0
	for _, cand := range scored {
		cost := len(cand.text)
		if used > 0 {
			cost++
		}
		if used+cost > maxLength {
			continue
		}
		selected = append(selected, cand)
		used += cost
		if float64(used) >= budgetFillStop*float64(maxLength) {
			break
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})

	parts := make([]string, len(selected))
	for i, sel := range selected {
		parts[i] = sel.text
	}
	result.Summary = strings.Join(parts, " ")
	result.KeySentences = parts
	return result
}

func (s *Summarizer) keywords(text string, maxLength int) types.SummaryResult {
	result := types.SummaryResult{SummaryType: types.SummaryKeywords}

	top := s.rankKeywords(text)
	if len(top) == 0 {
		return result
	}
	result.Keywords = top

	summary := keywordPrefix + strings.Join(top, ", ")
	if len(summary) > maxLength {
		if maxLength > 3 {
			summary = summary[:maxLength-3] + "..."
		} else if maxLength > 0 {
			summary = summary[:maxLength]
		} else {
			summary = ""
		}
	}
	result.Summary = summary
	return result
}

func (s *Summarizer) rankKeywords(text string) []string {
	freq := make(map[string]int)
	for _, token := range tokenizeForKeywords(text, s.tables.Stopwords) {
		freq[token]++
	}

	type rankedWord struct {
		word   string
		weight int
	}
	ranked := make([]rankedWord, 0, len(freq))
	for word, count := range freq {
		weight := count
		if s.tables.MedicalTerms[word] {
			weight *= 2
		}
		ranked = append(ranked, rankedWord{word: word, weight: weight})
	}
	// Alphabetical tie-break keeps the ranking deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight == ranked[j].weight {
			return ranked[i].word < ranked[j].word
		}
		return ranked[i].weight > ranked[j].weight
	})

	count := keywordCount
	if count > len(ranked) {
		count = len(ranked)
	}
	top := make([]string, count)
	for i := 0; i < count; i++ {
		top[i] = ranked[i].word
	}
	return top
}

func (s *Summarizer) bullets(text string, maxLength int) types.SummaryResult {
	result := types.SummaryResult{SummaryType: types.SummaryBulletPoints}

	sentences := splitSentences(text, minSentenceLen)
	var bullets []string
	used := 0
	for i, sentence := range sentences {
		if len(bullets) == bulletMax {
			break
		}
		if s.scoreSentence(sentence, i, len(sentences)) <= bulletThreshold {
			continue
		}
		bullet := bulletPrefix + simplifySentence(sentence)
		cost := len(bullet)
		if used > 0 {
			cost++
		}
		if used+cost > maxLength {
			break
		}
		bullets = append(bullets, bullet)
		used += cost
	}

	result.Summary = strings.Join(bullets, "\n")
	result.KeySentences = bullets
	return result
}

func simplifySentence(sentence string) string {
	simplified := sentence
	lowered := strings.ToLower(simplified)
	for _, prefix := range []string{"the patient ", "patient ", "the ", "o paciente ", "a paciente "} {
		if strings.HasPrefix(lowered, prefix) {
			simplified = simplified[len(prefix):]
			break
		}
	}
	if len(simplified) > bulletTruncateAt {
		simplified = simplified[:bulletTruncateAt] + "..."
	}
	return simplified
}

func tokenizeForKeywords(text string, stopwords map[string]bool) []string {
	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?()[]\"'")
		if len(token) <= 3 || stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
