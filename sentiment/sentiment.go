package sentiment

import (
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

const (
	intensifierStep      = 0.2
	criticalEntityWeight = 0.1
	criticalEntityCap    = 0.3
)

// Scorer computes the four sentiment axes and the document-level urgency
// score from the shared keyword tables.
type Scorer struct {
	tables *dict.Tables
}

func NewScorer(tables *dict.Tables) *Scorer {
	return &Scorer{tables: tables}
}

// Score returns the four axis scores. Each base score is the fraction of the
// axis's keywords present in the text; the same intensifier multiplier then
// scales all four axes before clamping, so one "extremely" lifts urgency and
// pain alike. That coupling is intentional.
func (scorer *Scorer) Score(text string) map[string]float64 {
	lowered := strings.ToLower(text)

	multiplier := 1.0
	for _, word := range scorer.tables.Intensifiers {
		if strings.Contains(lowered, word) {
			multiplier += intensifierStep
		}
	}

	result := make(map[string]float64, len(scorer.tables.UrgencyAxes))
	for axis, words := range scorer.tables.UrgencyAxes {
		found := 0
		for _, word := range words {
			if strings.Contains(lowered, word) {
				found++
			}
		}
		base := 0.0
		if len(words) > 0 {
			base = float64(found) / float64(len(words))
		}
		score := base * multiplier
		if score > 1.0 {
			score = 1.0
		}
		result[axis] = score
	}
	return result
}

// Urgency computes the document-level urgency score: weighted emergency
// keyword hits, critical symptom co-occurrence bonuses, and a capped bonus
// for critical entity findings, clamped to [0,1]. Distinct from the
// sentiment "urgency" axis, which is density-based.
func (scorer *Scorer) Urgency(text string, entities []types.MedicalEntity) float64 {
	lowered := strings.ToLower(text)

	score := 0.0
	for keyword, weight := range scorer.tables.EmergencyKeywords {
		if strings.Contains(lowered, keyword) {
			score += weight
		}
	}

	symptomList := concatSymptoms(entities)
	for _, combo := range scorer.tables.CriticalCombinations {
		if allPresent(symptomList, combo.Symptoms) {
			score += combo.Bonus
		}
	}

	criticalCount := 0
	for i := range entities {
		if scorer.tables.CriticalFindingTerms[entities[i].NormalizedForm] {
			criticalCount++
		}
	}
	criticalBonus := criticalEntityWeight * float64(criticalCount)
	if criticalBonus > criticalEntityCap {
		criticalBonus = criticalEntityCap
	}
	score += criticalBonus

	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

func concatSymptoms(entities []types.MedicalEntity) string {
	var parts []string
	for i := range entities {
		if entities[i].Type == types.EntitySymptom {
			parts = append(parts, entities[i].NormalizedForm)
		}
	}
	return strings.Join(parts, " ")
}

func allPresent(symptomList string, symptoms []string) bool {
	for _, symptom := range symptoms {
		if !strings.Contains(symptomList, symptom) {
			return false
		}
	}
	return true
}
