package extract

import (
	"regexp"
	"sort"
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
	"clinscribe.com/cna/utils"
)

// Candidates below this confidence are discarded before overlap resolution.
const confidenceFloor = 0.5

// Extractor scans a note for medical entities. Deterministic for a fixed
// table set: candidates are discovered in pattern-bank order then dictionary
// order, and overlap resolution uses a stable confidence-descending sort so
// equal-confidence ties fall to the first-discovered candidate.
type Extractor func(text string, sections types.Sections) []types.MedicalEntity

// Dictionary scans run over word tokens; a token is a letter/digit run with
// intra-word hyphens.
var wordRe = regexp.MustCompile(`[a-zA-Z0-9][a-zA-Z0-9-]*`)

// Fixed scan order for dictionary types, part of the tie-break contract.
var dictionaryTypeOrder = []types.EntityType{
	types.EntitySymptom,
	types.EntityCondition,
	types.EntityMedication,
	types.EntityAnatomy,
	types.EntityProcedure,
	types.EntityLabTest,
}

func NewExtractor(tables *dict.Tables) Extractor {
	trees := make(map[types.EntityType]*utils.StringPrefixTree, len(tables.Terms))
	for entityType, terms := range tables.Terms {
		tree := &utils.StringPrefixTree{}
		for _, term := range terms {
			tree.Add(term)
		}
		trees[entityType] = tree
	}

	sectionOrder := make([]string, 0, len(tables.SectionPatterns)+1)
	for _, sp := range tables.SectionPatterns {
		sectionOrder = append(sectionOrder, sp.Section)
	}
	sectionOrder = append(sectionOrder, types.SectionContent)

	return func(text string, sections types.Sections) []types.MedicalEntity {
		if len(text) == 0 {
			return nil
		}

		candidates := collectPatternCandidates(text, tables.Patterns)
		candidates = append(candidates, collectDictionaryCandidates(text, trees)...)
		candidates = dedupCandidates(candidates)
		candidates = filterByConfidence(candidates)
		kept := resolveOverlaps(candidates)

		for i := range kept {
			normalize(&kept[i], tables.Synonyms)
			kept[i].Section = findEntitySection(&kept[i], sections, sectionOrder)
		}
		return kept
	}
}

func collectPatternCandidates(text string, patterns []dict.Pattern) []types.MedicalEntity {
	var candidates []types.MedicalEntity
	for _, pattern := range patterns {
		for _, loc := range pattern.Re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, types.MedicalEntity{
				Span:       types.Span{Start: loc[0], End: loc[1]},
				Text:       text[loc[0]:loc[1]],
				Type:       pattern.Type,
				Confidence: pattern.Confidence,
			})
		}
	}
	return candidates
}

func collectDictionaryCandidates(text string, trees map[types.EntityType]*utils.StringPrefixTree) []types.MedicalEntity {
	locs := wordRe.FindAllStringIndex(text, -1)
	tokens := make([]string, len(locs))
	for i, loc := range locs {
		tokens[i] = strings.ToLower(text[loc[0]:loc[1]])
	}

	var candidates []types.MedicalEntity
	for _, entityType := range dictionaryTypeOrder {
		tree, isOk := trees[entityType]
		if !isOk {
			continue
		}
		for i := range tokens {
			_, length, found := tree.LongestMatch(tokens, i)
			if !found {
				continue
			}
			start := locs[i][0]
			end := locs[i+length-1][1]
			candidates = append(candidates, types.MedicalEntity{
				Span:       types.Span{Start: start, End: end},
				Text:       text[start:end],
				Type:       entityType,
				Confidence: dict.ConfidenceDictionary,
			})
		}
	}
	return candidates
}

// dedupCandidates drops exact duplicates (same span, same type); the first
// discovery wins, preserving scan order.
func dedupCandidates(candidates []types.MedicalEntity) []types.MedicalEntity {
	seen := make(map[uint64]bool, len(candidates))
	result := candidates[:0]
	for _, cand := range candidates {
		key := utils.HashString(cand.Type.Name()) ^ cand.GetHashCode()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, cand)
	}
	return result
}

func filterByConfidence(candidates []types.MedicalEntity) []types.MedicalEntity {
	result := candidates[:0]
	for _, cand := range candidates {
		if cand.Confidence >= confidenceFloor {
			result = append(result, cand)
		}
	}
	return result
}

// resolveOverlaps keeps the highest-confidence candidate of every overlapping
// group. The sort must be stable: equal confidences keep discovery order, so
// reruns produce identical output.
func resolveOverlaps(candidates []types.MedicalEntity) []types.MedicalEntity {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	var kept []types.MedicalEntity
	for _, cand := range candidates {
		overlaps := false
		for i := range kept {
			if cand.Intersects(kept[i].Span) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, cand)
		}
	}
	return kept
}

func normalize(ent *types.MedicalEntity, synonyms map[types.EntityType]map[string]string) {
	surface := strings.ToLower(strings.TrimSpace(ent.Text))
	if mapped, isOk := synonyms[ent.Type][surface]; isOk {
		ent.NormalizedForm = mapped
		return
	}
	ent.NormalizedForm = surface
}

// findEntitySection returns the first section, in fixed vocabulary order,
// whose text contains the entity's surface form. This is a first-found
// approximation rather than an offset lookup; notes repeating a phrase across
// sections can get the earlier section's name.
func findEntitySection(ent *types.MedicalEntity, sections types.Sections, order []string) string {
	needle := strings.ToLower(ent.Text)
	for _, name := range order {
		body, isOk := sections[name]
		if !isOk {
			continue
		}
		if strings.Contains(strings.ToLower(body), needle) {
			return name
		}
	}
	return ""
}
