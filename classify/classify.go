package classify

import (
	"fmt"
	"sort"
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

const (
	negativeKeywordPenalty  = 0.5
	structuralPatternWeight = 2.0
	requiredFeatureWeight   = 1.5
	bonusFeatureWeight      = 0.5
	alternativesReturned    = 3
)

// Classifier scores a note against every document-type profile and returns
// the ranked result. Features may be passed in by the caller (evaluated once
// per document); a nil map makes the classifier evaluate them itself.
type Classifier func(text string, features map[string]bool) types.ClassificationResult

type profileScore struct {
	profile         *dict.DocTypeProfile
	confidence      float64
	matchedKeywords []string
	matchedFeatures []string
}

func NewClassifier(profiles []dict.DocTypeProfile) Classifier {
	return func(text string, features map[string]bool) types.ClassificationResult {
		if features == nil {
			features = EvaluateFeatures(text)
		}
		lowered := strings.ToLower(text)

		scores := make([]profileScore, len(profiles))
		for i := range profiles {
			scores[i] = scoreProfile(&profiles[i], lowered, features)
		}

		// Stable: equal scores keep profile declaration order.
		sort.SliceStable(scores, func(i, j int) bool {
			return scores[i].confidence > scores[j].confidence
		})

		top := scores[0]
		alternatives := make([]types.TypeScore, 0, alternativesReturned)
		for _, sc := range scores[1:] {
			if len(alternatives) == alternativesReturned {
				break
			}
			alternatives = append(alternatives, types.TypeScore{
				Type:       sc.profile.Type,
				Confidence: sc.confidence,
			})
		}

		return types.ClassificationResult{
			DocumentType:     top.profile.Type,
			Confidence:       top.confidence,
			AlternativeTypes: alternatives,
			FeaturesFound:    featureNames(features),
			Reasoning:        buildReasoning(top),
		}
	}
}

func scoreProfile(profile *dict.DocTypeProfile, lowered string, features map[string]bool) profileScore {
	score := profileScore{profile: profile}

	raw := 0.0
	for _, keyword := range profile.Keywords {
		if strings.Contains(lowered, keyword) {
			raw += profile.KeywordWeight
			score.matchedKeywords = append(score.matchedKeywords, keyword)
		}
	}
	for _, keyword := range profile.NegativeKeywords {
		if strings.Contains(lowered, keyword) {
			raw -= negativeKeywordPenalty
		}
	}
	for i, re := range profile.StructuralPatterns {
		if re.MatchString(lowered) {
			raw += structuralPatternWeight
			score.matchedFeatures = append(score.matchedFeatures, fmt.Sprintf("structure_%d", i+1))
		}
	}
	for _, feat := range profile.RequiredFeatures {
		if features[feat] {
			raw += requiredFeatureWeight
			score.matchedFeatures = append(score.matchedFeatures, feat)
		}
	}
	for _, feat := range profile.BonusFeatures {
		if features[feat] {
			raw += bonusFeatureWeight
			score.matchedFeatures = append(score.matchedFeatures, feat)
		}
	}

	max := float64(len(profile.Keywords))*profile.KeywordWeight +
		structuralPatternWeight*float64(len(profile.StructuralPatterns)) +
		requiredFeatureWeight*float64(len(profile.RequiredFeatures)) +
		bonusFeatureWeight*float64(len(profile.BonusFeatures))
	if max > 0 {
		score.confidence = raw / max
	}
	if score.confidence < 0 {
		score.confidence = 0
	}
	if score.confidence > 1 {
		score.confidence = 1
	}
	return score
}

func buildReasoning(top profileScore) string {
	tier := "Low"
	switch {
	case top.confidence > 0.8:
		tier = "High"
	case top.confidence > 0.6:
		tier = "Moderate"
	}
	parts := []string{fmt.Sprintf("%s confidence match for %s", tier, top.profile.Type)}

	if len(top.matchedFeatures) > 0 {
		parts = append(parts, "Features: "+strings.Join(top.matchedFeatures, ", "))
	}
	if len(top.matchedKeywords) > 0 {
		keywords := top.matchedKeywords
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		parts = append(parts, "Keywords: "+strings.Join(keywords, ", "))
	}
	return strings.Join(parts, ". ")
}

func featureNames(features map[string]bool) []string {
	names := make([]string, 0, len(features))
	for name, present := range features {
		if present {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
