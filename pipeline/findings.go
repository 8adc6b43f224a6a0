package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"clinscribe.com/cna/types"
)

const (
	findingConfidenceFloor = 0.8
	maxKeyFindings         = 10
)

var abnormalValueRe = regexp.MustCompile(`(?i)\b(?:elevated|increased|decreased|low|high|abnormal|critical|positive|worsening)\s+[a-z]+`)

// identifyKeyFindings collects high-confidence symptom and condition
// entities plus abnormal-value phrases, deduplicated in discovery order and
// capped.
func identifyKeyFindings(text string, entities []types.MedicalEntity) []string {
	var findings []string
	seen := make(map[string]bool)

	add := func(finding string) {
		if len(findings) == maxKeyFindings || seen[finding] {
			return
		}
		seen[finding] = true
		findings = append(findings, finding)
	}

	for i := range entities {
		ent := &entities[i]
		if ent.Confidence < findingConfidenceFloor {
			continue
		}
		if ent.Type != types.EntitySymptom && ent.Type != types.EntityCondition {
			continue
		}
		add(fmt.Sprintf("%s: %s", strings.ToLower(ent.Type.Name()), ent.NormalizedForm))
	}

	for _, match := range abnormalValueRe.FindAllString(text, -1) {
		add(strings.ToLower(match))
	}

	return findings
}
