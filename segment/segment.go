package segment

import (
	"strings"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

// Segmenter splits a clinical note into named sections using heading-anchored
// regex windows. Greedy: per section the first matching heading variant wins.
// Notes without any recognized heading collapse to a single "content"
// pseudo-section.
type Segmenter func(text string) types.Sections

func NewSegmenter(patterns []dict.SectionPattern) Segmenter {
	return func(text string) types.Sections {
		sections := make(types.Sections)

		for _, sectionPattern := range patterns {
			for _, variant := range sectionPattern.Variants {
				match := variant.FindStringSubmatch(text)
				if match == nil {
					continue
				}
				sections[sectionPattern.Section] = strings.TrimSpace(match[1])
				break
			}
		}

		if len(sections) == 0 {
			return types.Sections{types.SectionContent: text}
		}
		return sections
	}
}
