package types

import (
	"fmt"

	"clinscribe.com/cna/utils"
)

// Span is a half-open character-offset interval [Start, End) into a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (span Span) Intersects(other Span) bool {
	return span.Start < other.End && other.Start < span.End
}

func (span Span) GetHashCode() uint64 {
	key := fmt.Sprintf("%d_%d", span.Start, span.End)
	return utils.HashString(key)
}
