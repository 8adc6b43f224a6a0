package types

type SummaryMode string

const (
	SummaryExtractive   SummaryMode = "extractive"
	SummaryAbstractive  SummaryMode = "abstractive"
	SummaryKeywords     SummaryMode = "keywords"
	SummaryBulletPoints SummaryMode = "bullet_points"
)

type SummaryResult struct {
	Summary          string      `json:"summary"`
	SummaryType      SummaryMode `json:"summary_type"`
	OriginalLength   int         `json:"original_length"`
	SummaryLength    int         `json:"summary_length"`
	CompressionRatio float64     `json:"compression_ratio"`
	KeySentences     []string    `json:"key_sentences,omitempty"`
	Keywords         []string    `json:"keywords,omitempty"`
}
