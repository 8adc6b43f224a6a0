package types

// ClinicalAnalysis is the aggregate result of one pipeline run. The processor
// owns construction; nothing in it is mutated after assembly.
type ClinicalAnalysis struct {
	Text               string                 `json:"text"`
	Entities           []MedicalEntity        `json:"entities"`
	DocumentType       string                 `json:"document_type"`
	Sections           Sections               `json:"sections"`
	Summary            string                 `json:"summary"`
	KeyFindings        []string               `json:"key_findings"`
	UrgencyScore       float64                `json:"urgency_score"`
	SentimentAnalysis  map[string]float64     `json:"sentiment_analysis"`
	StructuredData     map[string]interface{} `json:"structured_data"`
	QualityScore       float64                `json:"quality_score"`
	ProcessingMetadata map[string]interface{} `json:"processing_metadata"`
}
