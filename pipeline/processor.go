package pipeline

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"clinscribe.com/cna/classify"
	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/extract"
	"clinscribe.com/cna/logger"
	"clinscribe.com/cna/segment"
	"clinscribe.com/cna/sentiment"
	"clinscribe.com/cna/structured"
	"clinscribe.com/cna/summarize"
	"clinscribe.com/cna/types"
	"clinscribe.com/cna/utils"
)

const (
	ProcessorVersion     = "cna-clinical-1.2.0"
	RFC3339Micro         = "2006-01-02T15:04:05.000000-07:00"
	defaultSummaryLength = 300
)

// Stage names reported by StageFailureError.
const (
	StageSegment    = "segment"
	StageExtract    = "extract_entities"
	StageClassify   = "classify"
	StageSummarize  = "summarize"
	StageFindings   = "key_findings"
	StageUrgency    = "urgency"
	StageSentiment  = "sentiment"
	StageStructured = "structured_data"
	StageQuality    = "quality"
)

// Processor runs the fixed linear analysis pipeline. All tables are read-only
// after construction, so one Processor serves concurrent calls without
// coordination.
type Processor struct {
	tables     *dict.Tables
	segmenter  segment.Segmenter
	extractor  extract.Extractor
	classifier classify.Classifier
	summarizer *summarize.Summarizer
	scorer     *sentiment.Scorer
	structured *structured.Extractor
	cnaLogger  zerolog.Logger
}

func NewProcessor(tables *dict.Tables) *Processor {
	return &Processor{
		tables:     tables,
		segmenter:  segment.NewSegmenter(tables.SectionPatterns),
		extractor:  extract.NewExtractor(tables),
		classifier: classify.NewClassifier(tables.Profiles),
		summarizer: summarize.NewSummarizer(tables),
		scorer:     sentiment.NewScorer(tables),
		structured: structured.NewExtractor(tables),
		cnaLogger:  logger.NewLogger("Clinical processor"),
	}
}

// Process runs Segment > Extract > Classify > Summarize > Findings > Urgency >
// Sentiment > Structured > Quality and assembles one ClinicalAnalysis. A
// failing stage propagates as a StageFailureError naming the stage; the
// pipeline never substitutes fabricated data for a broken step.
func (p *Processor) Process(request Request) (*types.ClinicalAnalysis, error) {
	if !utf8.ValidString(request.Text) {
		return nil, &types.InvalidInputError{Reason: "text is not valid UTF-8"}
	}
	startedAt := time.Now()
	pplnLog := p.cnaLogger.With().Str("tid", request.Tid).Logger()
	pplnLog.Debug().Int("text_len", len(request.Text)).Msg("Starting clinical analysis")

	summaryLength := request.SummaryLength
	if summaryLength <= 0 {
		summaryLength = defaultSummaryLength
	}

	var sections types.Sections
	if err := runStage(StageSegment, func() error {
		sections = p.segmenter(request.Text)
		return nil
	}); err != nil {
		return nil, err
	}

	var entities []types.MedicalEntity
	if err := runStage(StageExtract, func() error {
		entities = p.extractor(request.Text, sections)
		return nil
	}); err != nil {
		return nil, err
	}

	var classification types.ClassificationResult
	if err := runStage(StageClassify, func() error {
		if request.DocumentType != "" {
			classification = types.ClassificationResult{
				DocumentType: request.DocumentType,
				Confidence:   1.0,
				Reasoning:    "Document type supplied by caller",
			}
			return nil
		}
		features := classify.EvaluateFeatures(request.Text)
		classification = p.classifier(request.Text, features)
		return nil
	}); err != nil {
		return nil, err
	}

	var summary string
	if err := runStage(StageSummarize, func() error {
		var err error
		summary, err = p.buildSummary(request.Text, sections, summaryLength)
		return err
	}); err != nil {
		return nil, err
	}

	var findings []string
	if err := runStage(StageFindings, func() error {
		findings = identifyKeyFindings(request.Text, entities)
		return nil
	}); err != nil {
		return nil, err
	}

	var urgency float64
	if err := runStage(StageUrgency, func() error {
		urgency = p.scorer.Urgency(request.Text, entities)
		return nil
	}); err != nil {
		return nil, err
	}

	var sentimentScores map[string]float64
	if err := runStage(StageSentiment, func() error {
		sentimentScores = p.scorer.Score(request.Text)
		return nil
	}); err != nil {
		return nil, err
	}

	var structuredData map[string]interface{}
	if err := runStage(StageStructured, func() error {
		template := request.Template
		if template == "" {
			template = templateForDocType(classification.DocumentType)
		}
		data, meta, err := p.structured.Extract(request.Text, template)
		if err != nil {
			return err
		}
		data["extraction_metadata"] = map[string]interface{}{
			"template":     template,
			"confidence":   meta.Confidence,
			"completeness": meta.Completeness,
		}
		structuredData = data
		return nil
	}); err != nil {
		return nil, err
	}

	var quality float64
	if err := runStage(StageQuality, func() error {
		quality = scoreQuality(request.Text, sections, entities)
		return nil
	}); err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{
		"processor_version": ProcessorVersion,
		"duration_ms":       time.Since(startedAt).Milliseconds(),
		"timestamp":         time.Now().UTC().Format(RFC3339Micro),
	}
	if request.PatientID != "" {
		metadata["patient_id"] = request.PatientID
	}
	for key, value := range request.Metadata {
		metadata[key] = value
	}

	pplnLog.Debug().
		Int("entities", len(entities)).
		Str("document_type", classification.DocumentType).
		Msg("Finished clinical analysis")

	return &types.ClinicalAnalysis{
		Text:               request.Text,
		Entities:           entities,
		DocumentType:       classification.DocumentType,
		Sections:           sections,
		Summary:            summary,
		KeyFindings:        findings,
		UrgencyScore:       urgency,
		SentimentAnalysis:  sentimentScores,
		StructuredData:     structuredData,
		QualityScore:       quality,
		ProcessingMetadata: metadata,
	}, nil
}

// runStage wraps one pipeline stage so panics and errors surface as a
// StageFailureError that names the stage.
func runStage(stage string, fn func() error) error {
	var err error
	func() {
		defer utils.RecoverWithError(&err)
		err = fn()
	}()
	if err != nil {
		if _, alreadyTyped := err.(*types.UnsupportedTemplateError); alreadyTyped {
			return err
		}
		return &types.StageFailureError{Stage: stage, Err: err}
	}
	return nil
}

// buildSummary prefers a structured summary from the key sections and falls
// back to extractive summarization of the full text.
func (p *Processor) buildSummary(text string, sections types.Sections, maxLength int) (string, error) {
	var parts []string
	for _, name := range []string{types.SectionChiefComplaint, types.SectionAssessment, types.SectionPlan} {
		body, isOk := sections[name]
		if !isOk || body == "" {
			continue
		}
		parts = append(parts, firstSentence(body))
	}
	if len(parts) > 0 {
		structuredSummary := strings.Join(parts, ". ")
		if len(structuredSummary) > maxLength {
			structuredSummary = structuredSummary[:maxLength]
		}
		return structuredSummary, nil
	}

	result, err := p.summarizer.Summarize(text, maxLength, types.SummaryExtractive)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}

func firstSentence(body string) string {
	for _, stop := range []string{".", "\n"} {
		if idx := strings.Index(body, stop); idx > 0 {
			body = body[:idx]
		}
	}
	return strings.TrimSpace(body)
}

func templateForDocType(docType string) string {
	switch docType {
	case types.DocTypeAdmission, types.DocTypeEmergency:
		return structured.TemplateAdmission
	case types.DocTypeDischarge:
		return structured.TemplateDischarge
	case types.DocTypeLabReport:
		return structured.TemplateLabReport
	case types.DocTypeRadiology:
		return structured.TemplateRadiology
	case types.DocTypeProcedure:
		return structured.TemplateProcedure
	}
	return structured.TemplateGeneral
}
