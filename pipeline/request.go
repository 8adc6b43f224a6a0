package pipeline

import "clinscribe.com/cna/types"

// Request is one note-analysis job. DocumentType and Template are optional
// caller hints; Metadata is opaque and passed through to the result's
// processing metadata.
type Request struct {
	Tid           string
	Text          string
	PatientID     string
	DocumentType  string
	Template      string
	SummaryLength int
	Metadata      map[string]interface{}
}

type Result struct {
	Analysis *types.ClinicalAnalysis
	Err      error
}

// Pipeline is the asynchronous adapter the worker and the API consume. The
// core stays synchronous; this only moves the call onto a goroutine.
type Pipeline func(request Request) <-chan Result

func NewPipeline(processor *Processor) Pipeline {
	return func(request Request) <-chan Result {
		resultChan := make(chan Result, 1)
		go func() {
			defer close(resultChan)
			analysis, err := processor.Process(request)
			resultChan <- Result{Analysis: analysis, Err: err}
		}()
		return resultChan
	}
}
