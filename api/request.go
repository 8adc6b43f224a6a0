package api

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"clinscribe.com/cna/pipeline"
	"clinscribe.com/cna/types"
)

type analyzeBody struct {
	Tid           string                 `json:"tid"`
	Text          string                 `json:"text"`
	PatientID     string                 `json:"patient_id"`
	DocumentType  string                 `json:"document_type"`
	Template      string                 `json:"template"`
	SummaryLength int                    `json:"summary_length"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type Request struct {
	Pipeline pipeline.Pipeline
}

func (req *Request) AnalyzeNote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != "POST" {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := ioutil.ReadAll(r.Body)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	var body analyzeBody
	if err = json.Unmarshal(msg, &body); err != nil {
		// Plain text bodies are accepted as a convenience for manual testing.
		body = analyzeBody{Text: string(msg)}
	}
	if body.Tid == "" {
		body.Tid = "api_request"
	}

	request := pipeline.Request{
		Tid:           body.Tid,
		Text:          body.Text,
		PatientID:     body.PatientID,
		DocumentType:  body.DocumentType,
		Template:      body.Template,
		SummaryLength: body.SummaryLength,
		Metadata:      body.Metadata,
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp := <-req.Pipeline(request)
	if resp.Err != nil {
		status := statusForError(resp.Err)
		logger.Err(resp.Err).Int("status", status).Msg("Pipeline returned error")
		http.Error(w, resp.Err.Error(), status)
		return
	}
	encoded, err := json.Marshal(resp.Analysis)
	if err != nil {
		logger.Err(err).Int("status", http.StatusInternalServerError).Msg("Could not encode analysis")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(encoded)
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

func statusForError(err error) int {
	var invalidInput *types.InvalidInputError
	if errors.As(err, &invalidInput) {
		return http.StatusBadRequest
	}
	var unsupportedTemplate *types.UnsupportedTemplateError
	if errors.As(err, &unsupportedTemplate) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
