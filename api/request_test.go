package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/pipeline"
	"clinscribe.com/cna/types"
)

func newHandler(t *testing.T) *Request {
	t.Helper()
	processor := pipeline.NewProcessor(dict.Default())
	return &Request{Pipeline: pipeline.NewPipeline(processor)}
}

func doRequest(t *testing.T, handler *Request, method string, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	handler.AnalyzeNote(recorder, request)
	return recorder
}

func TestAnalyzeNoteJSONBody(t *testing.T) {
	body := `{"tid": "t1", "text": "Chief Complaint: chest pain.\nPlan: admit."}`
	recorder := doRequest(t, newHandler(t), http.MethodPost, body)

	require.Equal(t, http.StatusOK, recorder.Code)

	var analysis types.ClinicalAnalysis
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &analysis))
	require.Contains(t, analysis.Sections, types.SectionChiefComplaint)
}

func TestAnalyzeNotePlainTextBody(t *testing.T) {
	recorder := doRequest(t, newHandler(t), http.MethodPost, "Patient has fever and cough.")

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestAnalyzeNoteRejectsGet(t *testing.T) {
	recorder := doRequest(t, newHandler(t), http.MethodGet, "")

	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestAnalyzeNoteUnknownTemplate(t *testing.T) {
	body := `{"text": "Patient has fever.", "template": "genomics"}`
	recorder := doRequest(t, newHandler(t), http.MethodPost, body)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAnalyzeNoteInvalidText(t *testing.T) {
	recorder := doRequest(t, newHandler(t), http.MethodPost, string([]byte{0xff, 0xfe}))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
