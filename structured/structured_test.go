package structured

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/types"
)

const admissionNote = `Patient Name: John Carter
MRN: A-44871
58-year-old male presenting with chest pain.
Reason for admission: suspected acute coronary syndrome
Vitals: BP 150/95 mmHg, HR 102, Temp: 37.8
Diagnosis: acute coronary syndrome
Allergies: penicillin, sulfa
Medications: aspirin 100mg, metoprolol 50mg
Admission date: 12/03/2026`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(dict.Default())
}

func section(t *testing.T, data map[string]interface{}, name string) map[string]interface{} {
	t.Helper()
	sectionMap, isOk := data[name].(map[string]interface{})
	require.True(t, isOk, "missing section %q", name)
	return sectionMap
}

func TestExtractGeneralFields(t *testing.T) {
	data, meta, err := newTestExtractor(t).Extract(admissionNote, TemplateGeneral)
	require.NoError(t, err)

	info := section(t, data, "patient_info")
	require.Equal(t, "58", info["age"])
	require.Equal(t, "male", info["gender"])
	require.Equal(t, "A-44871", info["id"])
	require.Equal(t, "John Carter", info["name"])

	vitals := section(t, data, "vital_signs")
	require.Equal(t, "150/95", vitals["blood_pressure"])
	require.Equal(t, "102", vitals["heart_rate"])
	require.Equal(t, "37.8", vitals["temperature"])

	clinical := section(t, data, "clinical_data")
	require.Equal(t, []string{"acute coronary syndrome"}, clinical["diagnoses"])
	require.Equal(t, []string{"penicillin", "sulfa"}, clinical["allergies"])
	require.Contains(t, clinical["medications"], "aspirin")
	require.Contains(t, clinical["medications"], "metoprolol")
	require.Equal(t, "12/03/2026", clinical["admission_date"])

	require.Greater(t, meta.Confidence, 0.5)
	require.Equal(t, 1.0, meta.Completeness)
}

func TestExtractUnknownTemplate(t *testing.T) {
	_, _, err := newTestExtractor(t).Extract(admissionNote, "genomics")

	var unsupported *types.UnsupportedTemplateError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "genomics", unsupported.Name)
}

func TestExtractEmptyTemplateDefaultsToGeneral(t *testing.T) {
	data, _, err := newTestExtractor(t).Extract(admissionNote, "")
	require.NoError(t, err)

	require.Contains(t, data, "patient_info")
	require.NotContains(t, data, "admission_details")
}

func TestExtractAdmissionTemplateLayersWithoutOverwriting(t *testing.T) {
	data, meta, err := newTestExtractor(t).Extract(admissionNote, TemplateAdmission)
	require.NoError(t, err)

	info := section(t, data, "patient_info")
	require.Equal(t, "58", info["age"])

	details := section(t, data, "admission_details")
	require.Equal(t, "suspected acute coronary syndrome", details["admission_reason"])

	require.Equal(t, 1.0, meta.Completeness)
}

func TestExtractAdmissionTemplateIncomplete(t *testing.T) {
	_, meta, err := newTestExtractor(t).Extract("Short note without fields.", TemplateAdmission)
	require.NoError(t, err)

	require.Equal(t, 0.0, meta.Completeness)
}

func TestExtractDischargeTemplate(t *testing.T) {
	note := `Discharged to: home
Follow up with cardiology in 2 weeks
Discharge medications: aspirin, atorvastatin`

	data, _, err := newTestExtractor(t).Extract(note, TemplateDischarge)
	require.NoError(t, err)

	details := section(t, data, "discharge_details")
	require.Equal(t, "home", details["disposition"])
	require.Equal(t, []string{"aspirin", "atorvastatin"}, details["discharge_medications"])
}

func TestExtractLabReportTemplate(t *testing.T) {
	note := `Laboratory results:
Hemoglobin: 9.5 g/dl
Glucose: 185 mg/dl
Sodium: 140 meq/l`

	data, meta, err := newTestExtractor(t).Extract(note, TemplateLabReport)
	require.NoError(t, err)

	details := section(t, data, "lab_details")
	results, isOk := details["results"].([]map[string]interface{})
	require.True(t, isOk)
	require.Len(t, results, 3)

	byTest := make(map[string]map[string]interface{})
	for _, result := range results {
		byTest[result["test"].(string)] = result
	}
	require.Equal(t, 9.5, byTest["hemoglobin"]["value"])
	require.Equal(t, true, byTest["hemoglobin"]["abnormal"], "9.5 is below the hemoglobin range")
	require.Equal(t, true, byTest["glucose"]["abnormal"], "185 is above the glucose range")
	require.Equal(t, false, byTest["sodium"]["abnormal"], "140 is inside the sodium range")

	require.Equal(t, 1.0, meta.Completeness)
}

func TestExtractProcedureTemplate(t *testing.T) {
	note := `Procedure performed: colonoscopy
Anesthesia: propofol sedation
Complications: none`

	data, _, err := newTestExtractor(t).Extract(note, TemplateProcedure)
	require.NoError(t, err)

	details := section(t, data, "procedure_details")
	require.Equal(t, "colonoscopy", details["procedure_name"])
	require.Equal(t, "propofol sedation", details["anesthesia"])
}

func TestExtractRadiologyTemplate(t *testing.T) {
	note := `CT chest with contrast
Findings: bilateral ground glass opacities
Impression: findings consistent with atypical pneumonia`

	data, _, err := newTestExtractor(t).Extract(note, TemplateRadiology)
	require.NoError(t, err)

	details := section(t, data, "imaging_details")
	require.Equal(t, "ct", details["modality"])
	require.Contains(t, details["findings"], "ground glass opacities")
	require.Contains(t, details["impression"], "atypical pneumonia")
}

func TestExtractMedicationsSortedAndDeduplicated(t *testing.T) {
	note := "On metoprolol and aspirin. Aspirin continued. Also amoxicillin prescribed."
	data, _, err := newTestExtractor(t).Extract(note, TemplateGeneral)
	require.NoError(t, err)

	clinical := section(t, data, "clinical_data")
	medications, isOk := clinical["medications"].([]string)
	require.True(t, isOk)
	for i := 1; i < len(medications); i++ {
		require.Less(t, medications[i-1], medications[i])
	}
	count := 0
	for _, med := range medications {
		if med == "aspirin" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestExtractEmptyText(t *testing.T) {
	data, meta, err := newTestExtractor(t).Extract("", TemplateGeneral)
	require.NoError(t, err)

	info := section(t, data, "patient_info")
	require.Equal(t, "", info["age"])
	require.Equal(t, 0.0, meta.Confidence)
	require.Equal(t, 1.0, meta.Completeness)
}
