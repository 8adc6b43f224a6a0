package types

// Document types a note can classify as.
const (
	DocTypeAdmission    = "admission_note"
	DocTypeDischarge    = "discharge_summary"
	DocTypeProgress     = "progress_note"
	DocTypeConsultation = "consultation_note"
	DocTypeEmergency    = "emergency_note"
	DocTypeProcedure    = "procedure_note"
	DocTypeLabReport    = "lab_report"
	DocTypeRadiology    = "radiology_report"
	DocTypePrescription = "prescription"
	DocTypeGeneral      = "general"
)

// Section names the segmenter can produce. An unsegmentable note collapses to
// the single SectionContent pseudo-section.
const (
	SectionChiefComplaint = "chief_complaint"
	SectionHistory        = "history"
	SectionHPI            = "hpi"
	SectionExamination    = "examination"
	SectionPhysicalExam   = "physical_exam"
	SectionAssessment     = "assessment"
	SectionPlan           = "plan"
	SectionMedications    = "medications"
	SectionAllergies      = "allergies"
	SectionLabResults     = "lab_results"
	SectionContent        = "content"
)

// Sections maps a section name to its text. Built once per note, read-only
// afterward.
type Sections map[string]string

type TypeScore struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult ranks document-type profiles for one note.
// AlternativeTypes is sorted by confidence descending and never contains
// DocumentType itself.
type ClassificationResult struct {
	DocumentType     string      `json:"document_type"`
	Confidence       float64     `json:"confidence"`
	AlternativeTypes []TypeScore `json:"alternative_types"`
	FeaturesFound    []string    `json:"features_found"`
	Reasoning        string      `json:"reasoning"`
}
