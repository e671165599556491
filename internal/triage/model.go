package triage

import "time"

// Symptom categories offered by the intake form.
const (
	CategoryFatigue   = "fatigue"
	CategoryWeight    = "weight"
	CategorySkin      = "skin"
	CategoryHormonal  = "hormonal"
	CategoryMental    = "mental"
	CategoryNutrition = "nutrition"
)

// HealthAssessment is one persisted symptom-check result.
type HealthAssessment struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	Symptoms        []string  `json:"symptoms"`
	Category        string    `json:"category"`
	Severity        int       `json:"severity"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}

// SymptomCheckRequest is the body of POST /symptom-check.
type SymptomCheckRequest struct {
	Symptoms  []string `json:"symptoms"`
	Category  string   `json:"category"`
	SessionID string   `json:"session_id"`
}

// SymptomCheckResponse is the result returned to the caller.
type SymptomCheckResponse struct {
	Recommendations []string `json:"recommendations"`
	Severity        int      `json:"severity"`
	ShouldSeeDoctor bool     `json:"should_see_doctor"`
}
