package triage

import "strings"

// urgentKeywords trigger the see-a-doctor flag when they appear anywhere in
// the reported symptom text.
var urgentKeywords = []string{"chest pain", "difficulty breathing", "severe", "emergency"}

// Analyze maps a symptom category to the clinic's fixed recommendations.
// Unknown categories and empty symptom lists are not errors; the result is
// simply an empty list.
func Analyze(symptoms []string, category string) []string {
	recommendations := []string{}

	switch category {
	case CategoryFatigue:
		recommendations = append(recommendations,
			"Consider our comprehensive blood testing to check vitamin levels",
			"IV therapy can help boost energy levels",
		)
	case CategoryWeight:
		recommendations = append(recommendations,
			"Our medical weight management program provides personalized support",
			"Book a GP consultation for a comprehensive assessment",
		)
	case CategorySkin:
		recommendations = append(recommendations,
			"Medical facials can address various skin concerns",
			"PRP treatments offer advanced skin rejuvenation",
		)
	}

	return recommendations
}

// Severity scores the report as min(2 * symptom count, 10). An empty list
// scores 0, below the documented 1-10 scale; callers rely on that value.
func Severity(symptoms []string) int {
	severity := len(symptoms) * 2
	if severity > 10 {
		severity = 10
	}
	return severity
}

// ShouldSeeDoctor reports whether the joined, lower-cased symptom text
// contains an urgent keyword. Matching is substring over the whole text,
// not per-symptom, so "mild but not severe" still matches.
func ShouldSeeDoctor(symptoms []string) bool {
	text := strings.ToLower(strings.Join(symptoms, " "))
	for _, keyword := range urgentKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
