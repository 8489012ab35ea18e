package engine

import "homeo-advisor/internal/catalog"

// Consultation follow-up windows.
const (
	FollowUpDefault = "2 weeks"
	FollowUpFast    = "1 week"
	FollowUpSlow    = "3 weeks"
)

// Analyzer follow-up messages. The two endpoints carry deliberately
// different follow-up policies and wording; do not merge them.
const (
	FollowUpUrgent = "Given the severity and duration of your symptoms, please follow up with a qualified practitioner within 1-2 days if there is no improvement."
	FollowUpWeek   = "Schedule a follow-up within a week if your symptoms persist."
	FollowUpWatch  = "Monitor your symptoms for 5-7 days and seek advice if they worsen or do not improve."
)

// PlanConsultationFollowUp maps the selected categories to a follow-up
// window. Respiratory and digestive complaints warrant a faster check-in and
// take precedence over the slower skin/musculoskeletal window.
func PlanConsultationFollowUp(categories []catalog.Category) string {
	fast, slow := false, false
	for _, c := range categories {
		switch c {
		case catalog.CategoryRespiratory, catalog.CategoryDigestive:
			fast = true
		case catalog.CategorySkin, catalog.CategoryMusculoskeletal:
			slow = true
		}
	}
	if fast {
		return FollowUpFast
	}
	if slow {
		return FollowUpSlow
	}
	return FollowUpDefault
}

// PlanAnalyzerFollowUp maps the raw severity and duration descriptors to a
// follow-up message. Operates on the submitted strings, not parsed scales.
func PlanAnalyzerFollowUp(severity, duration string) string {
	switch {
	case severity == "severe" || duration == "chronic" || duration == "months":
		return FollowUpUrgent
	case severity == "moderate" || duration == "weeks":
		return FollowUpWeek
	default:
		return FollowUpWatch
	}
}
