package engine

import (
	"fmt"
	"strings"

	"homeo-advisor/internal/catalog"
)

// NarrativeInsufficient is the fixed diagnosis text returned when no
// category scored positively.
const NarrativeInsufficient = "I'm sorry, but I don't have enough information to assess your symptoms. Please describe what you are experiencing in more detail."

const narrativeClosing = " The remedies and lifestyle adjustments below are tailored to address these concerns."

// ComposeNarrative builds the diagnosis paragraph from fixed phrase
// templates. The grammar branches on the number of selected categories
// rather than using a generic list join.
func ComposeNarrative(cat *catalog.Catalog, categories []catalog.Category, sig SignalSet) string {
	if len(categories) == 0 {
		return NarrativeInsufficient
	}

	severity := "mild "
	switch {
	case sig.Intensity >= 8:
		severity = "severe "
	case sig.Intensity >= 5:
		severity = "moderate "
	}

	var b strings.Builder
	b.WriteString("Based on your responses, you appear to be experiencing ")
	b.WriteString(severity)

	switch len(categories) {
	case 1:
		fmt.Fprintf(&b, "symptoms related to %s.", cat.Phrase(categories[0]))
	case 2:
		fmt.Fprintf(&b, "symptoms related to %s and %s.",
			cat.Phrase(categories[0]), cat.Phrase(categories[1]))
	default:
		fmt.Fprintf(&b, "symptoms primarily related to %s, with additional concerns related to %s and %s.",
			cat.Phrase(categories[0]), cat.Phrase(categories[1]), cat.Phrase(categories[2]))
	}

	if sig.Duration != "" {
		fmt.Fprintf(&b, " You have been experiencing these symptoms for %s.", sig.Duration)
	}
	if sig.Stress > 6 {
		b.WriteString(" Your elevated stress level may be exacerbating these symptoms.")
	}
	if strings.Contains(sig.Duration, "poor") || strings.Contains(sig.SleepText, "poor") {
		b.WriteString(" Your sleep patterns may also be contributing to how you feel.")
	}
	b.WriteString(narrativeClosing)

	return b.String()
}
