package engine

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingInput is reported when the identifying fields of a request are
// entirely absent. It is the only fail-fast condition in the engine; every
// other degraded input falls back to defaults instead of erroring.
var ErrMissingInput = errors.New("missing required symptom input")

// neutralScale is the default for absent or unparseable 1-10 scale values.
const neutralScale = 5

// SignalSet is the canonical, lowercase view of one request's input. It is
// built fresh per request and discarded after scoring.
type SignalSet struct {
	// Text is the combined free-text evidence: primary symptoms, selected
	// symptom labels, body area and history, lowercased and joined.
	Text string
	// Duration is the raw duration descriptor, lowercased.
	Duration string
	// SleepText is the sleep-pattern free text, lowercased.
	SleepText string
	// Intensity and Stress are 1-10 scales, defaulting to neutralScale.
	Intensity int
	Stress    int
	// RawSeverity keeps the severity field as submitted; the analyzer
	// follow-up policy matches on words like "severe" rather than numbers.
	RawSeverity string
}

// AnalyzerInput is the validated request shape of the analyzer endpoint.
type AnalyzerInput struct {
	PrimarySymptom     string
	BodyArea           string
	AdditionalSymptoms []string
	Duration           string
	Severity           string
	Factors            []string
}

// ExtractAnalyzerSignals normalizes analyzer input into a SignalSet. The
// primary symptom and body area are required; everything else degrades to
// defaults.
func ExtractAnalyzerSignals(in AnalyzerInput) (SignalSet, error) {
	if strings.TrimSpace(in.PrimarySymptom) == "" || strings.TrimSpace(in.BodyArea) == "" {
		return SignalSet{}, ErrMissingInput
	}

	parts := []string{in.PrimarySymptom}
	parts = append(parts, in.AdditionalSymptoms...)
	parts = append(parts, in.BodyArea)
	parts = append(parts, in.Factors...)

	return SignalSet{
		Text:        joinLower(parts),
		Duration:    strings.ToLower(strings.TrimSpace(in.Duration)),
		Intensity:   parseScale(in.Severity),
		Stress:      neutralScale,
		RawSeverity: strings.ToLower(strings.TrimSpace(in.Severity)),
	}, nil
}

// Consultation response keys recognized by the extractor. Unknown keys are
// ignored rather than rejected.
const (
	keyMainSymptoms     = "mainSymptoms"
	keySymptomDuration  = "symptomDuration"
	keySymptomIntensity = "symptomIntensity"
	keyStressLevel      = "stressLevel"
	keySleepPattern     = "sleepPattern"
	keyMedicalHistory   = "medicalHistory"
)

// ExtractConsultationSignals normalizes a consultation responses map into a
// SignalSet. A nil map is a validation failure; an all-empty map is handled
// by the caller before extraction.
func ExtractConsultationSignals(responses map[string]string) (SignalSet, error) {
	if responses == nil {
		return SignalSet{}, ErrMissingInput
	}

	parts := []string{
		responses[keyMainSymptoms],
		responses[keyMedicalHistory],
	}

	return SignalSet{
		Text:      joinLower(parts),
		Duration:  strings.ToLower(strings.TrimSpace(responses[keySymptomDuration])),
		SleepText: strings.ToLower(strings.TrimSpace(responses[keySleepPattern])),
		Intensity: parseScale(responses[keySymptomIntensity]),
		Stress:    parseScale(responses[keyStressLevel]),
	}, nil
}

// AllEmpty reports whether every value in a responses map is blank. The
// consultation engine short-circuits to a fixed default result in that case.
func AllEmpty(responses map[string]string) bool {
	for _, v := range responses {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func joinLower(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// parseScale reads a 1-10 scale value, degrading to the neutral midpoint on
// anything unparseable or out of range.
func parseScale(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 10 {
		return neutralScale
	}
	return n
}
