package chat

import (
	"strings"
	"time"
)

// severityKeywords trigger the severity flag when they co-occur with at
// least one detected symptom. Keyword co-occurrence, not clinical assessment.
var severityKeywords = []string{"severe", "extreme", "intense", "unbearable"}

// platformInfo is the static platform description used on the support branch.
var platformInfo = PlatformInfo{
	Name:          "PeaceMatcher",
	Features:      []string{"appointments", "telehealth", "prescriptions", "chat support", "medical records"},
	SupportTopics: []string{"booking appointments", "video consultations", "account issues", "platform navigation", "general healthcare questions"},
}

// HasSeverityIndicators reports whether the message flags urgency: true iff
// at least one symptom was detected and the message contains one of the
// severity keywords as a case-insensitive substring.
func HasSeverityIndicators(message string, detectedSymptoms []string) bool {
	if len(detectedSymptoms) == 0 {
		return false
	}

	lowered := strings.ToLower(message)
	for _, kw := range severityKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// buildUserContext echoes the profile plus the processing instant. The
// timezone comes from the request when supplied; otherwise the serving
// host's zone is reported, which describes the server rather than the
// caller.
func buildUserContext(profile *UserProfile, now time.Time) UserContext {
	uc := UserContext{
		Timestamp: now.UTC().Format(time.RFC3339),
		Timezone:  serverTimezone(),
	}

	if profile != nil {
		uc.AgeGroup = profile.AgeGroup
		uc.Gender = profile.Gender
		uc.Weight = profile.Weight
		uc.Allergies = profile.Allergies
		uc.Conditions = profile.Conditions
		if profile.Timezone != "" {
			uc.Timezone = profile.Timezone
		}
	}

	return uc
}

func serverTimezone() string {
	zone, _ := time.Now().Zone()
	return zone
}

// BuildSupportContext assembles the platform-help payload.
func BuildSupportContext(message string, profile *UserProfile, now time.Time) *SupportContext {
	return &SupportContext{
		UserMessage:  message,
		ContextKind:  ContextSupport,
		UserContext:  buildUserContext(profile, now),
		PlatformInfo: platformInfo,
	}
}

// BuildMedicalContext assembles the consultation payload from the pipeline's
// findings.
func BuildMedicalContext(message string, profile *UserProfile, symptoms []string, options []MedicineOption, now time.Time) *MedicalContext {
	return &MedicalContext{
		UserMessage: message,
		UserContext: buildUserContext(profile, now),
		Analysis: Analysis{
			DetectedSymptoms:   symptoms,
			SeverityIndicators: HasSeverityIndicators(message, symptoms),
		},
		MedicineOptions: options,
	}
}
