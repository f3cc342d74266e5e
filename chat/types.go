// Package chat implements the symptom-to-medicine request pipeline behind
// the chat endpoint: symptom extraction, contraindication filtering, context
// construction, and orchestration of the assistant gateway call.
package chat

import (
	"encoding/json"

	"github.com/peacematcher/assistant-api/catalog/entities"
)

// Context discriminator values accepted on the request. Anything other than
// ContextSupport selects the medical branch.
const (
	ContextSupport = "healthcare_support"
	ContextMedical = "medical"
)

// Request is the chat endpoint's request body.
type Request struct {
	Message  string       `json:"message" validate:"required,min=1,max=1000"`
	UserInfo *UserProfile `json:"userInfo,omitempty"`
	Context  string       `json:"context,omitempty"`
}

// UserProfile is the optional per-request demographic and medical context.
// Timezone is client-supplied; when absent the server's zone is used and the
// payload simply reports where the server runs, not where the caller is.
type UserProfile struct {
	AgeGroup   string   `json:"ageGroup,omitempty" validate:"omitempty,oneof=child teen adult senior"`
	Gender     string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Weight     float64  `json:"weight,omitempty" validate:"omitempty,min=1,max=500"`
	Allergies  []string `json:"allergies,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Timezone   string   `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// Response is the chat endpoint's success body.
type Response struct {
	Response          string   `json:"response"`
	Symptoms          []string `json:"symptoms"`
	HasSevereSymptoms bool     `json:"hasSevereSymptoms"`
	Timestamp         string   `json:"timestamp"`
	Context           string   `json:"context"`
}

// UserContext echoes the profile into the downstream payload together with
// the processing timestamp and resolved timezone.
type UserContext struct {
	AgeGroup   string   `json:"ageGroup,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Weight     float64  `json:"weight,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Timestamp  string   `json:"timestamp"`
	Timezone   string   `json:"timezone"`
}

// PlatformInfo is the static platform description sent on the support branch.
type PlatformInfo struct {
	Name          string   `json:"name"`
	Features      []string `json:"features"`
	SupportTopics []string `json:"supportTopics"`
}

// Analysis carries the symptom findings on the medical branch.
type Analysis struct {
	DetectedSymptoms   []string `json:"detectedSymptoms"`
	SeverityIndicators bool     `json:"severityIndicators"`
}

// MedicineOption is one safe candidate medicine with its resolved dosage.
// DosageInfo is nil when no rule is on file for the user's age group.
type MedicineOption struct {
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	SideEffects       []string            `json:"sideEffects"`
	DosageInfo        *entities.AgeDosage `json:"dosageInfo"`
	Contraindications []string            `json:"contraindications"`
}

// Context is the structured payload handed to the assistant gateway. The two
// shapes are distinct types so callers must branch explicitly rather than
// probe optional fields.
type Context interface {
	// Kind returns the discriminator value of this context shape.
	Kind() string
	// Serialize renders the payload as the JSON prompt string.
	Serialize() (string, error)
}

// SupportContext is the platform-help framing.
type SupportContext struct {
	UserMessage  string       `json:"userMessage"`
	ContextKind  string       `json:"context"`
	UserContext  UserContext  `json:"userContext"`
	PlatformInfo PlatformInfo `json:"platformInfo"`
}

func (c *SupportContext) Kind() string { return ContextSupport }

func (c *SupportContext) Serialize() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MedicalContext is the default consultation framing.
type MedicalContext struct {
	UserMessage     string           `json:"userMessage"`
	UserContext     UserContext      `json:"userContext"`
	Analysis        Analysis         `json:"analysis"`
	MedicineOptions []MedicineOption `json:"medicineOptions"`
}

func (c *MedicalContext) Kind() string { return ContextMedical }

func (c *MedicalContext) Serialize() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
