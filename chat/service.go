package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/logging"
)

// defaultAgeGroup is used for dosage resolution when the caller did not
// declare one.
const defaultAgeGroup = "adult"

// KnowledgeBase is the subset of the catalog container the pipeline needs.
type KnowledgeBase interface {
	GetAllSymptoms() []string
	FindMedicinesForSymptoms(symptoms []string) []entities.Medicine
	GetDosageByAgeGroup(medicineName, ageGroup string) (entities.AgeDosage, bool)
}

// Gateway sends a serialized context to the generative model and returns its
// text verbatim.
type Gateway interface {
	GetResponse(ctx context.Context, serializedContext string) (string, error)
}

// Service runs the chat pipeline: extract symptoms, filter candidates, build
// the context payload, and call the assistant. It holds no per-request
// state; a single instance serves all requests.
type Service struct {
	kb      KnowledgeBase
	gateway Gateway
}

// NewService wires the pipeline against the injected knowledge base and
// gateway.
func NewService(kb KnowledgeBase, gateway Gateway) *Service {
	return &Service{kb: kb, gateway: gateway}
}

// Handle processes one validated chat request end to end. The request must
// already be validated at the boundary; Handle only guards against the
// programmatically impossible empty message.
func (s *Service) Handle(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	now := time.Now()
	symptoms := ExtractSymptoms(req.Message, s.kb.GetAllSymptoms())

	var payload Context
	severity := false

	if req.Context == ContextSupport {
		payload = BuildSupportContext(req.Message, req.UserInfo, now)
	} else {
		options := s.buildMedicineOptions(symptoms, req.UserInfo)
		medical := BuildMedicalContext(req.Message, req.UserInfo, symptoms, options, now)
		severity = medical.Analysis.SeverityIndicators
		payload = medical
	}

	serialized, err := payload.Serialize()
	if err != nil {
		// Context shapes are plain data; a marshal failure is a defect.
		return nil, fmt.Errorf("serialize chat context: %w", err)
	}

	text, err := s.gateway.GetResponse(ctx, serialized)
	if err != nil {
		return nil, err
	}

	logging.Debug("Chat request processed",
		"context", payload.Kind(),
		"detected_symptoms", len(symptoms),
		"severity", severity,
	)

	return &Response{
		Response:          text,
		Symptoms:          symptoms,
		HasSevereSymptoms: severity,
		Timestamp:         now.UTC().Format(time.RFC3339),
		Context:           responseContext(req.Context),
	}, nil
}

// buildMedicineOptions collects candidates for the detected symptoms, drops
// the contraindicated ones, and resolves each survivor's dosage for the
// user's age group.
func (s *Service) buildMedicineOptions(symptoms []string, profile *UserProfile) []MedicineOption {
	if len(symptoms) == 0 {
		return []MedicineOption{}
	}

	var allergies, conditions []string
	ageGroup := defaultAgeGroup
	if profile != nil {
		allergies = profile.Allergies
		conditions = profile.Conditions
		if profile.AgeGroup != "" {
			ageGroup = profile.AgeGroup
		}
	}

	candidates := s.kb.FindMedicinesForSymptoms(symptoms)
	safe := FilterContraindicated(candidates, allergies, conditions)

	options := make([]MedicineOption, 0, len(safe))
	for i := range safe {
		med := &safe[i]
		option := MedicineOption{
			Name:              med.Name,
			Description:       med.Description,
			SideEffects:       med.SideEffects,
			Contraindications: med.Contraindications,
		}

		if dosage, ok := s.kb.GetDosageByAgeGroup(med.Name, ageGroup); ok {
			option.DosageInfo = &dosage
		}

		options = append(options, option)
	}

	return options
}

// responseContext normalizes the discriminator echoed back to the client.
func responseContext(requested string) string {
	if requested == "" {
		return ContextMedical
	}
	return requested
}
