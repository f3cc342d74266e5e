package chat

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/peacematcher/assistant-api/catalog"
	"github.com/peacematcher/assistant-api/data"
)

// fakeGateway records the serialized context and returns a canned reply.
type fakeGateway struct {
	lastPayload string
	reply       string
	err         error
}

func (f *fakeGateway) GetResponse(_ context.Context, serializedContext string) (string, error) {
	f.lastPayload = serializedContext
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(t *testing.T, gateway Gateway) *Service {
	t.Helper()

	medicines, dosages, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load failed: %v", err)
	}

	store := data.NewContainer()
	store.ReplaceCatalog(medicines, dosages)
	return NewService(store, gateway)
}

func TestHandleRejectsEmptyMessage(t *testing.T) {
	svc := newTestService(t, &fakeGateway{reply: "ok"})

	_, err := svc.Handle(context.Background(), &Request{Message: "   "})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestHandleMedicalBranch(t *testing.T) {
	gw := &fakeGateway{reply: "Rest and stay hydrated."}
	svc := newTestService(t, gw)

	resp, err := svc.Handle(context.Background(), &Request{
		Message:  "I have a fever and headache since yesterday",
		UserInfo: &UserProfile{AgeGroup: "adult"},
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if resp.Response != "Rest and stay hydrated." {
		t.Errorf("model text not passed through verbatim: %q", resp.Response)
	}
	if !slices.Contains(resp.Symptoms, "fever") || !slices.Contains(resp.Symptoms, "headache") {
		t.Errorf("expected fever and headache in %v", resp.Symptoms)
	}
	if resp.HasSevereSymptoms {
		t.Error("no severity keyword in message, flag should be false")
	}
	if resp.Context != ContextMedical {
		t.Errorf("expected medical context echo, got %q", resp.Context)
	}

	var payload MedicalContext
	if err := json.Unmarshal([]byte(gw.lastPayload), &payload); err != nil {
		t.Fatalf("gateway payload is not a medical context: %v", err)
	}

	var dolo *MedicineOption
	for i := range payload.MedicineOptions {
		if payload.MedicineOptions[i].Name == "Dolo 650mg" {
			dolo = &payload.MedicineOptions[i]
		}
	}
	if dolo == nil {
		t.Fatal("expected Dolo 650mg among the medicine options")
	}
	if dolo.DosageInfo == nil || dolo.DosageInfo.Dosage != "1 tablet (650mg)" {
		t.Errorf("expected the adult dosage on Dolo 650mg, got %+v", dolo.DosageInfo)
	}
}

func TestHandleFiltersContraindicatedMedicines(t *testing.T) {
	gw := &fakeGateway{reply: "Please consult a doctor."}
	svc := newTestService(t, gw)

	_, err := svc.Handle(context.Background(), &Request{
		Message:  "I have a fever",
		UserInfo: &UserProfile{AgeGroup: "adult", Conditions: []string{"liver disease"}},
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	var payload MedicalContext
	if err := json.Unmarshal([]byte(gw.lastPayload), &payload); err != nil {
		t.Fatalf("gateway payload is not a medical context: %v", err)
	}

	for _, opt := range payload.MedicineOptions {
		if opt.Name == "Dolo 650mg" {
			t.Error("Dolo 650mg is contraindicated for liver disease and must be filtered")
		}
	}
}

func TestHandleSeverityFlag(t *testing.T) {
	svc := newTestService(t, &fakeGateway{reply: "Seek care promptly."})

	resp, err := svc.Handle(context.Background(), &Request{
		Message: "I have severe chest pain and a headache",
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !resp.HasSevereSymptoms {
		t.Error("expected the severity flag for a severe message with detected symptoms")
	}
}

func TestHandleSupportBranch(t *testing.T) {
	gw := &fakeGateway{reply: "Go to Appointments and pick a slot."}
	svc := newTestService(t, gw)

	resp, err := svc.Handle(context.Background(), &Request{
		Message: "I have a headache, but first: how do I book an appointment?",
		Context: ContextSupport,
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	// Symptoms are still reported, severity never is on this branch.
	if !slices.Contains(resp.Symptoms, "headache") {
		t.Errorf("support branch should still report detected symptoms, got %v", resp.Symptoms)
	}
	if resp.HasSevereSymptoms {
		t.Error("support branch must not set the severity flag")
	}
	if resp.Context != ContextSupport {
		t.Errorf("expected support context echo, got %q", resp.Context)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(gw.lastPayload), &payload); err != nil {
		t.Fatalf("gateway payload is not JSON: %v", err)
	}
	if _, ok := payload["medicineOptions"]; ok {
		t.Error("support payload must not carry medicine options")
	}
	if _, ok := payload["platformInfo"]; !ok {
		t.Error("support payload is missing platformInfo")
	}
}

func TestHandlePropagatesGatewayError(t *testing.T) {
	wantErr := errors.New("provider exploded")
	svc := newTestService(t, &fakeGateway{err: wantErr})

	_, err := svc.Handle(context.Background(), &Request{Message: "I have a fever"})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the gateway error to pass through, got %v", err)
	}
}

func TestHandleUnknownSymptoms(t *testing.T) {
	gw := &fakeGateway{reply: "Tell me more about how you feel."}
	svc := newTestService(t, gw)

	resp, err := svc.Handle(context.Background(), &Request{
		Message: "I feel generally unwell and tired",
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(resp.Symptoms) != 0 {
		t.Errorf("expected no vocabulary matches, got %v", resp.Symptoms)
	}

	var payload MedicalContext
	if err := json.Unmarshal([]byte(gw.lastPayload), &payload); err != nil {
		t.Fatalf("gateway payload is not a medical context: %v", err)
	}
	if len(payload.MedicineOptions) != 0 {
		t.Errorf("no symptoms means no medicine options, got %d", len(payload.MedicineOptions))
	}
}
