package validation

import (
	"testing"

	"github.com/peacematcher/assistant-api/catalog/entities"
)

func validMedicine() entities.Medicine {
	return entities.Medicine{
		Name:              "Testol",
		Description:       "A test medicine",
		Symptoms:          []string{"fever"},
		Contraindications: []string{"liver disease"},
		DosageForm:        "tablet",
	}
}

func TestValidateMedicine(t *testing.T) {
	m := validMedicine()
	if err := ValidateMedicine(&m); err != nil {
		t.Errorf("valid medicine rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*entities.Medicine)
	}{
		{"nil symptoms", func(m *entities.Medicine) { m.Symptoms = nil }},
		{"empty name", func(m *entities.Medicine) { m.Name = "  " }},
		{"empty description", func(m *entities.Medicine) { m.Description = "" }},
		{"empty dosage form", func(m *entities.Medicine) { m.DosageForm = "" }},
		{"blank symptom", func(m *entities.Medicine) { m.Symptoms = []string{" "} }},
		{"uppercase symptom", func(m *entities.Medicine) { m.Symptoms = []string{"Fever"} }},
		{"blank contraindication", func(m *entities.Medicine) { m.Contraindications = []string{""} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMedicine()
			tc.mutate(&m)
			if err := ValidateMedicine(&m); err == nil {
				t.Error("expected a validation error")
			}
		})
	}

	if err := ValidateMedicine(nil); err == nil {
		t.Error("expected an error for a nil medicine")
	}
}

func TestValidateDosage(t *testing.T) {
	d := entities.AgeDosage{
		Medicine:  "Testol",
		AgeGroup:  "adult",
		Dosage:    "1 tablet",
		Frequency: "Every 8 hours",
	}
	if err := ValidateDosage(&d); err != nil {
		t.Errorf("valid dosage rejected: %v", err)
	}

	bad := d
	bad.AgeGroup = "toddler"
	if err := ValidateDosage(&bad); err == nil {
		t.Error("expected an error for an unknown age group")
	}

	bad = d
	bad.Dosage = " "
	if err := ValidateDosage(&bad); err == nil {
		t.Error("expected an error for an empty dosage amount")
	}
}

func TestValidateCatalogIntegrity(t *testing.T) {
	medicines := []entities.Medicine{validMedicine()}
	dosages := []entities.AgeDosage{
		{Medicine: "Testol", AgeGroup: "adult", Dosage: "1 tablet", Frequency: "daily"},
	}

	if err := ValidateCatalogIntegrity(medicines, dosages); err != nil {
		t.Errorf("valid catalog rejected: %v", err)
	}

	dup := append(medicines, validMedicine())
	if err := ValidateCatalogIntegrity(dup, nil); err == nil {
		t.Error("expected an error for duplicate medicine names")
	}

	orphan := []entities.AgeDosage{
		{Medicine: "Ghostol", AgeGroup: "adult", Dosage: "1 tablet", Frequency: "daily"},
	}
	if err := ValidateCatalogIntegrity(medicines, orphan); err == nil {
		t.Error("expected an error for a dosage referencing an unknown medicine")
	}

	double := append(dosages, dosages[0])
	if err := ValidateCatalogIntegrity(medicines, double); err == nil {
		t.Error("expected an error for duplicate dosage rules")
	}
}

func TestReportCatalogQuality(t *testing.T) {
	medicines := []entities.Medicine{validMedicine()}

	report := ReportCatalogQuality(medicines, nil)
	if report.TotalMedicines != 1 {
		t.Errorf("total medicines = %d", report.TotalMedicines)
	}
	if len(report.MedicinesWithoutDosages) != 1 || report.MedicinesWithoutDosages[0] != "Testol" {
		t.Errorf("expected Testol to be reported uncovered, got %v", report.MedicinesWithoutDosages)
	}

	covered := ReportCatalogQuality(medicines, []entities.AgeDosage{
		{Medicine: "testol", AgeGroup: "adult", Dosage: "1 tablet", Frequency: "daily"},
	})
	if len(covered.MedicinesWithoutDosages) != 0 {
		t.Errorf("expected full coverage, got %v", covered.MedicinesWithoutDosages)
	}
}
