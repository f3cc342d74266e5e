// Package validation provides data validation for the assistant API: catalog
// integrity checks at load time and request validation at the HTTP boundary.
package validation

import (
	"fmt"
	"strings"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/logging"
)

var validAgeGroups = map[string]bool{
	"child":  true,
	"teen":   true,
	"adult":  true,
	"senior": true,
}

// ValidateMedicine checks a single medicine record.
func ValidateMedicine(m *entities.Medicine) error {
	if m == nil {
		return fmt.Errorf("medicine is nil")
	}

	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("empty name")
	}

	if len(m.Name) > 200 {
		return fmt.Errorf("name too long: %d characters", len(m.Name))
	}

	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("empty description")
	}

	// A medicine that treats nothing can never be suggested, so it has no
	// business being in the catalog.
	if len(m.Symptoms) == 0 {
		return fmt.Errorf("no symptom keywords")
	}

	for _, s := range m.Symptoms {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("blank symptom keyword")
		}
		if s != strings.ToLower(s) {
			return fmt.Errorf("symptom keyword %q is not lowercase", s)
		}
	}

	for _, c := range m.Contraindications {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("blank contraindication")
		}
	}

	if strings.TrimSpace(m.DosageForm) == "" {
		return fmt.Errorf("empty dosage form")
	}

	return nil
}

// ValidateDosage checks a single age dosing rule.
func ValidateDosage(d *entities.AgeDosage) error {
	if d == nil {
		return fmt.Errorf("dosage is nil")
	}

	if strings.TrimSpace(d.Medicine) == "" {
		return fmt.Errorf("empty medicine reference")
	}

	if !validAgeGroups[strings.ToLower(d.AgeGroup)] {
		return fmt.Errorf("unknown age group: %q", d.AgeGroup)
	}

	if strings.TrimSpace(d.Dosage) == "" {
		return fmt.Errorf("empty dosage amount")
	}

	if strings.TrimSpace(d.Frequency) == "" {
		return fmt.Errorf("empty frequency")
	}

	return nil
}

// ValidateCatalogIntegrity enforces cross-record invariants: unique medicine
// names, at most one dosing rule per (medicine, age group), and no dosing
// rule pointing at a medicine that does not exist.
func ValidateCatalogIntegrity(medicines []entities.Medicine, dosages []entities.AgeDosage) error {
	names := make(map[string]bool, len(medicines))
	for i := range medicines {
		key := strings.ToLower(medicines[i].Name)
		if names[key] {
			return fmt.Errorf("duplicate medicine name: %q", medicines[i].Name)
		}
		names[key] = true
	}

	dosageKeys := make(map[string]bool, len(dosages))
	for i := range dosages {
		medKey := strings.ToLower(dosages[i].Medicine)
		if !names[medKey] {
			return fmt.Errorf("dosage references unknown medicine: %q", dosages[i].Medicine)
		}

		key := medKey + "|" + strings.ToLower(dosages[i].AgeGroup)
		if dosageKeys[key] {
			return fmt.Errorf("duplicate dosage rule for %q / %q", dosages[i].Medicine, dosages[i].AgeGroup)
		}
		dosageKeys[key] = true
	}

	return nil
}

// CatalogQualityReport summarizes non-fatal gaps in the catalog. Gaps are
// logged at load time but do not block startup; dosage absence is a valid
// state the pipeline handles per medicine.
type CatalogQualityReport struct {
	MedicinesWithoutDosages []string
	TotalMedicines          int
	TotalDosageRules        int
}

// ReportCatalogQuality builds a quality report and logs anything notable.
func ReportCatalogQuality(medicines []entities.Medicine, dosages []entities.AgeDosage) *CatalogQualityReport {
	covered := make(map[string]bool, len(dosages))
	for i := range dosages {
		covered[strings.ToLower(dosages[i].Medicine)] = true
	}

	report := &CatalogQualityReport{
		TotalMedicines:   len(medicines),
		TotalDosageRules: len(dosages),
	}

	for i := range medicines {
		if !covered[strings.ToLower(medicines[i].Name)] {
			report.MedicinesWithoutDosages = append(report.MedicinesWithoutDosages, medicines[i].Name)
		}
	}

	if len(report.MedicinesWithoutDosages) > 0 {
		logging.Warn("Medicines without any dosing rule",
			"count", len(report.MedicinesWithoutDosages),
			"medicines", report.MedicinesWithoutDosages,
		)
	}

	return report
}
