// Package catalog loads and validates the medicine knowledge base seed data.
// The load routine is pure and deterministic: it returns fresh copies of the
// seed records so callers can never alias the package-level data.
package catalog

import (
	"fmt"
	"strings"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/validation"
)

// Load builds the medicine catalog and the age dosing table. Every record is
// validated; a malformed seed is a startup error and must never be served.
func Load() ([]entities.Medicine, []entities.AgeDosage, error) {
	medicines := make([]entities.Medicine, 0, len(seedMedicines))
	for i := range seedMedicines {
		med := copyMedicine(&seedMedicines[i])
		normalizeMedicine(&med)
		if err := validation.ValidateMedicine(&med); err != nil {
			return nil, nil, fmt.Errorf("invalid medicine %q: %w", med.Name, err)
		}
		medicines = append(medicines, med)
	}

	dosages := make([]entities.AgeDosage, 0, len(seedDosages))
	for i := range seedDosages {
		d := seedDosages[i]
		if err := validation.ValidateDosage(&d); err != nil {
			return nil, nil, fmt.Errorf("invalid dosage for %q: %w", d.Medicine, err)
		}
		dosages = append(dosages, d)
	}

	if err := validation.ValidateCatalogIntegrity(medicines, dosages); err != nil {
		return nil, nil, fmt.Errorf("catalog integrity check failed: %w", err)
	}

	return medicines, dosages, nil
}

// copyMedicine returns a deep copy so the seed slices stay pristine across
// reloads.
func copyMedicine(m *entities.Medicine) entities.Medicine {
	out := *m
	out.Symptoms = append([]string(nil), m.Symptoms...)
	out.SideEffects = append([]string(nil), m.SideEffects...)
	out.Contraindications = append([]string(nil), m.Contraindications...)
	return out
}

// normalizeMedicine lowercases and trims symptom and contraindication
// keywords. Matching everywhere downstream assumes this normalization.
func normalizeMedicine(m *entities.Medicine) {
	for i, s := range m.Symptoms {
		m.Symptoms[i] = strings.ToLower(strings.TrimSpace(s))
	}
	for i, c := range m.Contraindications {
		m.Contraindications[i] = strings.ToLower(strings.TrimSpace(c))
	}
}
