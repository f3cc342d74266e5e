package data

import (
	"strings"
	"testing"
	"time"

	"github.com/peacematcher/assistant-api/catalog"
	"github.com/peacematcher/assistant-api/catalog/entities"
)

func loadedContainer(t *testing.T) *Container {
	t.Helper()

	medicines, dosages, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load failed: %v", err)
	}

	c := NewContainer()
	c.ReplaceCatalog(medicines, dosages)
	return c
}

func TestEmptyContainerServesEmptyData(t *testing.T) {
	c := NewContainer()

	if got := c.GetMedicines(); len(got) != 0 {
		t.Errorf("expected empty catalog, got %d medicines", len(got))
	}
	if got := c.GetAllSymptoms(); len(got) != 0 {
		t.Errorf("expected empty vocabulary, got %d symptoms", len(got))
	}
	if _, found := c.GetDosageByAgeGroup("Dolo 650mg", "adult"); found {
		t.Error("expected no dosage in an empty container")
	}
	if !c.GetLastLoaded().IsZero() {
		t.Error("expected zero last loaded time before first load")
	}
}

func TestGetMedicinesReturnsDefensiveCopy(t *testing.T) {
	c := loadedContainer(t)

	first := c.GetMedicines()
	if len(first) == 0 {
		t.Fatal("expected a loaded catalog")
	}
	first[0].Name = "mutated"

	second := c.GetMedicines()
	if second[0].Name == "mutated" {
		t.Error("mutating a returned slice leaked into the container")
	}
}

func TestGetAllSymptomsIsDistinctLowercase(t *testing.T) {
	c := loadedContainer(t)

	symptoms := c.GetAllSymptoms()
	if len(symptoms) == 0 {
		t.Fatal("expected a non-empty vocabulary")
	}

	seen := make(map[string]bool)
	for _, s := range symptoms {
		if s == "" {
			t.Error("vocabulary contains an empty entry")
		}
		if s != strings.ToLower(s) {
			t.Errorf("vocabulary entry %q is not lowercase", s)
		}
		if seen[s] {
			t.Errorf("vocabulary entry %q appears twice", s)
		}
		seen[s] = true
	}

	// "fever" appears on several medicines but must be listed once.
	if !seen["fever"] {
		t.Error("expected vocabulary to contain fever")
	}
}

func TestFindMedicinesForSymptomsEmptyInput(t *testing.T) {
	c := loadedContainer(t)

	if got := c.FindMedicinesForSymptoms(nil); len(got) != 0 {
		t.Errorf("expected no candidates for nil input, got %d", len(got))
	}
	if got := c.FindMedicinesForSymptoms([]string{"  ", ""}); len(got) != 0 {
		t.Errorf("expected no candidates for blank input, got %d", len(got))
	}
}

func TestFindMedicinesForSymptomsMatchesSubstringBothWays(t *testing.T) {
	c := loadedContainer(t)

	// "ache" is a substring of the catalog's "body ache" and "headache".
	fromShort := c.FindMedicinesForSymptoms([]string{"ache"})
	if !containsMedicine(fromShort, "Dolo 650mg") {
		t.Error("expected Dolo 650mg as a candidate for the query ache")
	}

	// "severe headache" contains the catalog's "headache".
	fromLong := c.FindMedicinesForSymptoms([]string{"severe headache"})
	if !containsMedicine(fromLong, "Ibuprofen") {
		t.Error("expected Ibuprofen as a candidate for the query severe headache")
	}
}

func TestFindMedicinesForSymptomsNoDuplicates(t *testing.T) {
	c := loadedContainer(t)

	// Dolo 650mg treats both fever and headache but must appear once.
	results := c.FindMedicinesForSymptoms([]string{"fever", "headache"})

	counts := make(map[string]int)
	for _, m := range results {
		counts[m.Name]++
	}
	for name, n := range counts {
		if n > 1 {
			t.Errorf("medicine %s appears %d times in the candidate list", name, n)
		}
	}
	if counts["Dolo 650mg"] != 1 {
		t.Errorf("expected Dolo 650mg exactly once, got %d", counts["Dolo 650mg"])
	}
}

func TestFindMedicinesForSymptomsPreservesCatalogOrder(t *testing.T) {
	c := loadedContainer(t)

	catalogOrder := make(map[string]int)
	for i, m := range c.GetMedicines() {
		catalogOrder[m.Name] = i
	}

	results := c.FindMedicinesForSymptoms([]string{"fever", "pain"})
	for i := 1; i < len(results); i++ {
		if catalogOrder[results[i-1].Name] > catalogOrder[results[i].Name] {
			t.Fatalf("candidates out of catalog order: %s before %s",
				results[i-1].Name, results[i].Name)
		}
	}
}

func TestGetDosageByAgeGroup(t *testing.T) {
	c := loadedContainer(t)

	dosage, found := c.GetDosageByAgeGroup("Dolo 650mg", "adult")
	if !found {
		t.Fatal("expected an adult dosage for Dolo 650mg")
	}
	if dosage.Dosage != "1 tablet (650mg)" {
		t.Errorf("unexpected dosage: %q", dosage.Dosage)
	}

	// Lookup is case-insensitive.
	if _, found := c.GetDosageByAgeGroup("dolo 650MG", "ADULT"); !found {
		t.Error("expected case-insensitive dosage lookup to succeed")
	}

	// Unknown combinations are an absence, not an error.
	if _, found := c.GetDosageByAgeGroup("Dolo 650mg", "infant"); found {
		t.Error("expected no dosage for an unknown age group")
	}
	if _, found := c.GetDosageByAgeGroup("Nonexistol", "adult"); found {
		t.Error("expected no dosage for an unknown medicine")
	}
}

func TestSearchMedicinesFoldsCaseAndAccents(t *testing.T) {
	c := loadedContainer(t)

	byName := c.SearchMedicines("IBUPRO")
	if !containsMedicine(byName, "Ibuprofen") {
		t.Error("expected case-insensitive name search to find Ibuprofen")
	}

	// Accented query against the unaccented description.
	byAccent := c.SearchMedicines("paracétamol")
	if !containsMedicine(byAccent, "Dolo 650mg") {
		t.Error("expected accent-folded search to find Dolo 650mg")
	}

	if got := c.SearchMedicines("   "); len(got) != 0 {
		t.Errorf("expected no results for a blank query, got %d", len(got))
	}
}

func TestReloadGuard(t *testing.T) {
	c := NewContainer()

	if !c.BeginReload() {
		t.Fatal("first BeginReload should acquire the slot")
	}
	if c.BeginReload() {
		t.Error("second BeginReload should be rejected while a reload runs")
	}
	if !c.IsReloading() {
		t.Error("IsReloading should report true during a reload")
	}

	c.EndReload()
	if c.IsReloading() {
		t.Error("IsReloading should report false after EndReload")
	}
}

func TestReplaceCatalogUpdatesLastLoaded(t *testing.T) {
	c := NewContainer()
	before := time.Now()

	c.ReplaceCatalog([]entities.Medicine{}, []entities.AgeDosage{})

	if c.GetLastLoaded().Before(before) {
		t.Error("expected ReplaceCatalog to advance the last loaded time")
	}
}

func containsMedicine(medicines []entities.Medicine, name string) bool {
	for _, m := range medicines {
		if m.Name == name {
			return true
		}
	}
	return false
}
