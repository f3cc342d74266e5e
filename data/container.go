// Package data holds the process-wide medicine knowledge base. A Container
// keeps the catalog behind atomic pointers so reloads swap data with zero
// downtime while requests keep reading the previous snapshot.
package data

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/logging"
)

// Container is the read-mostly knowledge base shared by all requests. It is
// constructed once in the composition root and injected; after a load no
// field is mutated, only atomically replaced.
type Container struct {
	medicines  atomic.Value // []entities.Medicine, insertion order
	dosages    atomic.Value // map[string]entities.AgeDosage, key: name|ageGroup lowercased
	vocabulary atomic.Value // []string, sorted distinct lowercase symptoms
	lastLoaded atomic.Value // time.Time
	reloading  atomic.Bool
	startTime  atomic.Value // time.Time
}

// NewContainer creates an empty container. It serves nothing until
// ReplaceCatalog has run once.
func NewContainer() *Container {
	c := &Container{}
	c.medicines.Store(make([]entities.Medicine, 0))
	c.dosages.Store(make(map[string]entities.AgeDosage))
	c.vocabulary.Store(make([]string, 0))
	c.lastLoaded.Store(time.Time{})
	c.startTime.Store(time.Time{})
	return c
}

// dosageKey builds the case-insensitive composite key for the dosing table.
func dosageKey(medicine, ageGroup string) string {
	return strings.ToLower(strings.TrimSpace(medicine)) + "|" + strings.ToLower(strings.TrimSpace(ageGroup))
}

// ReplaceCatalog atomically swaps in a freshly loaded catalog, deriving the
// dosage index and the symptom vocabulary from it.
func (c *Container) ReplaceCatalog(medicines []entities.Medicine, dosages []entities.AgeDosage) {
	dosageMap := make(map[string]entities.AgeDosage, len(dosages))
	for i := range dosages {
		dosageMap[dosageKey(dosages[i].Medicine, dosages[i].AgeGroup)] = dosages[i]
	}

	seen := make(map[string]bool)
	vocabulary := make([]string, 0, 64)
	for i := range medicines {
		for _, s := range medicines[i].Symptoms {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" && !seen[s] {
				seen[s] = true
				vocabulary = append(vocabulary, s)
			}
		}
	}
	// Sorted for stable iteration; callers still treat it as a set.
	sort.Strings(vocabulary)

	c.medicines.Store(medicines)
	c.dosages.Store(dosageMap)
	c.vocabulary.Store(vocabulary)
	c.lastLoaded.Store(time.Now())
}

// GetMedicines returns a defensive copy of the catalog in insertion order.
func (c *Container) GetMedicines() []entities.Medicine {
	if v := c.medicines.Load(); v != nil {
		if medicines, ok := v.([]entities.Medicine); ok {
			out := make([]entities.Medicine, len(medicines))
			copy(out, medicines)
			return out
		}
	}

	logging.Warn("Medicine catalog is empty or invalid")
	return []entities.Medicine{}
}

// GetAllSymptoms returns the distinct lowercase symptom vocabulary. The slice
// is a copy; callers must treat it as a set.
func (c *Container) GetAllSymptoms() []string {
	if v := c.vocabulary.Load(); v != nil {
		if vocabulary, ok := v.([]string); ok {
			out := make([]string, len(vocabulary))
			copy(out, vocabulary)
			return out
		}
	}

	logging.Warn("Symptom vocabulary is empty or invalid")
	return []string{}
}

// FindMedicinesForSymptoms returns every medicine whose symptom set overlaps
// the input. Matching is case-insensitive substring-or-equality in both
// directions, so "body ache" finds "ache" and vice versa. This is
// deliberately more permissive than the extractor's word-boundary matching:
// recall matters more than precision when collecting candidates.
func (c *Container) FindMedicinesForSymptoms(symptoms []string) []entities.Medicine {
	if len(symptoms) == 0 {
		return []entities.Medicine{}
	}

	normalized := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			normalized = append(normalized, s)
		}
	}

	medicines := c.rawMedicines()
	results := make([]entities.Medicine, 0)

	for i := range medicines {
		if medicineTreatsAny(&medicines[i], normalized) {
			results = append(results, medicines[i])
		}
	}

	return results
}

func medicineTreatsAny(m *entities.Medicine, symptoms []string) bool {
	for _, catalogSymptom := range m.Symptoms {
		for _, s := range symptoms {
			if strings.Contains(catalogSymptom, s) || strings.Contains(s, catalogSymptom) {
				return true
			}
		}
	}
	return false
}

// GetDosageByAgeGroup looks up the single dosing rule for a medicine and age
// group, case-insensitively and exactly. The second return value is false
// when no rule is on file; an unknown combination is never an error.
func (c *Container) GetDosageByAgeGroup(medicineName, ageGroup string) (entities.AgeDosage, bool) {
	if v := c.dosages.Load(); v != nil {
		if dosages, ok := v.(map[string]entities.AgeDosage); ok {
			d, found := dosages[dosageKey(medicineName, ageGroup)]
			return d, found
		}
	}

	logging.Warn("Dosage index is empty or invalid")
	return entities.AgeDosage{}, false
}

// accentFolder strips diacritics so "paracétamol" matches "paracetamol".
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// SearchMedicines returns medicines whose name, description, or any symptom
// keyword contains the query, case- and accent-insensitively.
func (c *Container) SearchMedicines(query string) []entities.Medicine {
	q := foldAccents(strings.ToLower(strings.TrimSpace(query)))
	if q == "" {
		return []entities.Medicine{}
	}

	medicines := c.rawMedicines()
	results := make([]entities.Medicine, 0)

	for i := range medicines {
		med := &medicines[i]
		if strings.Contains(foldAccents(strings.ToLower(med.Name)), q) ||
			strings.Contains(foldAccents(strings.ToLower(med.Description)), q) ||
			symptomContains(med.Symptoms, q) {
			results = append(results, *med)
		}
	}

	return results
}

func symptomContains(symptoms []string, q string) bool {
	for _, s := range symptoms {
		if strings.Contains(foldAccents(s), q) {
			return true
		}
	}
	return false
}

// rawMedicines returns the live slice without copying. Internal use only:
// callers must not mutate or expose it.
func (c *Container) rawMedicines() []entities.Medicine {
	if v := c.medicines.Load(); v != nil {
		if medicines, ok := v.([]entities.Medicine); ok {
			return medicines
		}
	}
	return nil
}

// GetLastLoaded returns when the catalog was last (re)loaded.
func (c *Container) GetLastLoaded() time.Time {
	if v := c.lastLoaded.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not read last loaded time")
	return time.Time{}
}

// IsReloading reports whether a catalog reload is in progress.
func (c *Container) IsReloading() bool {
	return c.reloading.Load()
}

// BeginReload marks the start of a reload. Returns false when another reload
// already holds the slot.
func (c *Container) BeginReload() bool {
	return c.reloading.CompareAndSwap(false, true)
}

// EndReload marks the end of a reload.
func (c *Container) EndReload() {
	c.reloading.Store(false)
}

// SetServerStartTime records process start for health reporting.
func (c *Container) SetServerStartTime(t time.Time) {
	c.startTime.Store(t)
}

// GetServerStartTime returns the recorded process start time.
func (c *Container) GetServerStartTime() time.Time {
	if v := c.startTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
