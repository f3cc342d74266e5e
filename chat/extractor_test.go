package chat

import (
	"slices"
	"strings"
	"testing"
)

var testVocabulary = []string{
	"fever", "headache", "body ache", "pain", "acidity", "runny nose",
}

func TestExtractSymptomsEmptyMessage(t *testing.T) {
	if got := ExtractSymptoms("", testVocabulary); len(got) != 0 {
		t.Errorf("expected no symptoms for empty message, got %v", got)
	}
	if got := ExtractSymptoms("   \t ", testVocabulary); len(got) != 0 {
		t.Errorf("expected no symptoms for whitespace message, got %v", got)
	}
}

func TestExtractSymptomsWholeWordOnly(t *testing.T) {
	// "feverish" contains "fever" but not as a whole word.
	got := ExtractSymptoms("I feel feverish today", testVocabulary)
	if slices.Contains(got, "fever") {
		t.Errorf("extracted fever from feverish, whole-word matching broken: %v", got)
	}

	got = ExtractSymptoms("I have a fever today", testVocabulary)
	if !slices.Contains(got, "fever") {
		t.Errorf("expected fever to be extracted, got %v", got)
	}
}

func TestExtractSymptomsCaseInsensitive(t *testing.T) {
	got := ExtractSymptoms("TERRIBLE HEADACHE AND FEVER", testVocabulary)
	if !slices.Contains(got, "headache") || !slices.Contains(got, "fever") {
		t.Errorf("expected case-insensitive extraction, got %v", got)
	}
}

func TestExtractSymptomsMultiWordPhrase(t *testing.T) {
	got := ExtractSymptoms("woke up with body ache everywhere", testVocabulary)
	if !slices.Contains(got, "body ache") {
		t.Errorf("expected multi-word phrase body ache, got %v", got)
	}

	// The words out of order must not match the phrase.
	got = ExtractSymptoms("my body is fine, no ache at all", testVocabulary)
	if slices.Contains(got, "body ache") {
		t.Errorf("matched body ache from separated words: %v", got)
	}
}

func TestExtractSymptomsIsVocabularySubset(t *testing.T) {
	got := ExtractSymptoms("fever, headache, nausea and a sore throat", testVocabulary)
	for _, s := range got {
		if !slices.Contains(testVocabulary, s) {
			t.Errorf("extracted %q which is not in the vocabulary", s)
		}
	}
}

func TestExtractSymptomsDeduplicates(t *testing.T) {
	got := ExtractSymptoms("fever in the morning, fever at night", testVocabulary)

	count := 0
	for _, s := range got {
		if s == "fever" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected fever exactly once, got %d in %v", count, got)
	}
}

func TestExtractSymptomsIdempotent(t *testing.T) {
	// Running extraction over its own output changes nothing: every term
	// matches itself as a whole word.
	first := ExtractSymptoms("fever, body ache and a headache", testVocabulary)
	second := ExtractSymptoms(strings.Join(first, " and "), testVocabulary)

	if len(first) != len(second) {
		t.Fatalf("extraction is not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("extraction is not idempotent: %v vs %v", first, second)
		}
	}
}

func TestExtractSymptomsPunctuationBoundary(t *testing.T) {
	got := ExtractSymptoms("Symptoms: fever, headache.", testVocabulary)
	if !slices.Contains(got, "fever") || !slices.Contains(got, "headache") {
		t.Errorf("expected punctuation to act as a word boundary, got %v", got)
	}
}
