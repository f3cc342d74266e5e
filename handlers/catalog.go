package handlers

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/data"
	"github.com/peacematcher/assistant-api/health"
	"github.com/peacematcher/assistant-api/validation"
)

// ServeAllMedicines returns the full medicine catalog.
func ServeAllMedicines(store *data.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, store.GetMedicines())
	}
}

// ServeSymptoms returns the distinct symptom vocabulary.
func ServeSymptoms(store *data.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"symptoms": store.GetAllSymptoms(),
		})
	}
}

// SearchMedicines searches the catalog by name, description or symptom.
func SearchMedicines(store *data.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := url.QueryUnescape(chi.URLParam(r, "query"))
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data",
				"Search query is not valid URL encoding")
			return
		}

		if err := validation.ValidateSearchQuery(query); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data", err.Error())
			return
		}

		RespondWithJSON(w, http.StatusOK, store.SearchMedicines(query))
	}
}

// GetDosage returns the dosage guidance for one medicine and age group.
func GetDosage(store *data.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := url.QueryUnescape(chi.URLParam(r, "name"))
		if err != nil || strings.TrimSpace(name) == "" {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data",
				"Medicine name is required")
			return
		}

		ageGroup := strings.ToLower(chi.URLParam(r, "ageGroup"))
		if !slices.Contains(entities.AgeGroups, ageGroup) {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data",
				"Age group must be one of: "+strings.Join(entities.AgeGroups, ", "))
			return
		}

		dosage, ok := store.GetDosageByAgeGroup(name, ageGroup)
		if !ok {
			RespondWithError(w, http.StatusNotFound, "Not found",
				"No dosage guidance for this medicine and age group")
			return
		}

		RespondWithJSON(w, http.StatusOK, dosage)
	}
}

// HealthCheck reports catalog freshness and process liveness.
func HealthCheck(checker *health.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, details, httpStatus := checker.Check()
		details["status"] = status
		RespondWithJSON(w, httpStatus, details)
	}
}
