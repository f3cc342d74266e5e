package chat

import (
	"strings"

	"github.com/peacematcher/assistant-api/catalog/entities"
)

// FilterContraindicated removes candidates that are unsafe for the user. A
// medicine is excluded when any of its contraindications exactly equals
// (case-insensitively) one of the user's allergies or conditions. Exact
// matching rather than substring: missing a real contraindication is the
// dangerous failure here, so this stage never guesses. Surviving candidates
// keep their input order.
func FilterContraindicated(candidates []entities.Medicine, allergies, conditions []string) []entities.Medicine {
	if len(allergies) == 0 && len(conditions) == 0 {
		return candidates
	}

	unsafe := make(map[string]bool, len(allergies)+len(conditions))
	for _, a := range allergies {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			unsafe[a] = true
		}
	}
	for _, c := range conditions {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			unsafe[c] = true
		}
	}

	if len(unsafe) == 0 {
		return candidates
	}

	safe := make([]entities.Medicine, 0, len(candidates))
	for i := range candidates {
		if !isContraindicated(&candidates[i], unsafe) {
			safe = append(safe, candidates[i])
		}
	}

	return safe
}

func isContraindicated(m *entities.Medicine, unsafe map[string]bool) bool {
	for _, contra := range m.Contraindications {
		if unsafe[strings.ToLower(strings.TrimSpace(contra))] {
			return true
		}
	}
	return false
}
