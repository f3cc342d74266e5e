// Package entities defines the data types served by the medicine knowledge base.
package entities

// Medicine describes one drug in the catalog: what it treats, what it does to
// you, and who must not take it. Records are loaded once and never mutated.
type Medicine struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Symptoms          []string `json:"symptoms"`
	SideEffects       []string `json:"sideEffects"`
	Contraindications []string `json:"contraindications"`
	DosageForm        string   `json:"dosageForm"`
}

// AgeDosage is one (medicine, age group) dosing rule. Not every medicine has
// an entry for every age group; absence means "no dosage on file".
type AgeDosage struct {
	Medicine            string `json:"medicine"`
	AgeGroup            string `json:"ageGroup"`
	Dosage              string `json:"dosage"`
	Frequency           string `json:"frequency"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// AgeGroups is the fixed age-group enumeration used by the dosing table and
// by chat requests.
var AgeGroups = []string{"child", "teen", "adult", "senior"}
