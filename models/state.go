package models

// StateInfo is one entry of the static state catalog. Loaded at startup and
// never mutated afterwards.
type StateInfo struct {
	Slug           string  `json:"slug"`
	Name           string  `json:"name"`
	AgeRequirement int     `json:"ageRequirement"`
	CardFee        float64 `json:"cardFee"` // 0 means free
	Description    string  `json:"description"`
}
