package models

// Locality is one entry of the shared geographic reference table. The full
// table is small enough to be replicated onto every device for offline
// autocomplete.
type Locality struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
}

// LocalityUsage is the server-owned derived aggregate for one
// (questionnaire, locality) pair. UseCount only ever grows; UsagePercentage
// is recomputed from scratch after every increment and is never
// independently authoritative.
type LocalityUsage struct {
	QuestionnaireID int64   `json:"questionnaire_id"`
	LocalityID      int64   `json:"locality_id"`
	UseCount        int64   `json:"use_count"`
	UsagePercentage float64 `json:"usage_percentage"`
	Pinned          bool    `json:"pinned"`
	DisplayOrder    int     `json:"display_order"`
}

// FavoriteLocality is a locality surfaced to the device as a quick pick:
// either manually pinned or accounting for at least 5% of the
// questionnaire's locality references.
type FavoriteLocality struct {
	Locality
	UseCount        int64   `json:"use_count"`
	UsagePercentage float64 `json:"usage_percentage"`
	Pinned          bool    `json:"pinned"`
	DisplayOrder    int     `json:"display_order"`
}
