package models

// Questionnaire is one configured visitor-counting campaign.
type Questionnaire struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Site is a physical counting location attached to a questionnaire.
type Site struct {
	ID              int64  `json:"id"`
	QuestionnaireID int64  `json:"questionnaire_id"`
	Name            string `json:"name"`
}

// CampaignConfig is the payload of GET /api/config: everything a device
// needs to know about its campaign at session start, including the current
// favorite-locality ranking.
type CampaignConfig struct {
	Questionnaire Questionnaire      `json:"questionnaire"`
	Sites         []Site             `json:"sites"`
	Favorites     []FavoriteLocality `json:"favorites"`
}
