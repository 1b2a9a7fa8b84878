package model

// RankingEntry is a user with their accumulated points. Entries keep the
// user listing order; no sorting by score is applied.
type RankingEntry struct {
	Nickname string  `json:"nickname"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Points   float64 `json:"points"`
}
