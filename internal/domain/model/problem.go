package model

// Problem is a contest problem. A solved problem awards
// BasePoints * Multiplier plus any per-PR bonus.
type Problem struct {
	ID          string  `json:"-"`
	ProblemID   string  `json:"id"`
	Name        string  `json:"name"`
	LevelName   string  `json:"level_name"`
	BasePoints  float64 `json:"base_points"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}
