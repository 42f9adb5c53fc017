package models

import "math"

// Monster is the boss a task has been turned into.
type Monster struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	HP          float64 `json:"hp"`
	Strength    float64 `json:"strength"`
	Weakness    string  `json:"weakness"`
}

// Quest is the RPG rendition of a task as produced by the model.
type Quest struct {
	QuestTitle   string   `json:"questTitle"`
	Lore         string   `json:"lore"`
	Monster      Monster  `json:"monster"`
	Rewards      []string `json:"rewards"`
	CallToAction string   `json:"callToAction"`
}

// Level is the monster level shown on the card header (one level per 10 HP).
func (q Quest) Level() int {
	if q.Monster.HP <= 0 {
		return 0
	}
	return int(math.Floor(q.Monster.HP / 10))
}
