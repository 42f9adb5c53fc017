/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import "github.com/josephgoksu/Questifier/models"

// GenerateQuestParams is the input of the generate-quest tool
type GenerateQuestParams struct {
	Title      string   `json:"title" jsonschema:"Task title (required)"`
	Notes      string   `json:"notes,omitempty" jsonschema:"Extra context about the task"`
	Todos      []string `json:"todos,omitempty" jsonschema:"Checklist items (sub-tasks)"`
	Difficulty string   `json:"difficulty,omitempty" jsonschema:"Perceived difficulty: Trivial, Easy, Medium, Hard (default Easy)"`
}

// GenerateQuestResponse is the structured output of the generate-quest tool
type GenerateQuestResponse struct {
	Quest models.Quest `json:"quest"`
	Level int          `json:"level"`
}
