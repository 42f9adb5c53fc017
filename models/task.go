/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Difficulty is the user-perceived difficulty of a task.
// It is only used as prompt context; no numeric mapping is enforced.
type Difficulty string

const (
	DifficultyTrivial Difficulty = "Trivial"
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
)

// DefaultDifficulty is preselected on a fresh task form.
const DefaultDifficulty = DifficultyEasy

// Difficulties returns every difficulty level in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyTrivial, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a label in any casing ("hard", "HARD") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	label := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Difficulties() {
		if string(d) == label {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q (expected one of: Trivial, Easy, Medium, Hard)", s)
}

// TodoItem is a single checklist entry on a task.
type TodoItem struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"notblank"`
}

// NewTodoItem creates a checklist entry with a fresh unique ID.
// Returns false when text is blank.
func NewTodoItem(text string) (TodoItem, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TodoItem{}, false
	}
	return TodoItem{ID: uuid.NewString(), Text: text}, true
}

// TaskInput is the submitted task that gets turned into a quest.
// It is built once at submit time and never mutated afterwards.
type TaskInput struct {
	Title      string     `json:"title" validate:"notblank"`
	Notes      string     `json:"notes"`
	Todos      []TodoItem `json:"todos" validate:"dive"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=Trivial Easy Medium Hard"`
}

// TodoTexts returns the checklist texts in order.
func (t TaskInput) TodoTexts() []string {
	texts := make([]string, 0, len(t.Todos))
	for _, todo := range t.Todos {
		texts = append(texts, todo.Text)
	}
	return texts
}

// Clone returns a copy of the input that shares no slice storage with t.
func (t TaskInput) Clone() TaskInput {
	c := t
	if t.Todos != nil {
		c.Todos = make([]TodoItem, len(t.Todos))
		copy(c.Todos, t.Todos)
	}
	return c
}

// Validate checks the input against its validation tags.
func (t TaskInput) Validate() error {
	return ValidateStruct(t)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = newValidator()
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = newValidator()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
