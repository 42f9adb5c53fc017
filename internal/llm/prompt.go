package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/josephgoksu/Questifier/models"
	"github.com/josephgoksu/Questifier/prompts"
	"google.golang.org/genai"
)

// Wire keys of the quest schema.
const (
	keyQuestTitle   = "questTitle"
	keyLore         = "lore"
	keyMonster      = "monster"
	keyRewards      = "rewards"
	keyCallToAction = "callToAction"

	keyMonsterName        = "name"
	keyMonsterDescription = "description"
	keyMonsterHP          = "hp"
	keyMonsterStrength    = "strength"
	keyMonsterWeakness    = "weakness"
)

var (
	questRequired   = []string{keyQuestTitle, keyLore, keyMonster, keyRewards, keyCallToAction}
	monsterRequired = []string{keyMonsterName, keyMonsterDescription, keyMonsterHP, keyMonsterStrength, keyMonsterWeakness}
)

// QuestSchema returns the response schema declared to the model.
func QuestSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			keyQuestTitle: {Type: genai.TypeString},
			keyLore:       {Type: genai.TypeString},
			keyMonster: {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					keyMonsterName:        {Type: genai.TypeString},
					keyMonsterDescription: {Type: genai.TypeString},
					keyMonsterHP:          {Type: genai.TypeNumber},
					keyMonsterStrength:    {Type: genai.TypeNumber},
					keyMonsterWeakness:    {Type: genai.TypeString},
				},
				Required:         monsterRequired,
				PropertyOrdering: monsterRequired,
			},
			keyRewards: {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			keyCallToAction: {Type: genai.TypeString},
		},
		Required:         questRequired,
		PropertyOrdering: questRequired,
	}
}

// questPromptData is the template input for prompts.KeyQuest.
type questPromptData struct {
	Title      string
	Notes      string
	Subtasks   string
	Difficulty string
}

// PromptSet holds the parsed templates a generator renders per request.
type PromptSet struct {
	quest  *template.Template
	system *template.Template
}

// NewPromptSet loads and parses the quest prompts through the given loader.
func NewPromptSet(loader *prompts.Loader) (*PromptSet, error) {
	questText, err := loader.Get(prompts.KeyQuest)
	if err != nil {
		return nil, err
	}
	systemText, err := loader.Get(prompts.KeyJSONSystem)
	if err != nil {
		return nil, err
	}

	quest, err := template.New(string(prompts.KeyQuest)).Parse(questText)
	if err != nil {
		return nil, fmt.Errorf("parse quest prompt: %w", err)
	}
	system, err := template.New(string(prompts.KeyJSONSystem)).Parse(systemText)
	if err != nil {
		return nil, fmt.Errorf("parse json system prompt: %w", err)
	}
	return &PromptSet{quest: quest, system: system}, nil
}

// DefaultPromptSet parses the built-in prompts. It panics only if they fail to parse.
func DefaultPromptSet() *PromptSet {
	return &PromptSet{
		quest:  template.Must(template.New(string(prompts.KeyQuest)).Parse(prompts.QuestPrompt)),
		system: template.Must(template.New(string(prompts.KeyJSONSystem)).Parse(prompts.JSONSystemPrompt)),
	}
}

// QuestPrompt renders the user instruction for a task.
func (p *PromptSet) QuestPrompt(input models.TaskInput) (string, error) {
	data := questPromptData{
		Title:      input.Title,
		Notes:      input.Notes,
		Subtasks:   strings.Join(input.TodoTexts(), ", "),
		Difficulty: string(input.Difficulty),
	}
	var buf bytes.Buffer
	if err := p.quest.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute quest prompt: %w", err)
	}
	return buf.String(), nil
}

// SystemPrompt renders the JSON-only instruction with the quest schema embedded.
func (p *PromptSet) SystemPrompt() (string, error) {
	schemaJSON, err := json.MarshalIndent(QuestSchema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal quest schema: %w", err)
	}
	var buf bytes.Buffer
	if err := p.system.Execute(&buf, struct{ Schema string }{Schema: string(schemaJSON)}); err != nil {
		return "", fmt.Errorf("execute json system prompt: %w", err)
	}
	return buf.String(), nil
}

// BuildQuestPrompt renders the built-in quest prompt for input.
func BuildQuestPrompt(input models.TaskInput) (string, error) {
	return DefaultPromptSet().QuestPrompt(input)
}
