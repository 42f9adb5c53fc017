package telemetry

// Event names.
const (
	EventQuestGenerated = "quest_generated"
	EventQuestFailed    = "quest_failed"
)

// QuestProperties builds the properties of a quest event. Task text is never included.
func QuestProperties(provider, difficulty string, todoCount int, outcome string) Properties {
	return Properties{
		"provider":   provider,
		"difficulty": difficulty,
		"todo_count": todoCount,
		"outcome":    outcome,
	}
}
