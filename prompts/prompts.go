package prompts

// Quest prompts are Go text/templates. The quest template receives
// Title, Notes, Subtasks (comma-joined) and Difficulty; the JSON system
// template receives Schema (the indented JSON schema of a quest).
const (
	// QuestPrompt turns a task into an RPG boss battle.
	QuestPrompt = `You are a creative writer for Habitica, a gamified task manager.
Transform the following user task into an epic RPG Quest/Boss Battle.

User Task Details:
- Title: {{.Title}}
- Notes: {{.Notes}}
- Sub-tasks: {{.Subtasks}}
- Perceived Difficulty: {{.Difficulty}}

Requirements:
1. Create a Monster/Boss that metaphorically represents the task (e.g., "The Procrastination Slime" or "The Paperwork Golem").
2. Write a short, witty lore backstory suitable for a pixel-art RPG. Use puns if appropriate.
3. Define monster stats (HP and Strength) scaled roughly by the difficulty.
4. Suggest rewards (Gold, Experience, or imaginary items like "Potion of Focus").
5. Keep the tone supportive, fun, and adventurous, and close with an encouraging call to action.
`

	// JSONSystemPrompt constrains providers that have no native response schema.
	JSONSystemPrompt = `You respond with a single JSON object and nothing else.
Do not wrap the JSON in Markdown fences and do not add commentary before or after it.
The object MUST match this schema exactly, with every required key present:

{{.Schema}}
`
)
