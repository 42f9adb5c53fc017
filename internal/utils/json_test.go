package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain object", input: `{"name": "Slime"}`, want: "Slime"},
		{name: "json fence", input: "```json\n{\"name\": \"Slime\"}\n```", want: "Slime"},
		{name: "bare fence", input: "```\n{\"name\": \"Slime\"}\n```", want: "Slime"},
		{name: "leading prose", input: `Here is your quest: {"name": "Slime"}`, want: "Slime"},
		{name: "trailing prose", input: `{"name": "Slime"} Good luck!`, want: "Slime"},
		{name: "literal newline in string", input: "{\"name\": \"Sli\nme\"}", want: "Sli\nme"},
		{name: "quoted json string", input: `"{\"name\": \"Slime\"}"`, want: "Slime"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "no json", input: "the model refused", wantErr: true},
		{name: "truncated", input: `{"name": "Sli`, wantErr: true},
		{name: "trailing comma", input: `{"name": "Slime",}`, wantErr: true},
		{name: "trailing comma beside string with comma bracket", input: `{"name": "Sort, ]the pile", "loot": ["a",]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAndParseJSON[map[string]any](tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got["name"])
		})
	}
}

func TestExtractAndParseJSON_KeepsNumbersExact(t *testing.T) {
	got, err := ExtractAndParseJSON[map[string]any](`{"hp": 50, "strength": 12.5}`)
	require.NoError(t, err)
	assert.Equal(t, json.Number("50"), got["hp"])
	assert.Equal(t, json.Number("12.5"), got["strength"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("nothing here")
	assert.ErrorIs(t, err, ErrNoJSON)
}
