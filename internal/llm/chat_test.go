package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error
	calls int
	got   []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestChatGenerator_Success(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("Here you go:\n```json\n"+garageQuestJSON+"\n```", nil)}
	g := newChatGeneratorWithModel(fake, Config{Provider: ProviderOpenAI})

	quest, err := g.GenerateQuest(context.Background(), garageInput())
	require.NoError(t, err)
	assert.Equal(t, garageQuest(), quest)

	assert.Equal(t, 1, fake.calls)
	require.Len(t, fake.got, 2)
	assert.Equal(t, schema.System, fake.got[0].Role)
	assert.Contains(t, fake.got[0].Content, "callToAction")
	assert.Equal(t, schema.User, fake.got[1].Role)
	assert.Contains(t, fake.got[1].Content, "Clean the garage")
}

func TestChatGenerator_Failures(t *testing.T) {
	tests := []struct {
		name   string
		fake   *fakeChatModel
		wantIs error
	}{
		{name: "transport", fake: &fakeChatModel{err: errors.New("401 unauthorized")}, wantIs: ErrTransport},
		{name: "nil reply", fake: &fakeChatModel{}, wantIs: ErrEmptyResponse},
		{name: "blank reply", fake: &fakeChatModel{reply: schema.AssistantMessage("  ", nil)}, wantIs: ErrEmptyResponse},
		{name: "prose", fake: &fakeChatModel{reply: schema.AssistantMessage("Sorry, I can't.", nil)}, wantIs: ErrMalformedResponse},
		{name: "wrong types", fake: &fakeChatModel{reply: schema.AssistantMessage(`{"questTitle":1,"lore":"l","monster":{},"rewards":[],"callToAction":"c"}`, nil)}, wantIs: ErrInvalidQuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newChatGeneratorWithModel(tt.fake, Config{Provider: ProviderAnthropic})
			_, err := g.GenerateQuest(context.Background(), garageInput())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Equal(t, ProviderAnthropic, AsGenerationError(err).Provider)
			assert.Equal(t, 1, tt.fake.calls)
		})
	}
}
