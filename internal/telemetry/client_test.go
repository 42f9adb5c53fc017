package telemetry

import (
	"runtime"
	"sync"
	"testing"

	"github.com/posthog/posthog-go"
)

// mockEnqueuer captures events for testing.
type mockEnqueuer struct {
	mu     sync.Mutex
	events []posthog.Capture
	closed bool
}

func (m *mockEnqueuer) Enqueue(msg posthog.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if capture, ok := msg.(posthog.Capture); ok {
		m.events = append(m.events, capture)
	}
	return nil
}

func (m *mockEnqueuer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockEnqueuer) getEvents() []posthog.Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]posthog.Capture, len(m.events))
	copy(result, m.events)
	return result
}

func newTestClient(cfg *Config, version string) (*PostHogClient, *mockEnqueuer) {
	mock := &mockEnqueuer{}
	return newPostHogClientWithEnqueuer(mock, cfg, version), mock
}

func TestPostHogClient_Track_QuestGenerated(t *testing.T) {
	cfg := &Config{Enabled: true, AnonymousID: "anon-123"}
	client, mock := newTestClient(cfg, "0.3.0")

	client.Track(EventQuestGenerated, QuestProperties("gemini", "Hard", 2, "success"))

	events := mock.getEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	event := events[0]

	if event.Event != EventQuestGenerated {
		t.Errorf("event name = %q, want %q", event.Event, EventQuestGenerated)
	}
	if event.DistinctId != "anon-123" {
		t.Errorf("distinct_id = %q, want %q", event.DistinctId, "anon-123")
	}
	if event.Properties["provider"] != "gemini" {
		t.Errorf("provider = %v, want gemini", event.Properties["provider"])
	}
	if event.Properties["todo_count"] != 2 {
		t.Errorf("todo_count = %v, want 2", event.Properties["todo_count"])
	}
	if event.Properties["os"] != runtime.GOOS {
		t.Errorf("os = %v, want %q", event.Properties["os"], runtime.GOOS)
	}
	if event.Properties["cli_version"] != "0.3.0" {
		t.Errorf("cli_version = %v, want 0.3.0", event.Properties["cli_version"])
	}
	if event.Properties["$process_person_profile"] != false {
		t.Error("person profiles must be disabled")
	}
}

func TestPostHogClient_Track_WhenDisabled(t *testing.T) {
	client, mock := newTestClient(&Config{Enabled: false, AnonymousID: "anon"}, "0.3.0")

	client.Track(EventQuestFailed, nil)

	if n := len(mock.getEvents()); n != 0 {
		t.Errorf("expected 0 events when disabled, got %d", n)
	}
}

func TestPostHogClient_Track_NilConfig(t *testing.T) {
	client, mock := newTestClient(nil, "0.3.0")

	client.Track(EventQuestFailed, nil)

	if n := len(mock.getEvents()); n != 0 {
		t.Errorf("expected 0 events with nil config, got %d", n)
	}
}

func TestPostHogClient_CloseThenTrack(t *testing.T) {
	client, mock := newTestClient(&Config{Enabled: true, AnonymousID: "anon"}, "0.3.0")

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.closed {
		t.Error("underlying client should be closed")
	}

	client.Track(EventQuestGenerated, nil)
	if n := len(mock.getEvents()); n != 0 {
		t.Errorf("expected no events after Close, got %d", n)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNew_ReturnsNoopWhenOff(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClientConfig
	}{
		{"no api key", ClientConfig{Config: &Config{Enabled: true, AnonymousID: "a"}}},
		{"disabled", ClientConfig{APIKey: "phc_test", Config: &Config{Enabled: false}}},
		{"nil config", ClientConfig{APIKey: "phc_test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, ok := client.(*NoopClient); !ok {
				t.Errorf("New() = %T, want *NoopClient", client)
			}
		})
	}
}

func TestQuestProperties_NoTaskText(t *testing.T) {
	props := QuestProperties("openai", "Easy", 0, "malformed")
	for _, key := range []string{"title", "notes", "todos"} {
		if _, ok := props[key]; ok {
			t.Errorf("properties must not contain %q", key)
		}
	}
	if len(props) != 4 {
		t.Errorf("expected 4 properties, got %d", len(props))
	}
}
