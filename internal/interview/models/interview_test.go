package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	e "github.com/nkove/interviewd/internal/interview/errors"
)

func newTestInterview() *Interview {
	return NewInterview(uuid.New(), uuid.New(), InterviewTypeTechnical, "Backend Screen", "")
}

func TestNewInterview(t *testing.T) {
	characterID := uuid.New()
	companyID := uuid.New()

	i := NewInterview(characterID, companyID, InterviewTypeTechnical, "Backend Screen", "first round")

	if i.ID == uuid.Nil {
		t.Error("expected interview ID to be generated")
	}
	if i.Status != StatusPending {
		t.Errorf("expected status %q, got %q", StatusPending, i.Status)
	}
	if i.CharacterID != characterID || i.CompanyID != companyID {
		t.Error("expected character and company references to be kept")
	}
	if len(i.Messages) != 0 {
		t.Errorf("expected empty transcript, got %d messages", len(i.Messages))
	}
	if i.StartedAt != nil || i.EndedAt != nil || i.DurationMinutes != nil {
		t.Error("expected no lifecycle timestamps on a new interview")
	}
	if i.UpdatedAt.Before(i.CreatedAt) {
		t.Error("expected updated_at >= created_at")
	}
}

func TestInterview_Start(t *testing.T) {
	i := newTestInterview()

	if err := i.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Status != StatusInProgress {
		t.Errorf("expected status %q, got %q", StatusInProgress, i.Status)
	}
	if i.StartedAt == nil {
		t.Error("expected started_at to be set")
	}

	// Starting twice must fail and leave the state untouched.
	err := i.Start()
	if !errors.Is(err, e.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if i.Status != StatusInProgress {
		t.Errorf("status changed on failed transition: %q", i.Status)
	}
}

func TestInterview_Complete(t *testing.T) {
	t.Run("before start fails", func(t *testing.T) {
		i := newTestInterview()
		score := 85
		err := i.Complete(&score, "Strong")
		if !errors.Is(err, e.ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
		if i.Status != StatusPending {
			t.Errorf("status changed on failed transition: %q", i.Status)
		}
	})

	t.Run("after start succeeds", func(t *testing.T) {
		i := newTestInterview()
		if err := i.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		score := 85
		if err := i.Complete(&score, "Strong"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != StatusCompleted {
			t.Errorf("expected status %q, got %q", StatusCompleted, i.Status)
		}
		if i.EndedAt == nil {
			t.Error("expected ended_at to be set")
		}
		if i.Score == nil || *i.Score != 85 {
			t.Errorf("expected score 85, got %v", i.Score)
		}
		if i.Feedback != "Strong" {
			t.Errorf("expected feedback to be stored verbatim, got %q", i.Feedback)
		}
		if i.DurationMinutes == nil || *i.DurationMinutes < 0 {
			t.Errorf("expected non-negative duration, got %v", i.DurationMinutes)
		}
	})

	t.Run("without start time skips duration", func(t *testing.T) {
		i := newTestInterview()
		if err := i.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		i.StartedAt = nil

		if err := i.Complete(nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.DurationMinutes != nil {
			t.Errorf("expected no duration without started_at, got %v", i.DurationMinutes)
		}
	})

	t.Run("duration in whole minutes", func(t *testing.T) {
		i := newTestInterview()
		if err := i.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		started := time.Now().Add(-25*time.Minute - 30*time.Second)
		i.StartedAt = &started

		if err := i.Complete(nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.DurationMinutes == nil || *i.DurationMinutes != 25 {
			t.Errorf("expected duration 25, got %v", i.DurationMinutes)
		}
	})
}

func TestInterview_Cancel(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*Interview)
		expectError bool
	}{
		{
			name:  "from pending",
			setup: func(_ *Interview) {},
		},
		{
			name: "from in progress",
			setup: func(i *Interview) {
				_ = i.Start()
			},
		},
		{
			name: "after complete fails",
			setup: func(i *Interview) {
				_ = i.Start()
				_ = i.Complete(nil, "")
			},
			expectError: true,
		},
		{
			name: "already cancelled stays cancelled",
			setup: func(i *Interview) {
				_ = i.Cancel()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := newTestInterview()
			tt.setup(i)

			err := i.Cancel()
			if tt.expectError {
				if !errors.Is(err, e.ErrInvalidTransition) {
					t.Errorf("expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if i.Status != StatusCancelled {
				t.Errorf("expected status %q, got %q", StatusCancelled, i.Status)
			}
			if i.EndedAt == nil {
				t.Error("expected ended_at to be set")
			}
		})
	}
}

func TestInterview_AddMessage(t *testing.T) {
	t.Run("preserves call order", func(t *testing.T) {
		i := newTestInterview()
		if err := i.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		contents := []string{"first", "second", "third"}
		for _, content := range contents {
			if err := i.AddMessage(SenderUser, MessageTypeText, content, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if len(i.Messages) != len(contents) {
			t.Fatalf("expected %d messages, got %d", len(contents), len(i.Messages))
		}
		for idx, content := range contents {
			if i.Messages[idx].Content != content {
				t.Errorf("message %d: expected %q, got %q", idx, content, i.Messages[idx].Content)
			}
			if i.Messages[idx].ID == uuid.Nil {
				t.Errorf("message %d: expected a fresh id", idx)
			}
		}
	})

	t.Run("rejected outside in progress", func(t *testing.T) {
		tests := []struct {
			name  string
			setup func(*Interview)
		}{
			{"pending", func(_ *Interview) {}},
			{"completed", func(i *Interview) {
				_ = i.Start()
				_ = i.Complete(nil, "")
			}},
			{"cancelled", func(i *Interview) {
				_ = i.Cancel()
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				i := newTestInterview()
				tt.setup(i)
				before := len(i.Messages)

				err := i.AddMessage(SenderUser, MessageTypeText, "hello", nil)
				if !errors.Is(err, e.ErrInvalidTransition) {
					t.Errorf("expected ErrInvalidTransition, got %v", err)
				}
				if len(i.Messages) != before {
					t.Errorf("transcript changed on rejected append: %d -> %d", before, len(i.Messages))
				}
			})
		}
	})

	t.Run("metadata kept", func(t *testing.T) {
		i := newTestInterview()
		if err := i.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := i.AddMessage(SenderAI, MessageTypeText, "hi", map[string]any{"is_greeting": true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := i.Messages[0].Metadata["is_greeting"]; !ok || v != true {
			t.Errorf("expected is_greeting metadata, got %v", i.Messages[0].Metadata)
		}
	})
}

func TestInterview_UpdatedAtRefreshes(t *testing.T) {
	i := newTestInterview()
	previous := i.UpdatedAt

	time.Sleep(time.Millisecond)
	if err := i.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !i.UpdatedAt.After(previous) {
		t.Error("expected updated_at to advance on start")
	}

	previous = i.UpdatedAt
	time.Sleep(time.Millisecond)
	if err := i.AddMessage(SenderUser, MessageTypeText, "hello", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !i.UpdatedAt.After(previous) {
		t.Error("expected updated_at to advance on message append")
	}
}

func TestInterview_TranscriptHelpers(t *testing.T) {
	i := newTestInterview()
	if i.LastMessage() != nil {
		t.Error("expected no last message on empty transcript")
	}
	if err := i.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []struct {
		sender  MessageSender
		msgType MessageType
		content string
	}{
		{SenderAI, MessageTypeQuestion, "why us?"},
		{SenderUser, MessageTypeAnswer, "because"},
		{SenderSystem, MessageTypeSystem, "recording on"},
		{SenderUser, MessageTypeText, "ready"},
	}
	for _, s := range steps {
		if err := i.AddMessage(s.sender, s.msgType, s.content, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if last := i.LastMessage(); last == nil || last.Content != "ready" {
		t.Errorf("expected last message %q, got %+v", "ready", last)
	}
	if got := len(i.MessagesBySender(SenderUser)); got != 2 {
		t.Errorf("expected 2 user messages, got %d", got)
	}
	if got := len(i.MessagesByType(MessageTypeQuestion)); got != 1 {
		t.Errorf("expected 1 question, got %d", got)
	}
	// System entries do not count toward the conversation.
	if got := i.ConversationLength(); got != 3 {
		t.Errorf("expected conversation length 3, got %d", got)
	}
}

func TestInterview_StatusQueries(t *testing.T) {
	i := newTestInterview()
	if !i.IsPending() || i.IsActive() || i.IsCompleted() || i.IsCancelled() {
		t.Error("fresh interview should only be pending")
	}

	_ = i.Start()
	if !i.IsActive() || i.IsPending() {
		t.Error("started interview should only be active")
	}

	_ = i.Complete(nil, "")
	if !i.IsCompleted() || i.IsActive() {
		t.Error("completed interview should only be completed")
	}
}
