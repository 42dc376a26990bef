package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	e "github.com/nkove/interviewd/internal/interview/errors"
)

// InterviewType represents the kind of interview being simulated.
type InterviewType string

const (
	InterviewTypeTechnical    InterviewType = "technical"
	InterviewTypeBehavioral   InterviewType = "behavioral"
	InterviewTypeSystemDesign InterviewType = "system_design"
	InterviewTypeCulturalFit  InterviewType = "cultural_fit"
	InterviewTypeLeadership   InterviewType = "leadership"
)

// IsValid checks whether the value is a known InterviewType.
func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewTypeTechnical, InterviewTypeBehavioral, InterviewTypeSystemDesign,
		InterviewTypeCulturalFit, InterviewTypeLeadership:
		return true
	default:
		return false
	}
}

func (t InterviewType) String() string {
	return string(t)
}

// InterviewStatus is the state of the interview lifecycle.
//
// Transitions are monotonic: pending -> in_progress -> completed, with
// cancelled reachable from any non-terminal state. Completed and
// cancelled are terminal.
type InterviewStatus string

const (
	StatusPending    InterviewStatus = "pending"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

// IsValid checks whether the value is a known InterviewStatus.
func (s InterviewStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s InterviewStatus) String() string {
	return string(s)
}

// MessageSender identifies who authored a transcript message.
type MessageSender string

const (
	SenderUser   MessageSender = "user"
	SenderAI     MessageSender = "ai"
	SenderSystem MessageSender = "system"
)

// IsValid checks whether the value is a known MessageSender.
func (s MessageSender) IsValid() bool {
	switch s {
	case SenderUser, SenderAI, SenderSystem:
		return true
	default:
		return false
	}
}

func (s MessageSender) String() string {
	return string(s)
}

// MessageType classifies a transcript message.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeQuestion MessageType = "question"
	MessageTypeAnswer   MessageType = "answer"
	MessageTypeSystem   MessageType = "system"
)

// IsValid checks whether the value is a known MessageType.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeQuestion, MessageTypeAnswer, MessageTypeSystem:
		return true
	default:
		return false
	}
}

func (t MessageType) String() string {
	return string(t)
}

// Message is one entry in an interview transcript. Messages are immutable
// once appended; their order is append order.
type Message struct {
	ID        uuid.UUID      `json:"id"`
	Sender    MessageSender  `json:"sender"`
	Type      MessageType    `json:"type"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Interview is the aggregate root of the module. It references its
// character and company by identifier only and owns the transcript and
// the status state machine.
type Interview struct {
	ID          uuid.UUID
	CharacterID uuid.UUID
	CompanyID   uuid.UUID
	Type        InterviewType
	Status      InterviewStatus
	Title       string
	Description string
	Messages    []Message
	// DurationMinutes is set exactly once, at completion, when a start
	// time exists.
	DurationMinutes *int
	Score           *int
	Feedback        string
	StartedAt       *time.Time
	EndedAt         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewInterview constructs a pending Interview with a generated ID and an
// empty transcript.
func NewInterview(
	characterID uuid.UUID,
	companyID uuid.UUID,
	interviewType InterviewType,
	title string,
	description string,
) *Interview {
	now := time.Now()
	return &Interview{
		ID:          uuid.New(),
		CharacterID: characterID,
		CompanyID:   companyID,
		Type:        interviewType,
		Status:      StatusPending,
		Title:       title,
		Description: description,
		Messages:    []Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Start moves the interview from pending to in progress and records the
// start time.
func (i *Interview) Start() error {
	if i.Status != StatusPending {
		return fmt.Errorf("%w: interview can only be started from pending status", e.ErrInvalidTransition)
	}
	now := time.Now()
	i.Status = StatusInProgress
	i.StartedAt = &now
	i.UpdatedAt = now
	return nil
}

// Complete moves the interview from in progress to completed, storing
// the optional score and feedback verbatim. The duration is computed in
// whole minutes when a start time exists.
func (i *Interview) Complete(score *int, feedback string) error {
	if i.Status != StatusInProgress {
		return fmt.Errorf("%w: interview can only be completed from in-progress status", e.ErrInvalidTransition)
	}
	now := time.Now()
	i.Status = StatusCompleted
	i.EndedAt = &now
	i.Score = score
	i.Feedback = feedback
	if i.StartedAt != nil {
		minutes := int(now.Sub(*i.StartedAt) / time.Minute)
		i.DurationMinutes = &minutes
	}
	i.UpdatedAt = now
	return nil
}

// Cancel moves any non-terminal interview to cancelled. A completed
// interview cannot be cancelled.
func (i *Interview) Cancel() error {
	if i.Status == StatusCompleted {
		return fmt.Errorf("%w: cannot cancel a completed interview", e.ErrInvalidTransition)
	}
	now := time.Now()
	i.Status = StatusCancelled
	i.EndedAt = &now
	i.UpdatedAt = now
	return nil
}

// AddMessage appends a transcript message. Messages may only be added
// while the interview is in progress.
func (i *Interview) AddMessage(sender MessageSender, msgType MessageType, content string, metadata map[string]any) error {
	if i.Status != StatusInProgress {
		return fmt.Errorf("%w: messages can only be added to in-progress interviews", e.ErrInvalidTransition)
	}
	now := time.Now()
	i.Messages = append(i.Messages, Message{
		ID:        uuid.New(),
		Sender:    sender,
		Type:      msgType,
		Content:   content,
		Timestamp: now,
		Metadata:  metadata,
	})
	i.UpdatedAt = now
	return nil
}

// LastMessage returns the most recent transcript message, or nil when
// the transcript is empty.
func (i *Interview) LastMessage() *Message {
	if len(i.Messages) == 0 {
		return nil
	}
	return &i.Messages[len(i.Messages)-1]
}

// MessagesByType returns transcript messages of the given type, in order.
func (i *Interview) MessagesByType(msgType MessageType) []Message {
	var out []Message
	for _, m := range i.Messages {
		if m.Type == msgType {
			out = append(out, m)
		}
	}
	return out
}

// MessagesBySender returns transcript messages from the given sender, in order.
func (i *Interview) MessagesBySender(sender MessageSender) []Message {
	var out []Message
	for _, m := range i.Messages {
		if m.Sender == sender {
			out = append(out, m)
		}
	}
	return out
}

// ConversationLength counts the conversational messages (text, question,
// answer), excluding system entries.
func (i *Interview) ConversationLength() int {
	count := 0
	for _, m := range i.Messages {
		switch m.Type {
		case MessageTypeText, MessageTypeQuestion, MessageTypeAnswer:
			count++
		}
	}
	return count
}

// IsActive reports whether the interview is currently in progress.
func (i *Interview) IsActive() bool {
	return i.Status == StatusInProgress
}

// IsPending reports whether the interview has not started yet.
func (i *Interview) IsPending() bool {
	return i.Status == StatusPending
}

// IsCompleted reports whether the interview finished normally.
func (i *Interview) IsCompleted() bool {
	return i.Status == StatusCompleted
}

// IsCancelled reports whether the interview was cancelled.
func (i *Interview) IsCancelled() bool {
	return i.Status == StatusCancelled
}
