// Package controller implements the use-case layer of the interview
// module: stateless services composing repositories and entities to
// enact one business operation each, enforcing the cross-entity rules
// the entities themselves cannot see.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/nkove/interviewd/internal/interview/errors"
	"github.com/nkove/interviewd/internal/interview/events"
	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
)

// EventProducer publishes interview lifecycle events.
type EventProducer interface {
	Produce(eventType events.EventType, interview *models.Interview)
}

// CreateInterviewCommand creates a pending interview between a
// character and a company.
type CreateInterviewCommand struct {
	CharacterID uuid.UUID
	CompanyID   uuid.UUID
	Type        models.InterviewType
	Title       string
	Description string
}

// SendMessageCommand appends one transcript message to an in-progress
// interview.
type SendMessageCommand struct {
	InterviewID uuid.UUID
	Sender      models.MessageSender
	Type        models.MessageType
	Content     string
	Metadata    map[string]any
}

// CompleteInterviewCommand finishes an in-progress interview with an
// optional score and feedback.
type CompleteInterviewCommand struct {
	InterviewID uuid.UUID
	Score       *int
	Feedback    string
}

// InterviewService orchestrates the interview lifecycle. Each command
// performs exactly one persistence write; events fire asynchronously
// after the write succeeds.
type InterviewService struct {
	interviews repository.InterviewRepository
	characters repository.CharacterRepository
	companies  repository.CompanyRepository
	producer   EventProducer
	logger     *zap.Logger
}

// NewInterviewService constructs an InterviewService.
func NewInterviewService(
	interviews repository.InterviewRepository,
	characters repository.CharacterRepository,
	companies repository.CompanyRepository,
	producer EventProducer,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		interviews: interviews,
		characters: characters,
		companies:  companies,
		producer:   producer,
		logger:     logger.Named("interview_service"),
	}
}

// Create validates the character/company pairing and persists a new
// pending interview. Both entities must exist, be active, and be
// compatible.
func (s *InterviewService) Create(ctx context.Context, cmd CreateInterviewCommand) (*models.Interview, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", e.ErrInvalidInput)
	}
	if !cmd.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown interview type %q", e.ErrInvalidInput, cmd.Type)
	}

	character, err := s.characters.FindByID(ctx, cmd.CharacterID)
	if err != nil {
		return nil, err
	}
	if !character.Active {
		return nil, fmt.Errorf("%w: character %s", e.ErrInactiveEntity, character.ID)
	}

	company, err := s.companies.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.Active {
		return nil, fmt.Errorf("%w: company %s", e.ErrInactiveEntity, company.ID)
	}

	if !character.IsCompatibleWith(company.Type) {
		return nil, fmt.Errorf("%w: %s character with %s company", e.ErrIncompatibleCharacter,
			character.CompanyType, company.Type)
	}

	interview := models.NewInterview(character.ID, company.ID, cmd.Type, strings.TrimSpace(cmd.Title), cmd.Description)
	if err := s.interviews.Save(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}

	go func() {
		s.producer.Produce(events.InterviewCreated, interview)
	}()
	return interview, nil
}

// Start transitions the interview to in progress and appends the
// character's greeting as the first AI message. A missing character is
// tolerated: the interview still starts, just without a greeting.
func (s *InterviewService) Start(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error) {
	interview, err := s.interviews.FindByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if err := interview.Start(); err != nil {
		return nil, err
	}

	character, err := s.characters.FindByID(ctx, interview.CharacterID)
	if err == nil {
		if addErr := interview.AddMessage(models.SenderAI, models.MessageTypeText, character.Greeting(),
			map[string]any{"is_greeting": true}); addErr != nil {
			return nil, addErr
		}
	} else {
		s.logger.Warn("starting interview without greeting, character missing",
			zap.String("interview_id", interview.ID.String()),
			zap.String("character_id", interview.CharacterID.String()),
		)
	}

	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	go func() {
		s.producer.Produce(events.InterviewStarted, interview)
	}()
	return interview, nil
}

// SendMessage appends a transcript message to an in-progress interview.
// The active check runs here so callers get ErrInactiveInterview rather
// than the entity's transition error.
func (s *InterviewService) SendMessage(ctx context.Context, cmd SendMessageCommand) (*models.Interview, error) {
	if !cmd.Sender.IsValid() {
		return nil, fmt.Errorf("%w: unknown message sender %q", e.ErrInvalidInput, cmd.Sender)
	}
	if !cmd.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown message type %q", e.ErrInvalidInput, cmd.Type)
	}
	if cmd.Content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", e.ErrInvalidInput)
	}

	interview, err := s.interviews.FindByID(ctx, cmd.InterviewID)
	if err != nil {
		return nil, err
	}
	if !interview.IsActive() {
		return nil, fmt.Errorf("%w: interview %s is %s", e.ErrInactiveInterview, interview.ID, interview.Status)
	}

	if err := interview.AddMessage(cmd.Sender, cmd.Type, cmd.Content, cmd.Metadata); err != nil {
		return nil, err
	}
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	go func() {
		s.producer.Produce(events.InterviewMessage, interview)
	}()
	return interview, nil
}

// Complete finishes an in-progress interview, storing the optional
// score and feedback and computing the duration.
func (s *InterviewService) Complete(ctx context.Context, cmd CompleteInterviewCommand) (*models.Interview, error) {
	interview, err := s.interviews.FindByID(ctx, cmd.InterviewID)
	if err != nil {
		return nil, err
	}
	if err := interview.Complete(cmd.Score, cmd.Feedback); err != nil {
		return nil, err
	}
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	go func() {
		s.producer.Produce(events.InterviewCompleted, interview)
	}()
	return interview, nil
}

// Cancel cancels a pending or in-progress interview.
func (s *InterviewService) Cancel(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error) {
	interview, err := s.interviews.FindByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if err := interview.Cancel(); err != nil {
		return nil, err
	}
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	go func() {
		s.producer.Produce(events.InterviewCancelled, interview)
	}()
	return interview, nil
}

// Get retrieves an interview by id.
func (s *InterviewService) Get(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error) {
	return s.interviews.FindByID(ctx, interviewID)
}

// List retrieves interviews matching the filters.
func (s *InterviewService) List(ctx context.Context, filters repository.InterviewFilters) ([]*models.Interview, error) {
	return s.interviews.FindAll(ctx, filters)
}

// Active retrieves all in-progress interviews.
func (s *InterviewService) Active(ctx context.Context) ([]*models.Interview, error) {
	return s.interviews.FindActive(ctx)
}

// Completed retrieves all completed interviews.
func (s *InterviewService) Completed(ctx context.Context) ([]*models.Interview, error) {
	return s.interviews.FindCompleted(ctx)
}
