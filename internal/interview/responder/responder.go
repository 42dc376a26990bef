// Package responder defines the boundary to the conversational-response
// generator. The Scripted implementation is a deterministic stand-in
// for a real dialogue engine; anything that can phrase a reply for a
// character can sit behind the same interface.
package responder

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkove/interviewd/internal/interview/models"
)

// Responder produces the interviewer's reply to a candidate message.
type Responder interface {
	Reply(ctx context.Context, character *models.Character, company *models.Company, interview *models.Interview, userMessage string) (string, error)
}

// Scripted cycles through canned prompts shaped by the character's
// interview approach and the company context.
type Scripted struct{}

// NewScripted constructs the canned responder.
func NewScripted() *Scripted {
	return &Scripted{}
}

var prompts = []string{
	"That's interesting. Could you walk me through a concrete example?",
	"How would you approach that differently with hindsight?",
	"What trade-offs did you consider there?",
	"Tell me more about your role in that outcome.",
	"What was the hardest part, and how did you handle it?",
}

// Reply picks the next prompt based on how far the conversation has
// progressed, opening with the company context on the first exchange.
func (s *Scripted) Reply(_ context.Context, character *models.Character, company *models.Company, interview *models.Interview, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("empty user message")
	}

	// First candidate answer gets the company framing before the probe.
	userCount := len(interview.MessagesBySender(models.SenderUser))
	prompt := prompts[userCount%len(prompts)]
	if userCount <= 1 && company != nil {
		return company.InterviewContext() + " " + prompt, nil
	}
	if character != nil && character.Personality.InterviewApproach != "" && userCount%len(prompts) == 0 {
		return fmt.Sprintf("My approach here %s. %s", character.Personality.InterviewApproach, prompt), nil
	}
	return prompt, nil
}
