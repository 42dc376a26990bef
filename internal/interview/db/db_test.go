package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	e "github.com/nkove/interviewd/internal/interview/errors"
	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
	"github.com/nkove/interviewd/internal/pkg/utils"
)

// SetupTestDB initializes an in-memory SQLite database for testing.
func SetupTestDB(t *testing.T) *Store {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	store, err := NewWithDB(gdb)
	require.NoError(t, err, "failed to migrate test database")

	return store
}

func testCharacter() *models.Character {
	return models.NewCharacter("Test Character", models.RoleTechLead, models.GenderFemale,
		models.CompanyTypeStartup, "A test interviewer.",
		models.Personality{
			Traits:             []string{"direct", "curious"},
			CommunicationStyle: "casual",
			ExpertiseAreas:     []string{"backend"},
			InterviewApproach:  "practical",
		},
		models.Appearance{AvatarURL: "https://example.com/avatar.png"},
	)
}

func testCompany() *models.Company {
	return models.NewCompany("Test Company", models.CompanyTypeFAANG, "A test company.",
		models.CompanyProfile{
			Industry: "software",
			Size:     "10000+",
			Culture:  []string{"scale"},
			Values:   []string{"rigor"},
		},
	)
}

// TestCharacterRoundTrip verifies a character survives persistence intact.
func TestCharacterRoundTrip(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	character := testCharacter()
	require.NoError(t, repo.Save(ctx, character), "Save should succeed")

	got, err := repo.FindByID(ctx, character.ID)
	assert.NoError(t, err, "FindByID should retrieve the saved character")
	assert.Equal(t, character.Name, got.Name, "name should survive the round trip")
	assert.Equal(t, character.Role, got.Role, "role should survive the round trip")
	assert.Equal(t, character.Personality.Traits, got.Personality.Traits, "personality should survive the round trip")
	assert.Equal(t, character.Appearance.AvatarURL, got.Appearance.AvatarURL, "appearance should survive the round trip")
	assert.True(t, got.Active, "active flag should survive the round trip")
}

// TestCharacterDuplicateSave verifies the duplicate-key mapping.
func TestCharacterDuplicateSave(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	character := testCharacter()
	require.NoError(t, repo.Save(ctx, character), "first Save should succeed")

	err := repo.Save(ctx, character)
	assert.ErrorIs(t, err, e.ErrDuplicateID, "second Save with the same id should fail")
}

// TestCharacterNotFound verifies error handling for unknown ids.
func TestCharacterNotFound(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound, "FindByID should return ErrNotFound for unknown id")

	err = repo.Update(ctx, testCharacter())
	assert.ErrorIs(t, err, e.ErrNotFound, "Update should return ErrNotFound for unknown id")
}

// TestCharacterUpdate checks that updates, including flag flips, persist.
func TestCharacterUpdate(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	character := testCharacter()
	require.NoError(t, repo.Save(ctx, character), "Save should succeed")

	character.Deactivate()
	character.UpdateName("Renamed Character")
	require.NoError(t, repo.Update(ctx, character), "Update should succeed")

	got, err := repo.FindByID(ctx, character.ID)
	assert.NoError(t, err, "FindByID should succeed")
	assert.Equal(t, models.Name("Renamed Character"), got.Name, "name should be updated")
	assert.False(t, got.Active, "active=false must persist through the update")
}

// TestCharacterFilters exercises the listing predicates.
func TestCharacterFilters(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	hr := testCharacter()
	hr.Role = models.RoleHR
	tech := testCharacter()
	retired := testCharacter()
	retired.Deactivate()

	for _, c := range []*models.Character{hr, tech, retired} {
		require.NoError(t, repo.Save(ctx, c), "Save should succeed")
	}

	byRole, err := repo.FindByRole(ctx, models.RoleHR)
	assert.NoError(t, err)
	assert.Len(t, byRole, 1, "role filter should match only the HR character")

	active, err := repo.FindActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, active, 2, "active filter should exclude the retired character")

	none, err := repo.FindAll(ctx, repository.CharacterFilters{
		Role: utils.Ptr(models.CharacterRole("janitor")),
	})
	assert.NoError(t, err)
	assert.Empty(t, none, "unknown role value should match nothing")
}

// TestCharacterDeleteExists verifies deletion and existence checks.
func TestCharacterDeleteExists(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Characters()
	ctx := context.Background()

	character := testCharacter()
	require.NoError(t, repo.Save(ctx, character), "Save should succeed")

	exists, err := repo.Exists(ctx, character.ID)
	assert.NoError(t, err)
	assert.True(t, exists, "saved character should exist")

	removed, err := repo.Delete(ctx, character.ID)
	assert.NoError(t, err)
	assert.True(t, removed, "Delete should report removal")

	removed, err = repo.Delete(ctx, character.ID)
	assert.NoError(t, err)
	assert.False(t, removed, "repeated Delete should be a no-op")

	exists, err = repo.Exists(ctx, character.ID)
	assert.NoError(t, err)
	assert.False(t, exists, "deleted character should not exist")
}

// TestCompanyRoundTrip verifies a company survives persistence intact.
func TestCompanyRoundTrip(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Companies()
	ctx := context.Background()

	company := testCompany()
	company.UpdateLogoURL("https://example.com/logo.svg")
	require.NoError(t, repo.Save(ctx, company), "Save should succeed")

	got, err := repo.FindByID(ctx, company.ID)
	assert.NoError(t, err, "FindByID should retrieve the saved company")
	assert.Equal(t, company.Name, got.Name, "name should survive the round trip")
	assert.Equal(t, company.Type, got.Type, "type should survive the round trip")
	assert.Equal(t, company.Profile.Culture, got.Profile.Culture, "profile should survive the round trip")
	assert.Equal(t, company.LogoURL, got.LogoURL, "logo reference should survive the round trip")
}

// TestCompanyFilters exercises the listing predicates.
func TestCompanyFilters(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Companies()
	ctx := context.Background()

	faang := testCompany()
	startup := testCompany()
	startup.Type = models.CompanyTypeStartup
	startup.Deactivate()

	for _, c := range []*models.Company{faang, startup} {
		require.NoError(t, repo.Save(ctx, c), "Save should succeed")
	}

	byType, err := repo.FindByType(ctx, models.CompanyTypeStartup)
	assert.NoError(t, err)
	assert.Len(t, byType, 1, "type filter should match only the startup")

	active, err := repo.FindActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, active, 1, "active filter should exclude the closed company")
	assert.Equal(t, faang.ID, active[0].ID)
}

// TestInterviewRoundTrip verifies the aggregate, transcript included,
// survives persistence intact.
func TestInterviewRoundTrip(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Interviews()
	ctx := context.Background()

	interview := models.NewInterview(uuid.New(), uuid.New(), models.InterviewTypeSystemDesign, "Design Round", "notes")
	require.NoError(t, repo.Save(ctx, interview), "Save should succeed")

	require.NoError(t, interview.Start(), "Start should succeed")
	require.NoError(t, interview.AddMessage(models.SenderAI, models.MessageTypeText, "Welcome!",
		map[string]any{"is_greeting": true}), "AddMessage should succeed")
	require.NoError(t, interview.AddMessage(models.SenderUser, models.MessageTypeText, "Thanks!", nil),
		"AddMessage should succeed")
	require.NoError(t, repo.Update(ctx, interview), "Update should succeed")

	got, err := repo.FindByID(ctx, interview.ID)
	assert.NoError(t, err, "FindByID should succeed")
	assert.Equal(t, models.StatusInProgress, got.Status, "status should survive the round trip")
	require.Len(t, got.Messages, 2, "transcript should survive the round trip")
	assert.Equal(t, "Welcome!", got.Messages[0].Content, "message order should be preserved")
	assert.Equal(t, models.SenderAI, got.Messages[0].Sender)
	assert.Equal(t, true, got.Messages[0].Metadata["is_greeting"], "metadata should survive the round trip")
	require.NotNil(t, got.StartedAt, "started_at should survive the round trip")
	assert.WithinDuration(t, *interview.StartedAt, *got.StartedAt, time.Second)
	assert.Nil(t, got.EndedAt, "ended_at should stay unset")
	assert.Nil(t, got.Score, "score should stay unset")
}

// TestInterviewCompletionPersists verifies completion fields persist.
func TestInterviewCompletionPersists(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Interviews()
	ctx := context.Background()

	interview := models.NewInterview(uuid.New(), uuid.New(), models.InterviewTypeTechnical, "Screen", "")
	require.NoError(t, repo.Save(ctx, interview), "Save should succeed")
	require.NoError(t, interview.Start(), "Start should succeed")
	require.NoError(t, interview.Complete(utils.Ptr(88), "Good depth."), "Complete should succeed")
	require.NoError(t, repo.Update(ctx, interview), "Update should succeed")

	got, err := repo.FindByID(ctx, interview.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.NotNil(t, got.Score, "score should persist")
	assert.Equal(t, 88, *got.Score)
	assert.Equal(t, "Good depth.", got.Feedback)
	require.NotNil(t, got.DurationMinutes, "duration should persist")
	assert.GreaterOrEqual(t, *got.DurationMinutes, 0)
	assert.NotNil(t, got.EndedAt, "ended_at should persist")
}

// TestInterviewFilters exercises the listing predicates, including the
// started-at range bounds.
func TestInterviewFilters(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Interviews()
	ctx := context.Background()

	characterID := uuid.New()

	pending := models.NewInterview(characterID, uuid.New(), models.InterviewTypeTechnical, "Pending", "")
	started := models.NewInterview(characterID, uuid.New(), models.InterviewTypeBehavioral, "Started", "")
	require.NoError(t, started.Start())
	done := models.NewInterview(uuid.New(), uuid.New(), models.InterviewTypeTechnical, "Done", "")
	require.NoError(t, done.Start())
	require.NoError(t, done.Complete(nil, ""))

	for _, i := range []*models.Interview{pending, started, done} {
		require.NoError(t, repo.Save(ctx, i), "Save should succeed")
	}

	byCharacter, err := repo.FindByCharacterID(ctx, characterID)
	assert.NoError(t, err)
	assert.Len(t, byCharacter, 2, "character filter should match both interviews")

	active, err := repo.FindActive(ctx)
	assert.NoError(t, err)
	require.Len(t, active, 1, "only the started interview is active")
	assert.Equal(t, started.ID, active[0].ID)

	completed, err := repo.FindCompleted(ctx)
	assert.NoError(t, err)
	require.Len(t, completed, 1, "only the finished interview is completed")
	assert.Equal(t, done.ID, completed[0].ID)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	inRange, err := repo.FindAll(ctx, repository.InterviewFilters{
		StartedAfter:  &past,
		StartedBefore: &future,
	})
	assert.NoError(t, err)
	assert.Len(t, inRange, 2, "pending interviews never match a start-time bound")

	afterFuture, err := repo.FindAll(ctx, repository.InterviewFilters{StartedAfter: &future})
	assert.NoError(t, err)
	assert.Empty(t, afterFuture, "nothing started after the future bound")

	behavioral, err := repo.FindAll(ctx, repository.InterviewFilters{
		Type:   utils.Ptr(models.InterviewTypeBehavioral),
		Status: utils.Ptr(models.StatusInProgress),
	})
	assert.NoError(t, err)
	require.Len(t, behavioral, 1, "filters combine with AND")
	assert.Equal(t, started.ID, behavioral[0].ID)
}

// TestInterviewDuplicateSave verifies the duplicate-key mapping.
func TestInterviewDuplicateSave(t *testing.T) {
	store := SetupTestDB(t)
	repo := store.Interviews()
	ctx := context.Background()

	interview := models.NewInterview(uuid.New(), uuid.New(), models.InterviewTypeTechnical, "Screen", "")
	require.NoError(t, repo.Save(ctx, interview), "first Save should succeed")

	err := repo.Save(ctx, interview)
	assert.ErrorIs(t, err, e.ErrDuplicateID, "second Save with the same id should fail")
}
