package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixtureapp/fixture-backend/brackets"
	"github.com/fixtureapp/fixture-backend/models"
	"github.com/fixtureapp/fixture-backend/repositories"
	"github.com/fixtureapp/fixture-backend/storage"
)

// memoryStateRepository keeps the state in memory but preserves the real
// repository's contract: apply either replaces the whole document or leaves
// it untouched.
type memoryStateRepository struct {
	state *models.TournamentState
}

func newMemoryStateRepository() *memoryStateRepository {
	return &memoryStateRepository{state: models.NewTournamentState()}
}

func (r *memoryStateRepository) EnsureSchema(context.Context) error { return nil }

func (r *memoryStateRepository) Load(context.Context) (*models.TournamentState, error) {
	return r.state.Clone(), nil
}

func (r *memoryStateRepository) Update(_ context.Context, apply repositories.ApplyFunc) (*models.TournamentState, error) {
	next, err := apply(r.state.Clone())
	if err != nil {
		return nil, err
	}
	r.state = next
	return next, nil
}

type fakeUploader struct {
	uploads map[string]string
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[key] = contentType
	return &storage.UploadResult{Key: key, Location: "https://cdn.test/" + key}, nil
}

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string { return "https://cdn.test/" + key }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo repositories.StateRepository, uploader storage.FileUploader) TournamentService {
	hub := brackets.NewHub(testLogger())
	go hub.Run()
	return NewTournamentService(repo, hub, uploader, testLogger())
}

func teamNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A'+i)) + "-team"
	}
	return names
}

func TestGenerateScheduleRoundTrip(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	state, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(8))
	require.NoError(t, err)
	assert.Equal(t, models.PhaseScheduled, state.Phase)
	assert.Len(t, state.Teams, 8)

	// The generated state is what a fresh read returns.
	loaded, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestFailedOperationLeavesStoredStateUntouched(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(8))
	require.NoError(t, err)
	before, err := svc.GetState(ctx)
	require.NoError(t, err)

	// Generating again is illegal; advancing is premature. Neither may write.
	_, err = svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(8))
	require.ErrorIs(t, err, brackets.ErrWrongPhase)

	_, err = svc.GenerateNextKnockoutStage(ctx)
	require.ErrorIs(t, err, brackets.ErrGroupStageUnfinished)

	_, err = svc.SubmitResult(ctx, brackets.ResultInput{MatchID: "missing", ScoreA: 1, ScoreB: 0})
	require.ErrorIs(t, err, brackets.ErrMatchNotFound)

	after, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSubmitResultPersists(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	state, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(6))
	require.NoError(t, err)
	match := state.GroupMatches("A")[0]

	updated, err := svc.SubmitResult(ctx, brackets.ResultInput{MatchID: match.ID, ScoreA: 2, ScoreB: 0})
	require.NoError(t, err)
	require.True(t, updated.MatchByID(match.ID).Completed())

	loaded, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.MatchByID(match.ID).Completed())
}

func TestResetReturnsToSetup(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.GenerateSchedule(ctx, models.FormatStraightKnockout, teamNames(16))
	require.NoError(t, err)

	state, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NewTournamentState(), state)

	loaded, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseSetup, loaded.Phase)
	assert.Empty(t, loaded.Teams)
}

func TestGetOverviewIncludesAllGroupTables(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(8))
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Standings, 2)
	assert.Len(t, overview.Standings["A"], 4)
	assert.Len(t, overview.Standings["B"], 4)
	assert.Equal(t, models.PhaseScheduled, overview.State.Phase)
}

func TestGetStandingsUnknownGroup(t *testing.T) {
	repo := newMemoryStateRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(8))
	require.NoError(t, err)

	_, err = svc.GetStandings(ctx, "Z")
	require.ErrorIs(t, err, brackets.ErrGroupNotFound)
}

func TestUploadTeamLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected when storage is not configured", func(t *testing.T) {
		svc := newTestService(newMemoryStateRepository(), nil)
		_, err := svc.UploadTeamLogo(ctx, "some-team", "image/png", bytes.NewReader([]byte("png")))
		require.ErrorIs(t, err, ErrUploadsNotConfigured)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		svc := newTestService(newMemoryStateRepository(), &fakeUploader{})
		_, err := svc.UploadTeamLogo(ctx, "some-team", "application/pdf", bytes.NewReader([]byte("%PDF")))
		require.ErrorIs(t, err, ErrUnsupportedLogoType)
	})

	t.Run("stores the logo and records it on the team", func(t *testing.T) {
		repo := newMemoryStateRepository()
		uploader := &fakeUploader{}
		svc := newTestService(repo, uploader)

		state, err := svc.GenerateSchedule(ctx, models.FormatGroupsThenKnockout, teamNames(6))
		require.NoError(t, err)
		teamID := state.Teams[0].ID

		team, err := svc.UploadTeamLogo(ctx, teamID, "image/png", bytes.NewReader([]byte("png")))
		require.NoError(t, err)
		require.NotNil(t, team.LogoKey)
		assert.Equal(t, "teams/"+teamID+".png", *team.LogoKey)
		assert.Contains(t, uploader.uploads, *team.LogoKey)

		loaded, err := svc.GetState(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded.TeamByID(teamID).LogoURL)
	})

	t.Run("unknown team fails after upload", func(t *testing.T) {
		svc := newTestService(newMemoryStateRepository(), &fakeUploader{})
		_, err := svc.UploadTeamLogo(ctx, "missing", "image/png", bytes.NewReader([]byte("png")))
		require.ErrorIs(t, err, ErrTeamNotFound)
	})
}
