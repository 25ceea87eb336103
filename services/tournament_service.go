package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fixtureapp/fixture-backend/brackets"
	"github.com/fixtureapp/fixture-backend/models"
	"github.com/fixtureapp/fixture-backend/repositories"
	"github.com/fixtureapp/fixture-backend/storage"
)

// Overview bundles the full state with every group table for the public
// dashboard, so viewers get one consistent snapshot instead of stitching
// together separate reads.
type Overview struct {
	State     *models.TournamentState          `json:"state"`
	Standings map[string][]models.StandingsRow `json:"standings"`
}

type TournamentService interface {
	GetState(ctx context.Context) (*models.TournamentState, error)
	GetOverview(ctx context.Context) (*Overview, error)
	GetStandings(ctx context.Context, groupID string) ([]models.StandingsRow, error)
	GenerateSchedule(ctx context.Context, format models.Format, teamNames []string) (*models.TournamentState, error)
	SubmitResult(ctx context.Context, input brackets.ResultInput) (*models.TournamentState, error)
	GenerateNextKnockoutStage(ctx context.Context) (*models.TournamentState, error)
	Reset(ctx context.Context) (*models.TournamentState, error)
	UploadTeamLogo(ctx context.Context, teamID string, contentType string, reader io.Reader) (*models.Team, error)
}

type tournamentService struct {
	stateRepo repositories.StateRepository
	hub       *brackets.Hub
	uploader  storage.FileUploader
	logger    *slog.Logger
}

// NewTournamentService wires the engine to its collaborators. The uploader
// may be nil when object storage is not configured; logo uploads are then
// rejected.
func NewTournamentService(
	stateRepo repositories.StateRepository,
	hub *brackets.Hub,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		stateRepo: stateRepo,
		hub:       hub,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *tournamentService) GetState(ctx context.Context) (*models.TournamentState, error) {
	return s.stateRepo.Load(ctx)
}

// GetOverview loads one snapshot and derives every group table from it in
// parallel. Standings are projections, never stored, so the tables can only
// reflect the snapshot they were computed from.
func (s *tournamentService) GetOverview(ctx context.Context) (*Overview, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	groupIDs := make([]string, 0, len(state.Groups))
	for id := range state.Groups {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)

	standings := make(map[string][]models.StandingsRow, len(groupIDs))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	for _, groupID := range groupIDs {
		groupID := groupID
		g.Go(func() error {
			rows, err := brackets.ComputeStandings(state, groupID)
			if err != nil {
				return fmt.Errorf("standings for group %s: %w", groupID, err)
			}
			mu.Lock()
			standings[groupID] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{State: state, Standings: standings}, nil
}

func (s *tournamentService) GetStandings(ctx context.Context, groupID string) ([]models.StandingsRow, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.ComputeStandings(state, groupID)
}

func (s *tournamentService) GenerateSchedule(ctx context.Context, format models.Format, teamNames []string) (*models.TournamentState, error) {
	next, err := s.stateRepo.Update(ctx, func(state *models.TournamentState) (*models.TournamentState, error) {
		return brackets.GenerateSchedule(state, format, teamNames)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("schedule generated",
		slog.String("format", string(format)),
		slog.Int("teams", len(next.Teams)),
		slog.Int("matches", len(next.Matches)),
	)
	s.hub.Broadcast(brackets.MessageStateUpdated, next)
	return next, nil
}

func (s *tournamentService) SubmitResult(ctx context.Context, input brackets.ResultInput) (*models.TournamentState, error) {
	next, err := s.stateRepo.Update(ctx, func(state *models.TournamentState) (*models.TournamentState, error) {
		return brackets.ApplyResult(state, input)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("result recorded",
		slog.String("match_id", input.MatchID),
		slog.Int("score_a", input.ScoreA),
		slog.Int("score_b", input.ScoreB),
		slog.String("phase", string(next.Phase)),
	)
	s.hub.Broadcast(brackets.MessageStateUpdated, next)
	return next, nil
}

func (s *tournamentService) GenerateNextKnockoutStage(ctx context.Context) (*models.TournamentState, error) {
	next, err := s.stateRepo.Update(ctx, func(state *models.TournamentState) (*models.TournamentState, error) {
		return brackets.GenerateNextKnockoutStage(state)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("knockout stage generated", slog.String("phase", string(next.Phase)))
	s.hub.Broadcast(brackets.MessageStateUpdated, next)
	return next, nil
}

func (s *tournamentService) Reset(ctx context.Context) (*models.TournamentState, error) {
	next, err := s.stateRepo.Update(ctx, func(*models.TournamentState) (*models.TournamentState, error) {
		return brackets.Reset(), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("tournament reset")
	s.hub.Broadcast(brackets.MessageReset, next)
	return next, nil
}

var logoExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// UploadTeamLogo stores the image in object storage first, then records the
// key on the team. An orphaned object from a failed state write is harmless;
// the next upload for the team overwrites the same key.
func (s *tournamentService) UploadTeamLogo(ctx context.Context, teamID string, contentType string, reader io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrUploadsNotConfigured
	}
	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedLogoType
	}

	key := "teams/" + teamID + ext
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	var updated *models.Team
	_, err = s.stateRepo.Update(ctx, func(state *models.TournamentState) (*models.TournamentState, error) {
		next := state.Clone()
		team := next.TeamByID(teamID)
		if team == nil {
			return nil, ErrTeamNotFound
		}
		team.LogoKey = &result.Key
		team.LogoURL = &result.Location
		updated = team
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("team logo uploaded", slog.String("team_id", teamID), slog.String("key", result.Key))
	return updated, nil
}
