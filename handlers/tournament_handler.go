package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fixtureapp/fixture-backend/brackets"
	"github.com/fixtureapp/fixture-backend/models"
	"github.com/fixtureapp/fixture-backend/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// GetState is the explicit refresh read: viewers call it on their own
// schedule, there is no staleness tracking server-side.
func (h *TournamentHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.tournamentService.GetState(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tournamentService.GetOverview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type generateScheduleInput struct {
	Format models.Format `json:"format"`
	Teams  []string      `json:"teams"`
}

func (h *TournamentHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var input generateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if len(input.Teams) == 0 {
		badRequestResponse(w, r, errors.New("teams are required"))
		return
	}

	state, err := h.tournamentService.GenerateSchedule(r.Context(), input.Format, input.Teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type submitResultInput struct {
	ScoreA   int  `json:"score_a"`
	ScoreB   int  `json:"score_b"`
	PenaltyA *int `json:"penalty_a,omitempty"`
	PenaltyB *int `json:"penalty_b,omitempty"`
}

func (h *TournamentHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("missing matchID"))
		return
	}

	var input submitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.tournamentService.SubmitResult(r.Context(), brackets.ResultInput{
		MatchID:  matchID,
		ScoreA:   input.ScoreA,
		ScoreB:   input.ScoreB,
		PenaltyA: input.PenaltyA,
		PenaltyB: input.PenaltyB,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GenerateNextKnockoutStage(w http.ResponseWriter, r *http.Request) {
	state, err := h.tournamentService.GenerateNextKnockoutStage(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.tournamentService.Reset(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		badRequestResponse(w, r, errors.New("missing groupID"))
		return
	}

	standings, err := h.tournamentService.GetStandings(r.Context(), groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

const maxLogoBytes = 5 << 20 // 5MB

func (h *TournamentHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errors.New("missing teamID"))
		return
	}

	contentType := r.Header.Get("Content-Type")
	body := http.MaxBytesReader(w, r.Body, maxLogoBytes)
	defer body.Close()

	team, err := h.tournamentService.UploadTeamLogo(r.Context(), teamID, contentType, body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
