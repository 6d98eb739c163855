package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tennisscore/internal/api/apierr"
	"github.com/mcoot/tennisscore/internal/api/request"
	"github.com/mcoot/tennisscore/internal/api/response"
	"github.com/mcoot/tennisscore/internal/services/game"
)

// MaxRequestBodyBytes bounds the POST body; sequences are a few letters per point
const MaxRequestBodyBytes = 64 << 10

// TennisHandler handles scoring endpoints
type TennisHandler struct {
	gameController *game.Controller
}

// NewTennisHandler creates a new tennis handler
func NewTennisHandler(gameController *game.Controller) *TennisHandler {
	return &TennisHandler{
		gameController: gameController,
	}
}

// Play handles POST /api/v1/tennis/play
func (h *TennisHandler) Play(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)

	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, apierr.NewRequestTooLargeError())
			return
		}
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	h.play(w, r, req.Sequence)
}

// PlayPath handles GET /api/v1/tennis/play/{sequence}
func (h *TennisHandler) PlayPath(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, mux.Vars(r)["sequence"])
}

func (h *TennisHandler) play(w http.ResponseWriter, r *http.Request, sequence string) {
	played, scores, err := h.gameController.PlayFormatted(r.Context(), sequence)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResult{
		Sequence: played,
		Scores:   scores,
	})
}

// Health handles GET /api/v1/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
