package solutions

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/services/submission"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/handlers"
	"gitlab.com/golf-2025.net/internal/handlers/response"
)

// Handler handles solution API requests
type Handler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewHandler creates a new solution handler
func NewHandler(submissionService submission.ISubmissionService, logger primary.Logger) *Handler {
	return &Handler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for Handler
func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	const solutionsPath = "/api/challenges/{challengeId:[0-9]+}/solutions/{language}"

	router.Handle(solutionsPath, mw.JWTMiddleware(http.HandlerFunc(h.Submit))).Methods(http.MethodPost)
	router.Handle(solutionsPath, mw.OptionalJWTMiddleware(http.HandlerFunc(h.ViewChallenge))).Methods(http.MethodGet)
	router.Handle(solutionsPath+"/best", mw.JWTMiddleware(http.HandlerFunc(h.GetBest))).Methods(http.MethodGet)
	router.HandleFunc("/api/languages", h.GetLanguages).Methods(http.MethodGet)
}

// statusFor tells the caller what happened to its submission
func statusFor(outcome domain.Outcome) int {
	switch {
	case outcome.Writes():
		return http.StatusCreated
	case outcome == domain.OutcomeRejected:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func pathParams(r *http.Request) (int64, string, bool) {
	vars := mux.Vars(r)
	challengeID, err := strconv.ParseInt(vars["challengeId"], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return challengeID, vars["language"], true
}

func nonNil(board []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	if board == nil {
		return []domain.LeaderboardEntry{}
	}
	return board
}

// Submit handles solution submissions
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.AuthPayloadFromContext(r.Context())
	if !ok {
		handlers.ResponseError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	challengeID, language, ok := pathParams(r)
	if !ok {
		handlers.ResponseError(w, "Invalid challenge id", http.StatusBadRequest)
		return
	}

	var req SubmitSolutionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCodeBytes)).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.submissionService.Submit(r.Context(), submission.SubmitRequest{
		Account:   caller.AccountID,
		Challenge: challengeID,
		Language:  language,
		Code:      req.Code,
	})
	if err != nil {
		h.logger.Error("Failed to submit solution", "account", caller.AccountID, "challenge", challengeID, "language", language, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, statusFor(result.Outcome), SolutionsResponse{
		Challenge:               result.Challenge,
		Leaderboard:             nonNil(result.Leaderboard),
		Outcome:                 result.Outcome,
		Tests:                   result.Verdict,
		Code:                    &req.Code,
		PreviousSolutionInvalid: result.PreviousSolutionInvalid,
	})
}

// ViewChallenge handles leaderboard requests; authenticated callers also get their best code
func (h *Handler) ViewChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, language, ok := pathParams(r)
	if !ok {
		handlers.ResponseError(w, "Invalid challenge id", http.StatusBadRequest)
		return
	}

	var account *int64
	if caller, ok := handlers.AuthPayloadFromContext(r.Context()); ok {
		account = &caller.AccountID
	}

	view, err := h.submissionService.ViewChallenge(r.Context(), account, challengeID, language)
	if err != nil {
		h.logger.Error("Failed to view challenge", "challenge", challengeID, "language", language, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	resp := SolutionsResponse{
		Challenge:               view.Challenge,
		Leaderboard:             nonNil(view.Leaderboard),
		PreviousSolutionInvalid: view.PreviousSolutionInvalid,
	}
	if view.Best != nil {
		resp.Code = &view.Best.Code
	}
	response.WriteSuccess(w, http.StatusOK, resp)
}

// GetBest handles best solution requests
func (h *Handler) GetBest(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.AuthPayloadFromContext(r.Context())
	if !ok {
		handlers.ResponseError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	challengeID, language, ok := pathParams(r)
	if !ok {
		handlers.ResponseError(w, "Invalid challenge id", http.StatusBadRequest)
		return
	}

	best, err := h.submissionService.GetBest(r.Context(), caller.AccountID, challengeID, language)
	if err != nil {
		h.logger.Error("Failed to get best solution", "account", caller.AccountID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	if best == nil {
		handlers.ResponseError(w, "No solution", http.StatusNotFound)
		return
	}

	response.WriteSuccess(w, http.StatusOK, best)
}

// GetLanguages handles language list requests
func (h *Handler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.submissionService.GetLanguages(r.Context())
	if err != nil {
		h.logger.Error("Failed to get languages", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, http.StatusOK, LanguagesResponse{Languages: languages})
}
