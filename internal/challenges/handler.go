package challenges

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitchallenge/internal/auth"
	"github.com/2beens/fitchallenge/internal/telemetry/tracing"
	"github.com/2beens/fitchallenge/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=challenges_test

// seconds a client should wait before asking again when the catalog has nothing to offer
const noChallengeRetryAfter = "3600"

type challengesService interface {
	Today() time.Time
	GetToday(ctx context.Context, userID int) (*Assignment, error)
	Accept(ctx context.Context, userID, assignmentID int) (*ActionResponse, error)
	Complete(ctx context.Context, userID, assignmentID int) (*ActionResponse, error)
	History(ctx context.Context, userID int) ([]AssignmentView, error)
}

type HistoryResponse struct {
	Assignments []AssignmentView `json:"assignments"`
}

type Handler struct {
	service challengesService
}

func NewHandler(service challengesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "no user in request")
		return
	}

	a, err := handler.service.GetToday(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, "get today's challenge", err)
		return
	}

	pkg.WriteJSON(w, NewAssignmentView(*a, handler.service.Today()), http.StatusOK)
}

func (handler *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.accept")
	defer span.End()

	handler.handleAction(w, r.WithContext(ctx), "accept challenge", handler.service.Accept)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.complete")
	defer span.End()

	handler.handleAction(w, r.WithContext(ctx), "complete challenge", handler.service.Complete)
}

func (handler *Handler) handleAction(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	action func(ctx context.Context, userID, assignmentID int) (*ActionResponse, error),
) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "no user in request")
		return
	}

	idStr := mux.Vars(r)["id"]
	assignmentID, err := strconv.Atoi(idStr)
	if err != nil || assignmentID < 1 {
		log.Tracef("%s, invalid id [%s]", op, idStr)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_id", "assignment id must be a positive number")
		return
	}

	resp, err := action(r.Context(), userID, assignmentID)
	if err != nil {
		writeServiceError(w, userID, op, err)
		return
	}

	log.Debugf("%s: assignment %d of user %d, derived workouts: %d", op, assignmentID, userID, resp.DerivedWorkoutCount)
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "no user in request")
		return
	}

	views, err := handler.service.History(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, "list challenge history", err)
		return
	}

	if views == nil {
		views = []AssignmentView{}
	}
	pkg.WriteJSON(w, HistoryResponse{Assignments: views}, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, userID int, op string, err error) {
	switch {
	case errors.Is(err, ErrNoActiveGoal):
		pkg.WriteErrorResponse(w, http.StatusNotFound, "no_active_goal", "create a goal first")
	case errors.Is(err, ErrAssignmentNotFound):
		pkg.WriteErrorResponse(w, http.StatusNotFound, "assignment_not_found", "no such challenge for today")
	case errors.Is(err, ErrAlreadyAccepted):
		pkg.WriteErrorResponse(w, http.StatusConflict, "already_accepted", "challenge already accepted")
	case errors.Is(err, ErrAlreadyCompleted):
		pkg.WriteErrorResponse(w, http.StatusConflict, "already_completed", "challenge already completed today")
	case errors.Is(err, ErrNotYetAccepted):
		pkg.WriteErrorResponse(w, http.StatusConflict, "not_yet_accepted", "accept the challenge before completing it")
	case errors.Is(err, ErrNoChallengeAvailable):
		log.Errorf("%s for user %d: %s", op, userID, err)
		w.Header().Set("Retry-After", noChallengeRetryAfter)
		pkg.WriteErrorResponse(w, http.StatusServiceUnavailable, "no_challenge_available", "no challenge available, try again later")
	default:
		log.Errorf("%s for user %d: %s", op, userID, err)
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
