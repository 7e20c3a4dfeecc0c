package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitchallenge/internal/auth"
	"github.com/2beens/fitchallenge/internal/telemetry/tracing"
	"github.com/2beens/fitchallenge/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const maxPageSize = 100

type workoutsRepo interface {
	Create(ctx context.Context, workout Workout) (*Workout, error)
	ListForUser(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "no user in request")
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil || page < 1 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_page", "parameter <page> must be a positive number")
		return
	}
	size, err := queryInt(r, "size", 20)
	if err != nil || size < 1 || size > maxPageSize {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_size", "parameter <size> must be between 1 and 100")
		return
	}

	list, total, err := handler.repo.ListForUser(ctx, ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "internal", "failed to list workouts")
		return
	}

	if list == nil {
		list = []Workout{}
	}

	pkg.WriteJSON(w, ListResponse{Workouts: list, Total: total}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "no user in request")
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_content_type", "expected application/json")
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("add workout, unmarshal json: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_body", "invalid workout json")
		return
	}

	if workout.Name == "" || !workout.Type.IsValid() {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid_workout", "workout name or type invalid")
		return
	}

	now := time.Now()
	workout.ID = 0
	workout.UserID = userID
	workout.Source = SourceUserCreated
	workout.CreatedAt = now
	if workout.ScheduledDate.IsZero() {
		workout.ScheduledDate = pkg.CalendarDay(now, time.UTC)
	}
	if workout.IsCompleted && workout.CompletedAt == nil {
		workout.CompletedAt = &now
	}

	created, err := handler.repo.Create(ctx, workout)
	if err != nil {
		log.Errorf("add workout [%s] for user %d: %s", workout.Name, userID, err)
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "internal", "failed to add workout")
		return
	}

	log.Debugf("workout %d added for user %d", created.ID, userID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
