package internal

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitchallenge/pkg"
)

const healthPingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type HealthHandler struct {
	versionInfo string
	postgres    pinger
	redis       pinger
}

func NewHealthHandler(versionInfo string, postgres, redis pinger) *HealthHandler {
	return &HealthHandler{
		versionInfo: versionInfo,
		postgres:    postgres,
		redis:       redis,
	}
}

func (handler *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Version:  handler.versionInfo,
		Postgres: "ok",
		Redis:    "ok",
	}
	if err := handler.postgres.Ping(ctx); err != nil {
		log.Errorf("health: ping postgres: %s", err)
		resp.Status = "degraded"
		resp.Postgres = "unavailable"
	}
	if err := handler.redis.Ping(ctx); err != nil {
		log.Errorf("health: ping redis: %s", err)
		resp.Status = "degraded"
		resp.Redis = "unavailable"
	}

	statusCode := http.StatusOK
	if resp.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, statusCode)
}
