package services

import (
	"context"
	"time"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
	"github.com/gestorpme/gestor_backend/pkg/database"
)

const healthPingTimeout = 3 * time.Second

type healthService struct {
	BaseService
	store *database.Mongo
	cfg   *config.Config
}

var _ portssvc.HealthSvcFacade = (*healthService)(nil)

// NewHealthService creates a new instance of the health service.
func NewHealthService(store *database.Mongo, cfg *config.Config) portssvc.HealthSvcFacade {
	return &healthService{store: store, cfg: cfg}
}

func (s *healthService) Status(ctx context.Context) dto.HealthStatus {
	status := dto.HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Environment: map[string]bool{
			"MONGODB_URI": s.cfg.HasStoreConfig(),
			"JWT_SECRET":  s.cfg.JWTSecret != "",
			"EMAIL_HOST":  s.cfg.SMTPHost != "",
			"EMAIL_USER":  s.cfg.SMTPUser != "",
			"EMAIL_PASS":  s.cfg.SMTPPass != "",
		},
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := s.store.Ping(pingCtx); err != nil {
		status.Status = "degraded"
		// Connected may still be true here: a dialed client whose ping
		// timed out is connected but unhealthy.
		status.Database = dto.HealthDatabase{Connected: s.store.Connected(), Error: err.Error()}
		return status
	}
	status.Database = dto.HealthDatabase{Connected: true, Ping: "ok"}
	return status
}
