package reconcile

import (
	"clipshare/internal/core/port"
	"log/slog"
)

type reconcileService struct {
	gateway port.MediaGateway
	repo    port.VideoRepository
	logger  *slog.Logger
}

// NewReconcileService creates the handler that destroys orphaned remote assets
func NewReconcileService(gateway port.MediaGateway, repo port.VideoRepository, logger *slog.Logger) port.MessageService {
	return &reconcileService{
		gateway: gateway,
		repo:    repo,
		logger:  logger,
	}
}
