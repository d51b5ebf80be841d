package reconcile

import (
	"clipshare/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// HandleMessage destroys the announced asset unless a record references it by now.
// A returned error leaves the message for redelivery.
func (s *reconcileService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.OrphanedAsset
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal orphaned asset event: %w", err)
	}
	if event.PublicID == "" {
		return errors.New("orphaned asset event has no publicId")
	}
	if event.AssetType == "" {
		event.AssetType = domain.AssetTypeVideo
	}

	s.logger.Info("handling orphaned asset", "public_id", event.PublicID, "asset_type", event.AssetType, "reason", event.Reason)

	_, err := s.repo.FindByPublicID(ctx, event.PublicID)
	switch {
	case err == nil:
		s.logger.Info("asset is referenced, keeping it", "public_id", event.PublicID)
		return nil
	case !errors.Is(err, domain.ErrVideoNotFound):
		return fmt.Errorf("could not look up %s: %w", event.PublicID, err)
	}

	if err := s.gateway.Destroy(ctx, event.PublicID, event.AssetType); err != nil {
		return fmt.Errorf("could not destroy %s: %w", event.PublicID, err)
	}

	s.logger.Info("orphaned asset destroyed", "public_id", event.PublicID)
	return nil
}
