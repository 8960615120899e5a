package content

import (
	"context"

	"github.com/camionrouge/vitrine/internal/domain"
)

// Source is the read-only query capability the sections consume. *Client is
// the production implementation; tests substitute fakes.
type Source interface {
	MenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GalleryItems(ctx context.Context) ([]domain.GalleryItem, error)
	PlanningItems(ctx context.Context) ([]domain.PlanningItem, error)
	ContactInfo(ctx context.Context) (domain.ContactInfo, error)
}

var _ Source = (*Client)(nil)
