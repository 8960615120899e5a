package webserver

import (
	"context"
	"errors"

	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/app"
	"github.com/camionrouge/vitrine/internal/domain"
)

// fakeSource substitutes the content client in handler tests.
type fakeSource struct {
	menu        []domain.MenuItem
	gallery     []domain.GalleryItem
	planning    []domain.PlanningItem
	info        domain.ContactInfo
	menuErr     error
	galleryErr  error
	planningErr error
	infoErr     error
}

func (f *fakeSource) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return f.menu, f.menuErr
}

func (f *fakeSource) GalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	return f.gallery, f.galleryErr
}

func (f *fakeSource) PlanningItems(ctx context.Context) ([]domain.PlanningItem, error) {
	return f.planning, f.planningErr
}

func (f *fakeSource) ContactInfo(ctx context.Context) (domain.ContactInfo, error) {
	return f.info, f.infoErr
}

// fakeSender records relayed submissions.
type fakeSender struct {
	sent []domain.ContactSubmission
	err  error
}

func (f *fakeSender) Send(sub domain.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sub)
	return nil
}

var errUpstream = errors.New("upstream unreachable")

func newTestServer(src *fakeSource, sender *fakeSender) *Server {
	cfg := config.DefaultAppConfig()
	application := app.NewApplication(cfg)
	application.OverrideContent(src)
	application.OverrideMailer(sender)
	return NewServer(application)
}
