package webserver

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/internal/domain"
	"github.com/camionrouge/vitrine/internal/planning"
	"github.com/camionrouge/vitrine/internal/section"
)

// uiFS packs the single page shell so deployments ship one binary.
//
//go:embed assets/index.gohtml
var uiFS embed.FS

var pageTmpl = template.Must(template.ParseFS(uiFS, "assets/index.gohtml"))

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type pageData struct {
	SiteName string
	SiteURL  string
	Menu     section.Snapshot[domain.MenuItem]
	Gallery  section.Snapshot[domain.GalleryItem]
	Planning section.Snapshot[domain.PlanningItem]
	Contact  domain.ContactInfo
	Map      domain.MapPosition
	Events   []template.JS
}

// renderPage composes the page out of independently loading sections. Each
// section issues its own fetch; a failing one renders its error block with a
// retry control and never takes the page down with it.
func (s *Server) renderPage(c echo.Context) error {
	ctx := c.Request().Context()
	src := s.app.Content()

	menu := section.New("menu", src.MenuItems)
	gallery := section.New("gallery", src.GalleryItems)
	plan := section.New("planning", src.PlanningItems)

	var wg sync.WaitGroup
	for _, load := range []func(){
		func() { menu.Load(ctx) },
		func() { gallery.Load(ctx) },
		func() { plan.Load(ctx) },
	} {
		wg.Add(1)
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(load)
	}
	wg.Wait()

	// display-only; a failure here just hides the contact block
	info, err := src.ContactInfo(ctx)
	if err != nil {
		zap.L().Warn("contact info fetch failed", zap.Error(err))
	}

	sys := s.app.Config().System
	planSnap := plan.Snapshot()
	data := pageData{
		SiteName: sys.SiteName,
		SiteURL:  sys.SiteURL,
		Menu:     menu.Snapshot(),
		Gallery:  gallery.Snapshot(),
		Planning: planSnap,
		Contact:  info,
		Map:      planning.NextPosition(planSnap.Items),
	}
	for _, ev := range planning.EventsMarkup(planSnap.Items, sys.SiteName, sys.SiteURL) {
		raw, err := json.Marshal(ev)
		if err != nil {
			zap.L().Warn("event markup encode failed", zap.Error(err))
			continue
		}
		data.Events = append(data.Events, template.JS(raw))
	}

	// render into a buffer first so a template failure can still answer
	// with an error status instead of a truncated 200
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		zap.L().Error("page render failed", zap.Error(err))
		return message(c, http.StatusInternalServerError, section.ErrMessage)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
