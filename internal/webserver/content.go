package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/internal/domain"
	"github.com/camionrouge/vitrine/internal/planning"
	"github.com/camionrouge/vitrine/internal/section"
)

// Content endpoints are thin read-only relays in front of the content
// source. On upstream failure they answer 502 with the generic section
// message so the browser loader enters its failed state and offers retry;
// the cause is logged for operators only.

func (s *Server) listMenu(c echo.Context) error {
	items, err := s.app.Content().MenuItems(c.Request().Context())
	if err != nil {
		zap.L().Warn("menu fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) listGallery(c echo.Context) error {
	items, err := s.app.Content().GalleryItems(c.Request().Context())
	if err != nil {
		zap.L().Warn("gallery fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	if items == nil {
		items = []domain.GalleryItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) listPlanning(c echo.Context) error {
	items, err := s.app.Content().PlanningItems(c.Request().Context())
	if err != nil {
		zap.L().Warn("planning fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	if items == nil {
		items = []domain.PlanningItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) getContactInfo(c echo.Context) error {
	info, err := s.app.Content().ContactInfo(c.Request().Context())
	if err != nil {
		zap.L().Warn("contact info fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	return c.JSON(http.StatusOK, info)
}

// getMapPosition returns the marker the deferred browser map should show:
// the first planning entry with coordinates, or the fixed fallback.
func (s *Server) getMapPosition(c echo.Context) error {
	items, err := s.app.Content().PlanningItems(c.Request().Context())
	if err != nil {
		zap.L().Warn("planning fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	return c.JSON(http.StatusOK, planning.NextPosition(items))
}

func (s *Server) getEventsMarkup(c echo.Context) error {
	items, err := s.app.Content().PlanningItems(c.Request().Context())
	if err != nil {
		zap.L().Warn("planning fetch failed", zap.Error(err))
		return message(c, http.StatusBadGateway, section.ErrMessage)
	}
	sys := s.app.Config().System
	return c.JSON(http.StatusOK, planning.EventsMarkup(items, sys.SiteName, sys.SiteURL))
}
