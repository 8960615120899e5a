// Package planning derives the map marker and the structured event markup
// from the weekly planning collection.
package planning

import (
	"fmt"

	"github.com/camionrouge/vitrine/internal/domain"
)

// Fallback marker used when no planning entry carries coordinates.
const (
	FallbackLat   = 48.8566
	FallbackLng   = 2.3522
	FallbackPopup = "Rien de prévu pour le moment"
)

// NextPosition selects the map marker: the first entry (in the collection's
// given order) that has a location wins, with a "{place} - {time}" popup.
// When no entry has a location it falls back to the Paris coordinate and a
// generic popup.
//
// The collection order is ascending by day name, not by actual calendar
// distance, so a Monday stop listed before a chronologically nearer Sunday
// stop is still the one selected. Kept as-is; see DESIGN.md.
func NextPosition(items []domain.PlanningItem) domain.MapPosition {
	for _, it := range items {
		if it.Location == nil {
			continue
		}
		return domain.MapPosition{
			Lat:   it.Location.Lat,
			Lng:   it.Location.Lng,
			Popup: fmt.Sprintf("%s - %s", it.Place, it.Time),
		}
	}
	return domain.MapPosition{Lat: FallbackLat, Lng: FallbackLng, Popup: FallbackPopup}
}

// EventsMarkup emits one schema.org Event document per planning entry that
// has a location. Entries without coordinates are skipped without affecting
// their presence in the visible planning list.
func EventsMarkup(items []domain.PlanningItem, organizerName, organizerURL string) []domain.EventMarkup {
	events := make([]domain.EventMarkup, 0, len(items))
	for _, it := range items {
		if it.Location == nil {
			continue
		}
		events = append(events, domain.EventMarkup{
			Context:     "https://schema.org",
			Type:        "Event",
			Name:        fmt.Sprintf("%s - %s", organizerName, it.Place),
			Description: fmt.Sprintf("%s %s, %s", organizerName, it.Day, it.Time),
			Location: domain.EventLocation{
				Type:    "Place",
				Name:    it.Place,
				Address: it.Place,
				Geo: domain.EventGeo{
					Type:      "GeoCoordinates",
					Latitude:  it.Location.Lat,
					Longitude: it.Location.Lng,
				},
			},
			Organizer: domain.EventOrganizer{
				Type: "Organization",
				Name: organizerName,
				URL:  organizerURL,
			},
		})
	}
	return events
}
