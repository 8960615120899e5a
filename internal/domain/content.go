package domain

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MenuItem is a dish authored in the content source. Category and Image are
// optional; rendering must degrade gracefully when they are absent.
type MenuItem struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
}

// GalleryItem is one photo of the gallery section.
type GalleryItem struct {
	ID       string `json:"_id"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
}

// PlanningItem is one recurring weekly stop of the truck. Day is a weekday
// name, Time is free text (e.g. "8h-13h"), Location may be nil when the spot
// has no published coordinates.
type PlanningItem struct {
	ID       string    `json:"_id"`
	Day      string    `json:"day"`
	Place    string    `json:"place"`
	Time     string    `json:"time"`
	Location *GeoPoint `json:"location,omitempty"`
}

// ContactInfo holds the display-only contact block.
type ContactInfo struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// ContactSubmission is the ephemeral contact-form payload. It is never
// persisted; it lives for one relay request/response cycle.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// MapPosition is the marker the planning section hands to the browser map.
type MapPosition struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

// EventMarkup is one schema.org Event document emitted for search engines.
// Only planning entries with a location produce one.
type EventMarkup struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Location    EventLocation  `json:"location"`
	Organizer   EventOrganizer `json:"organizer"`
}

// EventLocation is the place block of an EventMarkup document.
type EventLocation struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Geo     EventGeo `json:"geo"`
}

// EventGeo carries the schema.org GeoCoordinates pair.
type EventGeo struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventOrganizer identifies the business running the event.
type EventOrganizer struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
