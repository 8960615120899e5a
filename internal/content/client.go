package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Query strings sent to the content source. Each one requests exactly the
// fields its section renders; category names and image URLs are dereferenced
// at query time.
const (
	menuQuery = `*[_type == "menuItem"]{_id, name, description, price,` +
		` "imageUrl": image.asset->url, "categoryName": category->name}`
	galleryQuery  = `*[_type == "galleryItem"]{_id, "imageUrl": image.asset->url, caption}`
	planningQuery = `*[_type == "planningItem"] | order(day asc)` +
		`{_id, day, place, time, "location": location{ "lat": lat, "lng": lng }}`
	contactQuery = `*[_type == "contactInfo"][0]{phone, email, facebook, instagram, twitter}`
)

// Client executes read-only structured queries against the headless content
// source. It holds no mutable state and is safe to share process-wide.
type Client struct {
	queryURL string
	token    string
}

// NewClient builds the client from configuration. When no explicit endpoint
// is configured the query URL is derived from the project/dataset pair the
// way the hosted service exposes it.
func NewClient(cfg config.ContentConfig) *Client {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		host := "api.sanity.io"
		if cfg.UseCdn {
			host = "apicdn.sanity.io"
		}
		endpoint = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}
	apiVersion := cfg.ApiVersion
	if apiVersion == "" {
		apiVersion = "v2021-10-21"
	}
	return &Client{
		queryURL: fmt.Sprintf("%s/%s/data/query/%s", endpoint, apiVersion, cfg.Dataset),
		token:    cfg.Token,
	}
}

// queryResult is the content source's response envelope.
type queryResult struct {
	Result jsoniter.RawMessage `json:"result"`
}

func (c *Client) query(ctx context.Context, query string, out interface{}) error {
	headers := gout.H{"Accept": "application/json"}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}

	var body []byte
	var code int
	err := gout.GET(c.queryURL).
		WithContext(ctx).
		SetQuery(gout.H{"query": query}).
		SetHeader(headers).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return fmt.Errorf("content query: %w", err)
	}
	if code != 200 {
		zap.L().Warn("content source returned non-200", zap.Int("status", code))
		return fmt.Errorf("content query: unexpected status %d", code)
	}

	var envelope queryResult
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("content query: decode envelope: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("content query: decode result: %w", err)
	}
	return nil
}

// MenuItems returns all menu items with their category name and image URL
// resolved.
func (c *Client) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := c.query(ctx, menuQuery, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GalleryItems returns all gallery photos.
func (c *Client) GalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	var items []domain.GalleryItem
	if err := c.query(ctx, galleryQuery, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PlanningItems returns the weekly stops in the source's authoritative order,
// ascending by day name.
func (c *Client) PlanningItems(ctx context.Context) ([]domain.PlanningItem, error) {
	var items []domain.PlanningItem
	if err := c.query(ctx, planningQuery, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ContactInfo returns the single contact block, or a zero value when none is
// authored.
func (c *Client) ContactInfo(ctx context.Context) (domain.ContactInfo, error) {
	var info domain.ContactInfo
	if err := c.query(ctx, contactQuery, &info); err != nil {
		return domain.ContactInfo{}, err
	}
	return info, nil
}
