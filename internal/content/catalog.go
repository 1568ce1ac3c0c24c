package content

import (
	"context"
	"strings"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/cache"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// Catalog bundles the loaders for every content kind served by the app.
type Catalog struct {
	Branches      *Loader[model.Branch]
	Gallery       *Loader[model.GalleryItem]
	Notifications *Loader[model.Notification]
	Publications  *Loader[model.Publication]
	Events        *Loader[model.TempleEvent]
	Gurus         *Loader[model.Guru]
}

// NewCatalog wires every content kind to its backend table and fallback
// dataset. With an unconfigured client all kinds serve fallbacks only.
func NewCatalog(client *Client, cacher cache.Cacher, ttl time.Duration) *Catalog {
	cat := &Catalog{
		Branches:      NewLoader("branches", tableFetch[model.Branch](client, "branches", "select=*&order=city.asc"), FallbackBranches()),
		Gallery:       NewLoader("gallery", tableFetch[model.GalleryItem](client, "gallery_items", "select=*&order=created_at.desc"), FallbackGallery()),
		Notifications: NewLoader("notifications", tableFetch[model.Notification](client, "notifications", "is_active=eq.true&select=*&order=created_at.desc"), FallbackNotifications()),
		Publications:  NewLoader("publications", tableFetch[model.Publication](client, "publications", "select=*&order=created_at.desc"), FallbackPublications()),
		Events:        NewLoader("events", tableFetch[model.TempleEvent](client, "events", "select=*&order=date.asc"), FallbackEvents()),
		// The lineage never changes at runtime; it is served statically.
		Gurus: NewLoader[model.Guru]("gurus", nil, GuruParampara()),
	}

	if cacher != nil {
		cat.Branches.WithCache(cacher, ttl)
		cat.Gallery.WithCache(cacher, ttl)
		cat.Notifications.WithCache(cacher, ttl)
		cat.Publications.WithCache(cacher, ttl)
		cat.Events.WithCache(cacher, ttl)
	}

	return cat
}

// tableFetch builds a FetchFunc for one backend table, or nil when the
// client is not configured.
func tableFetch[T any](client *Client, table, query string) FetchFunc[T] {
	if !client.Configured() {
		return nil
	}
	return func(ctx context.Context) ([]T, error) {
		return Select[T](ctx, client, table, query)
	}
}

// SearchBranches filters branches by a case-insensitive substring match on
// name or city, and optionally by exact state.
func SearchBranches(branches []model.Branch, query, state string) []model.Branch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Branch, 0, len(branches))
	for _, b := range branches {
		if state != "" && b.State != state {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.City), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SearchPublications filters publications by title/author substring and
// optional type and language.
func SearchPublications(pubs []model.Publication, query, pubType, language string) []model.Publication {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Publication, 0, len(pubs))
	for _, p := range pubs {
		if pubType != "" && p.Type != pubType {
			continue
		}
		if language != "" && p.Language != language {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Author), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterGallery returns the gallery items in the given category, or all
// items when category is empty.
func FilterGallery(items []model.GalleryItem, category string) []model.GalleryItem {
	if category == "" {
		return items
	}
	out := make([]model.GalleryItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// GuruByID returns the lineage entry with the given id.
func GuruByID(gurus []model.Guru, id string) (model.Guru, bool) {
	for _, g := range gurus {
		if g.ID == id {
			return g, true
		}
	}
	return model.Guru{}, false
}
