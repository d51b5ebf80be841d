// Package gallery loads the processed videos and presents them as cards.
package gallery

import (
	"clipshare/internal/client/platform"
	"clipshare/internal/core/domain"
	"context"
	"log/slog"
	"sort"
	"time"
)

const (
	FetchErrorMessage = "Failed to fetch videos"
	EmptyPlaceholder  = "No videos available"
)

// Status is the state of a Gallery
type Status int

const (
	Loading Status = iota
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Lister fetches the video records
type Lister interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
}

// RenditionURLBuilder derives delivery URLs, no I/O
type RenditionURLBuilder interface {
	RenditionURL(publicID string, transform domain.Transform) string
}

// Gallery is not safe for concurrent use
type Gallery struct {
	lister Lister
	urls   RenditionURLBuilder
	saver  platform.Saver
	logger *slog.Logger

	status  Status
	message string
	cards   []*Card
}

// New returns a Gallery in the Loading state
func New(lister Lister, urls RenditionURLBuilder, saver platform.Saver, logger *slog.Logger) *Gallery {
	return &Gallery{
		lister: lister,
		urls:   urls,
		saver:  saver,
		logger: logger,
		status: Loading,
	}
}

// Load issues one listing request and moves to Success or Error
func (g *Gallery) Load(ctx context.Context) error {
	g.status = Loading
	g.message = ""

	videos, err := g.lister.ListVideos(ctx)
	if err != nil {
		g.logger.Error("failed to fetch videos", "error", err)
		g.status = Error
		g.message = FetchErrorMessage
		g.cards = nil
		return err
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})

	cards := make([]*Card, len(videos))
	for i, v := range videos {
		cards[i] = newCard(v, g.urls)
	}
	g.cards = cards
	g.status = Success
	return nil
}

func (g *Gallery) Status() Status {
	return g.status
}

// Message is the error text in the Error state
func (g *Gallery) Message() string {
	return g.message
}

// Placeholder is shown instead of the grid once loading ended with no card
func (g *Gallery) Placeholder() string {
	if g.status != Loading && len(g.cards) == 0 {
		return EmptyPlaceholder
	}
	return ""
}

// Cards are ordered newest first
func (g *Gallery) Cards() []*Card {
	return g.cards
}

// Download saves the full resolution rendition as "<title>.mp4"
func (g *Gallery) Download(ctx context.Context, card *Card) error {
	return g.saver.SaveURL(ctx, card.FullURL(), card.Video.Title+".mp4")
}

// Card is one video of the gallery
type Card struct {
	Video domain.Video

	thumbnailURL string
	previewURL   string
	fullURL      string

	hovered       bool
	previewFailed bool
}

func newCard(v domain.Video, urls RenditionURLBuilder) *Card {
	return &Card{
		Video:        v,
		thumbnailURL: urls.RenditionURL(v.PublicID, domain.ThumbnailTransform()),
		previewURL:   urls.RenditionURL(v.PublicID, domain.PreviewClipTransform()),
		fullURL:      urls.RenditionURL(v.PublicID, domain.FullResolutionTransform()),
	}
}

func (c *Card) Hover() {
	c.setHovered(true)
}

func (c *Card) Leave() {
	c.setHovered(false)
}

// PreviewFailed records a preview load error until the hover state changes
func (c *Card) PreviewFailed() {
	if c.hovered {
		c.previewFailed = true
	}
}

func (c *Card) setHovered(hovered bool) {
	if c.hovered != hovered {
		c.previewFailed = false
	}
	c.hovered = hovered
}

func (c *Card) Hovered() bool {
	return c.hovered
}

// Media returns the URL to display: the thumbnail at rest, the preview clip on hover.
// A failed preview yields ErrPreviewUnavailable and the caller shows PreviewPlaceholder.
func (c *Card) Media() (string, error) {
	if !c.hovered {
		return c.thumbnailURL, nil
	}
	if c.previewFailed {
		return "", domain.ErrPreviewUnavailable
	}
	return c.previewURL, nil
}

func (c *Card) ThumbnailURL() string {
	return c.thumbnailURL
}

func (c *Card) PreviewURL() string {
	return c.previewURL
}

func (c *Card) FullURL() string {
	return c.fullURL
}

// Details formats the card's text relative to now
func (c *Card) Details(now time.Time) Details {
	return newDetails(c.Video, now)
}
