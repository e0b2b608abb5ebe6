// Package googlebooks implements the external book catalog against the
// Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1"
	defaultTimeout = 10 * time.Second
)

// client implements service.BookCatalog by querying the Google Books volumes
// endpoint. Concurrent lookups for the same title are collapsed into a single
// upstream request.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	sf         singleflight.Group
}

// volumesResponse mirrors the subset of the Google Books payload the service
// reads. Everything else in the response is ignored.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			PublishedDate string   `json:"publishedDate"`
			Description   string   `json:"description"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// NewClient creates the Google Books catalog client.
func NewClient(cfg *config.CatalogConfig, logger *slog.Logger) service.BookCatalog {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Lookup fetches the best catalog match for the given title.
func (c *client) Lookup(ctx context.Context, title string) (*entity.CatalogBook, error) {
	key := strings.TrimSpace(strings.ToLower(title))

	// The fetch serves every coalesced waiter, so it must not die with the
	// first caller's context. The HTTP client timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)

	result, err, _ := c.sf.Do(key, func() (any, error) {
		return c.fetch(fetchCtx, title)
	})
	if err != nil {
		return nil, err
	}

	book, ok := result.(*entity.CatalogBook)
	if !ok {
		return nil, errors.New("unexpected catalog lookup result type")
	}

	return book, nil
}

func (c *client) fetch(ctx context.Context, title string) (*entity.CatalogBook, error) {
	endpoint := c.baseURL + "/volumes?q=" + url.QueryEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog returned non-success status",
			slog.String("title", title),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog returned an error")
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog returned malformed response")
	}

	if len(payload.Items) == 0 {
		return nil, domainerrors.ErrCatalogNotFound.WrapMessage("no catalog match for title")
	}

	// The first item is treated as the best match, matching the ranking the
	// catalog itself applies.
	info := payload.Items[0].VolumeInfo

	return &entity.CatalogBook{
		Title:         info.Title,
		Author:        strings.Join(info.Authors, ", "),
		PublishedDate: info.PublishedDate,
		Summary:       info.Description,
		CoverImage:    info.ImageLinks.Thumbnail,
	}, nil
}
