package googlebooks

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	catalog := NewClient(&config.CatalogConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))

	concrete, ok := catalog.(*client)
	require.True(t, ok)

	return server, concrete
}

func TestLookupReturnsFirstMatch(t *testing.T) {
	_, catalog := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "The Go Programming Language", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"volumeInfo": {
						"title": "The Go Programming Language",
						"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
						"publishedDate": "2015-11-16",
						"description": "The authoritative resource.",
						"imageLinks": {"thumbnail": "http://books.example/cover.jpg"}
					}
				},
				{
					"volumeInfo": {"title": "Some Other Edition"}
				}
			]
		}`))
	})

	book, err := catalog.Lookup(context.Background(), "The Go Programming Language")
	require.NoError(t, err)

	assert.Equal(t, "The Go Programming Language", book.Title)
	assert.Equal(t, "Alan A. A. Donovan, Brian W. Kernighan", book.Author)
	assert.Equal(t, "2015-11-16", book.PublishedDate)
	assert.Equal(t, "The authoritative resource.", book.Summary)
	assert.Equal(t, "http://books.example/cover.jpg", book.CoverImage)
}

func TestLookupNoMatch(t *testing.T) {
	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := catalog.Lookup(context.Background(), "no such book")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "CATALOG_NOT_FOUND", appErr.ErrorCode())
}

func TestLookupMissingItemsField(t *testing.T) {
	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})

	_, err := catalog.Lookup(context.Background(), "no such book")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATALOG_NOT_FOUND", appErr.ErrorCode())
}

func TestLookupUpstreamFailure(t *testing.T) {
	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := catalog.Lookup(context.Background(), "anything")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "CATALOG_UNAVAILABLE", appErr.ErrorCode())
}

func TestLookupUnreachableCatalog(t *testing.T) {
	server, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server.Close()

	_, err := catalog.Lookup(context.Background(), "anything")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATALOG_UNAVAILABLE", appErr.ErrorCode())
}

func TestLookupCoalescesConcurrentRequests(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	entered := make(chan struct{})

	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			close(entered)
		}
		<-release

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"volumeInfo": {"title": "Dune"}}]}`))
	})

	results := make(chan error, 2)
	go func() {
		_, err := catalog.Lookup(context.Background(), "Dune")
		results <- err
	}()
	<-entered

	go func() {
		_, err := catalog.Lookup(context.Background(), "Dune")
		results <- err
	}()

	// Give the second caller time to join the in-flight fetch, then let the
	// upstream respond.
	time.Sleep(100 * time.Millisecond)
	close(release)

	require.NoError(t, <-results)
	require.NoError(t, <-results)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLookupSurvivesCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"volumeInfo": {"title": "Dune"}}]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())

	type lookupResult struct {
		book *entity.CatalogBook
		err  error
	}
	done := make(chan lookupResult, 1)
	go func() {
		book, err := catalog.Lookup(ctx, "Dune")
		done <- lookupResult{book: book, err: err}
	}()

	// Cancelling the caller mid-flight must not abort the shared fetch.
	<-entered
	cancel()
	close(release)

	result := <-done
	require.NoError(t, result.err)
	assert.Equal(t, "Dune", result.book.Title)
}

func TestLookupPartialVolumeInfo(t *testing.T) {
	_, catalog := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"volumeInfo": {"title": "Bare Title"}}]}`))
	})

	book, err := catalog.Lookup(context.Background(), "Bare Title")
	require.NoError(t, err)

	assert.Equal(t, "Bare Title", book.Title)
	assert.Empty(t, book.Author)
	assert.Empty(t, book.PublishedDate)
	assert.Empty(t, book.Summary)
	assert.Empty(t, book.CoverImage)
}
