package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goliatone/go-sitekit/content"
	"github.com/goliatone/go-sitekit/internal/gateway"
)

func TestEntityFetchAndKindGuard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/guide/moving-to-spain":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"entity":{"kind":"guide","slug":"moving-to-spain","title":"Moving to Spain","status":"published"}}`))
		case "/content/guide/actually-an-article":
			w.Write([]byte(`{"entity":{"kind":"article","slug":"actually-an-article","title":"X","status":"published"}}`))
		case "/content/guide/gone":
			w.Write([]byte(`{"entity":null}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := gateway.New(gateway.Config{BaseURL: server.URL}, nil)
	ctx := context.Background()

	entity, err := client.Entity(ctx, "guide", "moving-to-spain")
	if err != nil {
		t.Fatalf("Entity returned error: %v", err)
	}
	if entity.Title != "Moving to Spain" {
		t.Fatalf("unexpected entity: %+v", entity)
	}

	if _, err := client.Entity(ctx, "guide", "actually-an-article"); !errors.Is(err, content.ErrKindMismatch) {
		t.Fatalf("expected kind mismatch, got %v", err)
	}

	if _, err := client.Entity(ctx, "guide", "gone"); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not found for null entity, got %v", err)
	}
}

func TestEntityCachesWithinRevalidationWindow(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"entity":{"kind":"article","slug":"cached","title":"Cached","status":"published"}}`))
	}))
	defer server.Close()

	client := gateway.New(gateway.Config{BaseURL: server.URL, Revalidate: time.Minute}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.Entity(ctx, "article", "cached"); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected a single upstream hit within the window, got %d", got)
	}
}

func TestEntityFailsOnBadStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/article/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"entity": not json`))
		}
	}))
	defer server.Close()

	client := gateway.New(gateway.Config{BaseURL: server.URL}, nil)
	ctx := context.Background()

	if _, err := client.Entity(ctx, "article", "boom"); err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
	if _, err := client.Entity(ctx, "article", "garbled"); err == nil {
		t.Fatal("expected an error for a malformed body")
	}
}

func TestEntitiesListAndLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/article" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("expected limit=2, got %q", got)
		}
		w.Write([]byte(`{"entities":[{"kind":"article","slug":"a","title":"A"},{"kind":"article","slug":"b","title":"B"}]}`))
	}))
	defer server.Close()

	client := gateway.New(gateway.Config{BaseURL: server.URL}, nil)
	entities, err := client.Entities(context.Background(), "article", 2)
	if err != nil {
		t.Fatalf("Entities returned error: %v", err)
	}
	if len(entities) != 2 || entities[0].Slug != "a" {
		t.Fatalf("unexpected list: %+v", entities)
	}
}
