package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewNotifierValidatesURL(t *testing.T) {
	if _, err := NewNotifier("http://hooks.local/orders", discardLogger()); err != nil {
		t.Fatalf("unexpected error for valid url: %v", err)
	}
	if _, err := NewNotifier("/relative", discardLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewNotifier("://broken", discardLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestNotifierOrderCreated(t *testing.T) {
	received := make(chan payload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		var p payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier, err := NewNotifier(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}

	total := int64(18500)
	notifier.OrderCreated(context.Background(), model.Order{ID: 10, Status: model.OrderStatusPending, Total: &total})

	p := <-received
	if p.Event != "order.created" || p.OrderID != 10 || p.Status != "Pending" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if p.Total == nil || *p.Total != 18500 {
		t.Fatalf("unexpected total: %+v", p.Total)
	}
}

func TestNotifierLogsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	var sawError bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			sawError = true
		}
		return a
	}})
	notifier, err := NewNotifier(server.URL, slog.New(handler))
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}

	notifier.OrderCreated(context.Background(), model.Order{ID: 10, Status: model.OrderStatusPending})
	if !sawError {
		t.Fatal("expected rejection to be logged")
	}
}

func TestNotifierSurvivesUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	notifier, err := NewNotifier(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}
	notifier.OrderCreated(context.Background(), model.Order{ID: 10, Status: model.OrderStatusPending})
}
