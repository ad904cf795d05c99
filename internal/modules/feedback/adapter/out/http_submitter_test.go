package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapter "confmate/internal/modules/feedback/adapter/out"
	"confmate/internal/modules/feedback/domain"
	"confmate/internal/platform/httpx"
	"confmate/internal/platform/logging"
)

func TestSubmitPostsExpectedPayload(t *testing.T) {
	t.Parallel()
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := httpx.NewClient(time.Second, "device-1", logging.Discard())
	submitter := adapter.NewHTTPSubmitter(client, server.URL)

	err := submitter.Submit(context.Background(), domain.Feedback{
		SessionID:   "s1",
		Rating:      4,
		Comment:     "solid demo",
		DeviceID:    "device-1",
		SubmittedAt: time.Date(2026, 9, 12, 11, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if received["sessionId"] != "s1" || received["userId"] != "device-1" {
		t.Fatalf("unexpected payload: %v", received)
	}
	if received["rating"] != float64(4) || received["comment"] != "solid demo" {
		t.Fatalf("unexpected payload: %v", received)
	}
	if received["submittedAt"] != "2026-09-12T11:30:00Z" {
		t.Fatalf("unexpected timestamp: %v", received["submittedAt"])
	}
}

func TestSubmitServerRejection(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := httpx.NewClient(time.Second, "device-1", logging.Discard())
	submitter := adapter.NewHTTPSubmitter(client, server.URL)

	err := submitter.Submit(context.Background(), domain.Feedback{SessionID: "s1", Rating: 1})
	if err == nil {
		t.Fatal("expected error on 400 response")
	}
}
