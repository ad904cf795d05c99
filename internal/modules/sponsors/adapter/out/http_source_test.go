package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapter "confmate/internal/modules/sponsors/adapter/out"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/httpx"
	"confmate/internal/platform/logging"
)

func TestFetchSponsorsDecodesGroups(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"sponsor_level":"Gold","sponsors":[
				{"url":"https://gold.example","uri":"https://img/gold.png","sessions":[{"id":"s1"},{"id":"s2"}]}
			]},
			{"sponsor_level":"Swag","sponsors":[
				{"url":"https://swag.example","uri":"https://img/swag.png","sessions":[]}
			]}
		]`))
	}))
	defer server.Close()

	client := httpx.NewClient(time.Second, "device-1", logging.Discard())
	source := adapter.NewHTTPSource(client, server.URL)

	groups, err := source.FetchSponsors(context.Background())
	if err != nil {
		t.Fatalf("fetch sponsors: %v", err)
	}
	if len(groups) != 2 || groups[0].Level != "Gold" || groups[1].Level != "Swag" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	gold := groups[0].Sponsors[0]
	if gold.ImageURL != "https://img/gold.png" {
		t.Fatalf("uri field not mapped: %+v", gold)
	}
	if len(gold.SessionIDs) != 2 || gold.SessionIDs[0] != "s1" {
		t.Fatalf("session refs not flattened: %+v", gold.SessionIDs)
	}
}

func TestFetchSponsorsMalformed(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer server.Close()

	client := httpx.NewClient(time.Second, "device-1", logging.Discard())
	source := adapter.NewHTTPSource(client, server.URL)

	if _, err := source.FetchSponsors(context.Background()); !errors.Is(err, apperrors.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
