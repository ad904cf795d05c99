package out

import (
	"context"
	"fmt"

	"confmate/internal/modules/sponsors/domain"
	sponsorsout "confmate/internal/modules/sponsors/port/out"
	"confmate/internal/platform/httpx"
)

type sponsorSessionRef struct {
	ID string `json:"id"`
}

type sponsorRecord struct {
	URL      string              `json:"url"`
	ImageURL string              `json:"uri"`
	Sessions []sponsorSessionRef `json:"sessions"`
}

type sponsorGroupRecord struct {
	Level    string          `json:"sponsor_level"`
	Sponsors []sponsorRecord `json:"sponsors"`
}

// HTTPSource pulls sponsor groups from the remote sponsors endpoint.
type HTTPSource struct {
	client *httpx.Client
	url    string
}

func NewHTTPSource(client *httpx.Client, url string) sponsorsout.Source {
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) FetchSponsors(ctx context.Context) ([]domain.Group, error) {
	var records []sponsorGroupRecord
	if err := s.client.GetJSON(ctx, s.url, &records); err != nil {
		return nil, fmt.Errorf("fetch sponsors: %w", httpx.Classify(err))
	}
	groups := make([]domain.Group, 0, len(records))
	for _, record := range records {
		group := domain.Group{Level: record.Level}
		for _, sponsor := range record.Sponsors {
			ids := make([]string, 0, len(sponsor.Sessions))
			for _, ref := range sponsor.Sessions {
				ids = append(ids, ref.ID)
			}
			group.Sponsors = append(group.Sponsors, domain.Sponsor{
				URL:        sponsor.URL,
				ImageURL:   sponsor.ImageURL,
				SessionIDs: ids,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}
