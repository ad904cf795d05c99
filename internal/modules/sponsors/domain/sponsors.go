package domain

import (
	programdomain "confmate/internal/modules/program/domain"
)

// Known sponsor levels, used for presentation ordering and coloring. Levels
// outside this set still render, just without special treatment.
const (
	LevelGold   = "Gold"
	LevelSilver = "Silver"
	LevelSwag   = "Swag"
)

type Sponsor struct {
	URL        string
	ImageURL   string
	SessionIDs []string
	// Sessions holds the sponsored sessions resolved against the current
	// collection. Ids with no matching session are dropped silently.
	Sessions []programdomain.Session
}

// Group is one sponsor level with its sponsors, in the order the remote
// source lists them.
type Group struct {
	Level    string
	Sponsors []Sponsor
}

// JoinSessions resolves every sponsor's session ids against the collection
// and embeds the matches, preserving collection order within each sponsor.
func JoinSessions(groups []Group, c programdomain.Collection) []Group {
	joined := make([]Group, 0, len(groups))
	for _, group := range groups {
		outGroup := Group{Level: group.Level}
		for _, sponsor := range group.Sponsors {
			outSponsor := Sponsor{
				URL:        sponsor.URL,
				ImageURL:   sponsor.ImageURL,
				SessionIDs: sponsor.SessionIDs,
			}
			for _, session := range c.Sessions {
				for _, id := range sponsor.SessionIDs {
					if session.ID == id {
						outSponsor.Sessions = append(outSponsor.Sessions, session)
						break
					}
				}
			}
			outGroup.Sponsors = append(outGroup.Sponsors, outSponsor)
		}
		joined = append(joined, outGroup)
	}
	return joined
}
