package dto

// SessionRefOutput is the slim session view shown under a sponsor.
type SessionRefOutput struct {
	ID    string
	Title string
	Room  string
	Start string
}

type SponsorOutput struct {
	URL      string
	ImageURL string
	Sessions []SessionRefOutput
}

type GroupOutput struct {
	Level    string
	Sponsors []SponsorOutput
}
