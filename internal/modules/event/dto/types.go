package dto

type SpeakerOutput struct {
	ID             string
	FullName       string
	ProfilePicture string
}

type SessionOutput struct {
	ID         string
	Title      string
	Room       string
	Starts     string
	Ends       string
	Speakers   []SpeakerOutput
	Bookmarked bool
}

type SectionOutput struct {
	Title    string
	Sessions []SessionOutput
}

type RefreshOutput struct {
	EventID  string
	Sessions int
	Speakers int
	// Superseded is set when a newer refresh was issued while this one was
	// in flight; the result was discarded and no state changed.
	Superseded bool
}

type AgendaOutput struct {
	EventID  string
	Sections []SectionOutput
}

type ToggleOutput struct {
	SessionID  string
	Bookmarked bool
}

type SubOptionOutput struct {
	Name     string
	Selected bool
}

type OptionOutput struct {
	Name     string
	Selected bool
	Options  []SubOptionOutput
}
