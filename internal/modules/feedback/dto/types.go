package dto

// SubmitInput carries caller-supplied feedback fields. Device identity and
// the submission timestamp are filled in by the application.
type SubmitInput struct {
	SessionID string
	Rating    int
	Comment   string
}
