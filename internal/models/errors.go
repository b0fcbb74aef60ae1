package models

import "errors"

var (
	// ErrMissingField is returned when job_description or resumes is absent from a request.
	ErrMissingField = errors.New("missing required field")
	// ErrNoKeywords is returned when the job description yields an empty keyword set.
	ErrNoKeywords = errors.New("no keywords extracted from job description")
)

const (
	MessageMissingField = "Missing 'job_description' or 'resumes' in request"
	MessageNoKeywords   = "Could not extract any keywords from the job description. Please provide more detail."
	MessageInternal     = "An internal server error occurred."
)

// ClientMessage maps an error to the message safe to show a caller.
// Anything that is not a known request error collapses into MessageInternal.
func ClientMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return MessageMissingField
	case errors.Is(err, ErrNoKeywords):
		return MessageNoKeywords
	default:
		return MessageInternal
	}
}

// IsClientError reports whether err was caused by the request contents.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrNoKeywords)
}
