// Package api implements the TheMealDB client used by the mealdb commands.
//
// The api package provides:
// - A Client that maps each lookup to one GET against the public JSON API
// - The Meal model, a flat field map with typed accessors
// - Fetching and converting a meal's original recipe page to markdown
package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrNetwork represents a request that never produced a response
	ErrNetwork ErrorCode = "NetworkError"
	// ErrUnexpectedStatus represents a response with a non-2xx status
	ErrUnexpectedStatus ErrorCode = "UnexpectedStatus"
	// ErrDecode represents a response body that is not valid JSON
	ErrDecode ErrorCode = "DecodeError"
	// ErrInvalidBaseURL represents a Client configured with an unparsable base URL
	ErrInvalidBaseURL ErrorCode = "InvalidBaseURL"
	// ErrNoSourceURL represents a meal without an original recipe page
	ErrNoSourceURL ErrorCode = "NoSourceURL"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
