package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidFormat ErrorCode = "InvalidFormat"
	MealNotFound  ErrorCode = "MealNotFound"
	BrowserFailed ErrorCode = "BrowserFailed"
	RenderFailed  ErrorCode = "RenderFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
