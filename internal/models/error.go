package models

// Error messages returned by the API
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgValidationErrors   = "validation errors"
)

// ErrorResponse is the error body of read and delete endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the error body of create endpoints
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates a multi-message error body
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{
		Error:            code,
		ErrorDescription: description,
	}
}
