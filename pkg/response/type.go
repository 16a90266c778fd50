package response

// Response body constants.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again."

	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
