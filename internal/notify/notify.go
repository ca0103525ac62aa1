// Package notify holds the transient notification attached to console responses.
//
// Every write ends in exactly one of: a success notification, an error
// notification, or no notification at all for guarded no-ops.
package notify

// GenericFailure is shown when a failure carries no usable message.
const GenericFailure = "Something went wrong. Please try again."

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(message string) *Notification {
	return &Notification{Level: LevelSuccess, Message: message}
}

// Error builds an error notification, falling back to GenericFailure for empty messages.
func Error(message string) *Notification {
	if message == "" {
		message = GenericFailure
	}
	return &Notification{Level: LevelError, Message: message}
}
