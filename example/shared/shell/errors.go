package shell

import "errors"

var (
	// ErrNilWriter is returned when a notification sink is created without a writer.
	ErrNilWriter = errors.New("writer must not be nil")

	// ErrEncodingNotificationFailed is reported when a notification can't be encoded to JSON.
	ErrEncodingNotificationFailed = errors.New("encoding notification failed")

	// ErrWritingNotificationFailed is reported when an encoded notification can't be written.
	ErrWritingNotificationFailed = errors.New("writing notification failed")
)
