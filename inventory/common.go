package inventory

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")
var ErrNegativeDaysLate = fmt.Errorf("%w: days late must not be negative", ErrInvalidArgument)

var ErrNilUserActivityProvider = errors.New("nil user activity provider supplied")
var ErrNilNotificationSink = errors.New("nil notification sink supplied")
var ErrNilLogger = errors.New("nil logger supplied")
var ErrNilMetricsCollector = errors.New("nil metrics collector supplied")

// BookIDString represents a book identifier.
type BookIDString = string

// UserIDString represents a user (reader) identifier.
type UserIDString = string

// AvailableCopiesInt is the number of copies of a book that are currently not on loan.
type AvailableCopiesInt = int
