package shell

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

const (
	logMsgNotificationFailed = "delivering notification failed"
	logAttrUserID            = "user_id"
	logAttrMessageID         = "message_id"
	logAttrError             = "error"
)

// NotificationEnvelope is the JSON document written for each notification.
type NotificationEnvelope struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// JSONLinesNotificationSink delivers notifications by writing one JSON document per line to a writer.
type JSONLinesNotificationSink struct {
	mu     sync.Mutex
	writer io.Writer
	clock  func() time.Time
	logger inventory.Logger
}

// SinkOption configures a JSONLinesNotificationSink.
type SinkOption func(*JSONLinesNotificationSink)

// WithSinkLogger sets a logger which receives delivery failures.
func WithSinkLogger(logger inventory.Logger) SinkOption {
	return func(s *JSONLinesNotificationSink) {
		s.logger = logger
	}
}

// WithClock replaces time.Now as the source of SentAt.
func WithClock(clock func() time.Time) SinkOption {
	return func(s *JSONLinesNotificationSink) {
		s.clock = clock
	}
}

// NewJSONLinesNotificationSink creates a sink writing to w.
func NewJSONLinesNotificationSink(w io.Writer, options ...SinkOption) (*JSONLinesNotificationSink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	s := &JSONLinesNotificationSink{
		writer: w,
		clock:  time.Now,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// NotifyUser implements inventory.NotificationSink.
// NotifyUser can't fail towards the caller, so encoding and write errors are only logged.
func (s *JSONLinesNotificationSink) NotifyUser(userID string, message string) {
	envelope := NotificationEnvelope{
		MessageID: uuid.New().String(),
		UserID:    userID,
		Message:   message,
		SentAt:    s.clock().UTC(),
	}

	if err := s.write(envelope); err != nil {
		s.logError(err, envelope)
	}
}

func (s *JSONLinesNotificationSink) write(envelope NotificationEnvelope) error {
	line, err := jsoniter.ConfigFastest.Marshal(envelope)
	if err != nil {
		return errors.Join(ErrEncodingNotificationFailed, err)
	}

	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err = s.writer.Write(line); err != nil {
		return errors.Join(ErrWritingNotificationFailed, err)
	}

	return nil
}

func (s *JSONLinesNotificationSink) logError(err error, envelope NotificationEnvelope) {
	if s.logger != nil {
		s.logger.Error(
			logMsgNotificationFailed,
			logAttrUserID, envelope.UserID,
			logAttrMessageID, envelope.MessageID,
			logAttrError, err.Error(),
		)
	}
}

var _ inventory.NotificationSink = (*JSONLinesNotificationSink)(nil)
