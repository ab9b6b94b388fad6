package inventory

import (
	"strconv"
	"time"
)

const (
	metricBooksAdded           = "inventory_books_added_total"
	metricBorrowCalls          = "inventory_borrow_calls_total"
	metricReturnCalls          = "inventory_return_calls_total"
	metricNotificationsSent    = "inventory_notifications_sent_total"
	metricNotificationDuration = "inventory_notification_duration_seconds"
	metricAvailableCopies      = "inventory_available_copies"
	metricLateFeeCalculations  = "inventory_late_fee_calculations_total"
	metricLateFeeAmount        = "inventory_late_fee_amount"
	metricLabelStatus          = "status"
	metricLabelReason          = "reason"
	metricLabelBookID          = "book_id"
	metricLabelBestseller      = "bestseller"
	metricLabelPremiumMember   = "premium_member"
	statusSuccess              = "success"
	statusRejected             = "rejected"
	statusError                = "error"
	logMsgBookAdded            = "book copies added to inventory"
	logMsgNegativeQuantity     = "negative quantity added to inventory"
	logMsgBookBorrowed         = "book copy lent to reader"
	logMsgBorrowRejected       = "lending book copy to reader rejected"
	logMsgBookReturned         = "book copy returned by reader"
	logMsgReturnRejected       = "returning book copy from reader rejected"
	logMsgLateFeeCalculated    = "late fee calculated"
	logMsgLateFeeRejected      = "late fee calculation rejected"
	logAttrBookID              = "book_id"
	logAttrUserID              = "user_id"
	logAttrQuantity            = "quantity"
	logAttrAvailableCopies     = "available_copies"
	logAttrReason              = "reason"
	logAttrDaysLate            = "days_late"
	logAttrFee                 = "fee"
	logAttrError               = "error"
	logAttrBestseller          = "bestseller"
	logAttrPremiumMember       = "premium_member"
)

// Logger interface for operational logging, warnings, and error reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting inventory operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// logDebug logs at debug level if the logger is configured.
func (m *Manager) logDebug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if the logger is configured.
func (m *Manager) logInfo(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if the logger is configured.
func (m *Manager) logWarn(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (m *Manager) logError(msg string, err error, args ...any) {
	if m.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		m.logger.Error(msg, allArgs...)
	}
}

// incrementCounter increments a counter if the metrics collector is configured.
func (m *Manager) incrementCounter(metric string, labels map[string]string) {
	if m.metricsCollector != nil {
		m.metricsCollector.IncrementCounter(metric, labels)
	}
}

// recordDuration records a duration if the metrics collector is configured.
func (m *Manager) recordDuration(metric string, duration time.Duration, labels map[string]string) {
	if m.metricsCollector != nil {
		m.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

// recordValue records a value if the metrics collector is configured.
func (m *Manager) recordValue(metric string, value float64, labels map[string]string) {
	if m.metricsCollector != nil {
		m.metricsCollector.RecordValue(metric, value, labels)
	}
}

// recordDecision counts a borrow or return call labeled with its outcome.
func (m *Manager) recordDecision(metric string, d decision) {
	labels := map[string]string{
		metricLabelStatus: statusSuccess,
	}

	if !d.succeeded() {
		labels[metricLabelStatus] = statusRejected
		labels[metricLabelReason] = d.reason
	}

	m.incrementCounter(metric, labels)
}

// recordAvailableCopies publishes the current copy count of a book.
func (m *Manager) recordAvailableCopies(bookID BookIDString) {
	m.recordValue(
		metricAvailableCopies,
		float64(m.availableCopies[bookID]),
		map[string]string{metricLabelBookID: bookID},
	)
}

func feeLabels(status string, isBestseller bool, isPremiumMember bool) map[string]string {
	return map[string]string{
		metricLabelStatus:        status,
		metricLabelBestseller:    strconv.FormatBool(isBestseller),
		metricLabelPremiumMember: strconv.FormatBool(isPremiumMember),
	}
}
