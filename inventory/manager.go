package inventory

import "time"

// loanKey identifies an active loan. At most one loan per (book, reader) pair is tracked.
type loanKey struct {
	bookID BookIDString
	userID UserIDString
}

// Manager owns the inventory of a library: the available copies per book and the set of active loans.
// It delegates user activity checks and notifications to the injected collaborators.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	users            UserActivityProvider
	notifications    NotificationSink
	availableCopies  map[BookIDString]AvailableCopiesInt
	activeLoans      map[loanKey]struct{}
	logger           Logger
	metricsCollector MetricsCollector
}

// NewManager creates a new Manager with an empty inventory and optional configuration.
func NewManager(users UserActivityProvider, notifications NotificationSink, options ...Option) (*Manager, error) {
	if users == nil {
		return nil, ErrNilUserActivityProvider
	}

	if notifications == nil {
		return nil, ErrNilNotificationSink
	}

	m := &Manager{
		users:           users,
		notifications:   notifications,
		availableCopies: make(map[BookIDString]AvailableCopiesInt),
		activeLoans:     make(map[loanKey]struct{}),
	}

	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AddBook adds quantity copies of a book to the inventory.
// An unknown book is created with quantity copies, a known book's copies are incremented.
//
// The quantity is not validated. A negative quantity reduces the available copies,
// possibly below zero, and is reported as a warning.
func (m *Manager) AddBook(bookID BookIDString, quantity int) {
	m.availableCopies[bookID] += quantity

	if quantity < 0 {
		m.logWarn(
			logMsgNegativeQuantity,
			logAttrBookID, bookID,
			logAttrQuantity, quantity,
			logAttrAvailableCopies, m.availableCopies[bookID],
		)
	} else {
		m.logInfo(
			logMsgBookAdded,
			logAttrBookID, bookID,
			logAttrQuantity, quantity,
			logAttrAvailableCopies, m.availableCopies[bookID],
		)
	}

	m.incrementCounter(metricBooksAdded, nil)
	m.recordAvailableCopies(bookID)
}

// AvailableCopies returns the number of copies of a book which are not on loan.
// It returns 0 for a book that was never added.
func (m *Manager) AvailableCopies(bookID BookIDString) AvailableCopiesInt {
	return m.availableCopies[bookID]
}

// HasActiveLoan reports whether the reader currently holds a copy of the book.
func (m *Manager) HasActiveLoan(bookID BookIDString, userID UserIDString) bool {
	_, ok := m.activeLoans[loanKey{bookID: bookID, userID: userID}]

	return ok
}

// BorrowBook lends one copy of a book to a reader.
//
// It returns true only if the reader is active and at least one copy is available. In that case the
// available copies are decremented by one and the loan is recorded. Otherwise, nothing changes.
// The user activity provider is asked on every call.
func (m *Manager) BorrowBook(bookID BookIDString, userID UserIDString) bool {
	d := decideBorrow(borrowState{
		userIsActive:    m.users.IsUserActive(userID),
		availableCopies: m.availableCopies[bookID],
	})

	m.recordDecision(metricBorrowCalls, d)

	if !d.succeeded() {
		m.logDebug(logMsgBorrowRejected, logAttrBookID, bookID, logAttrUserID, userID, logAttrReason, d.reason)
		return false
	}

	m.availableCopies[bookID]--
	m.activeLoans[loanKey{bookID: bookID, userID: userID}] = struct{}{}

	m.logInfo(
		logMsgBookBorrowed,
		logAttrBookID, bookID,
		logAttrUserID, userID,
		logAttrAvailableCopies, m.availableCopies[bookID],
	)
	m.recordAvailableCopies(bookID)

	return true
}

// ReturnBook takes back a copy of a book from a reader.
//
// It returns true only if exactly this reader holds an active loan for the book. In that case the
// available copies are incremented by one, the loan is removed and the reader is notified.
// Otherwise, nothing changes and no notification is sent.
func (m *Manager) ReturnBook(bookID BookIDString, userID UserIDString) bool {
	key := loanKey{bookID: bookID, userID: userID}
	_, loanIsActive := m.activeLoans[key]

	d := decideReturn(returnState{loanIsActive: loanIsActive})

	m.recordDecision(metricReturnCalls, d)

	if !d.succeeded() {
		m.logDebug(logMsgReturnRejected, logAttrBookID, bookID, logAttrUserID, userID, logAttrReason, d.reason)
		return false
	}

	m.availableCopies[bookID]++
	delete(m.activeLoans, key)

	start := time.Now()
	m.notifications.NotifyUser(userID, ReturnNotificationMessage(bookID))
	m.recordDuration(metricNotificationDuration, time.Since(start), nil)
	m.incrementCounter(metricNotificationsSent, nil)

	m.logInfo(
		logMsgBookReturned,
		logAttrBookID, bookID,
		logAttrUserID, userID,
		logAttrAvailableCopies, m.availableCopies[bookID],
	)
	m.recordAvailableCopies(bookID)

	return true
}

// CalculateDynamicLateFee computes the late fee like the package-level CalculateDynamicLateFee
// and reports the calculation to the configured logger and metrics collector.
func (m *Manager) CalculateDynamicLateFee(daysLate int, isBestseller bool, isPremiumMember bool) (float64, error) {
	fee, err := CalculateDynamicLateFee(daysLate, isBestseller, isPremiumMember)
	if err != nil {
		m.logError(logMsgLateFeeRejected, err, logAttrDaysLate, daysLate)
		m.incrementCounter(metricLateFeeCalculations, feeLabels(statusError, isBestseller, isPremiumMember))

		return 0, err
	}

	m.logInfo(
		logMsgLateFeeCalculated,
		logAttrDaysLate, daysLate,
		logAttrBestseller, isBestseller,
		logAttrPremiumMember, isPremiumMember,
		logAttrFee, fee,
	)
	m.incrementCounter(metricLateFeeCalculations, feeLabels(statusSuccess, isBestseller, isPremiumMember))
	m.recordValue(metricLateFeeAmount, fee, feeLabels(statusSuccess, isBestseller, isPremiumMember))

	return fee, nil
}
