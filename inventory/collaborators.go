package inventory

const returnNotificationPrefix = "You have returned the book: "

// UserActivityProvider answers whether a user is currently allowed to borrow.
// It is queried once per BorrowBook call and its answer is never cached.
type UserActivityProvider interface {
	IsUserActive(userID UserIDString) bool
}

// NotificationSink delivers a message to a user. Delivery is fire-and-forget,
// the Manager does not consume any result.
type NotificationSink interface {
	NotifyUser(userID UserIDString, message string)
}

// UserActivityFunc adapts a plain function to the UserActivityProvider interface.
type UserActivityFunc func(userID UserIDString) bool

// IsUserActive calls f(userID).
func (f UserActivityFunc) IsUserActive(userID UserIDString) bool {
	return f(userID)
}

// NotificationFunc adapts a plain function to the NotificationSink interface.
type NotificationFunc func(userID UserIDString, message string)

// NotifyUser calls f(userID, message).
func (f NotificationFunc) NotifyUser(userID UserIDString, message string) {
	f(userID, message)
}

// ReturnNotificationMessage builds the message sent to a user after a successful return.
func ReturnNotificationMessage(bookID BookIDString) string {
	return returnNotificationPrefix + bookID
}
