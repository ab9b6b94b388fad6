// Package inventory provides an in-memory inventory manager for a public library.
//
// The Manager tracks how many copies of each book are available, decides whether a
// reader may borrow a copy, keeps the set of active loans and computes late-return fees.
//
// Everything the Manager does not own is delegated to two injected collaborators:
//   - UserActivityProvider: answers whether a user is currently active
//   - NotificationSink: delivers a message to a user (fire-and-forget)
//
// Borrow and return decisions are made by pure functions over a small state snapshot;
// the Manager only applies the outcome to its maps. Ineligible requests are reported
// as false, never as errors. The only hard failure is a negative number of days late
// in the fee calculation.
//
// Common usage pattern:
//
//	manager, err := inventory.NewManager(users, notifications, inventory.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	manager.AddBook("book1", 5)
//
//	if manager.BorrowBook("book1", "user1") {
//		// ...
//	}
//
//	fee, err := inventory.CalculateDynamicLateFee(5, true, false) // 3.75
//
// A Manager is not safe for concurrent use.
package inventory
