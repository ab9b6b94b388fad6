// Package testdoubles provides test doubles for the collaborators of the inventory Manager.
//
//   - UserActivityStub: answers IsUserActive with canned values and records every call
//   - NotificationSinkSpy: records every notification instead of delivering it
//
// Construct fresh doubles in each test; they hold mutable state.
package testdoubles
