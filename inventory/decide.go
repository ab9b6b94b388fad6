package inventory

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"

	failureReasonUserNotActive     = "user is not active"
	failureReasonNoCopiesAvailable = "no copies available"
	failureReasonNoActiveLoan      = "no active loan for this reader"
)

// decision represents the outcome of a borrow or return decision.
//
// It should only be constructed with successDecision or rejectedDecision.
type decision struct {
	outcome string
	reason  string // empty for successful decisions
}

func successDecision() decision {
	return decision{outcome: outcomeSuccess}
}

func rejectedDecision(reason string) decision {
	return decision{outcome: outcomeRejected, reason: reason}
}

// succeeded reports whether the decision allows the state change.
func (d decision) succeeded() bool {
	return d.outcome == outcomeSuccess
}

// borrowState is the part of the inventory that is relevant to lend a book copy to a reader.
type borrowState struct {
	userIsActive    bool
	availableCopies AvailableCopiesInt
}

// returnState is the part of the inventory that is relevant to take back a book copy from a reader.
type returnState struct {
	loanIsActive bool
}

// decideBorrow determines whether a book copy may be lent to a reader.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a reader with UserID
//	WHEN: BorrowBook is requested
//	THEN: one copy is taken out of the inventory and the loan is recorded
//	REJECT: "user is not active" if the user activity provider says so
//	REJECT: "no copies available" if the book is unknown or all copies are lent out
func decideBorrow(s borrowState) decision {
	if !s.userIsActive {
		return rejectedDecision(failureReasonUserNotActive)
	}

	if s.availableCopies <= 0 {
		return rejectedDecision(failureReasonNoCopiesAvailable)
	}

	return successDecision()
}

// decideReturn determines whether a book copy may be taken back from a reader.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a reader with UserID
//	WHEN: ReturnBook is requested
//	THEN: one copy goes back into the inventory, the loan is removed, and the reader is notified
//	REJECT: "no active loan for this reader" if this exact reader does not hold the book
func decideReturn(s returnState) decision {
	if !s.loanIsActive {
		return rejectedDecision(failureReasonNoActiveLoan)
	}

	return successDecision()
}
