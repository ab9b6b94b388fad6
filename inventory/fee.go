package inventory

const (
	baseFeePerDayLate    = 0.5
	bestsellerMultiplier = 1.5
	premiumMemberFactor  = 0.8
)

// CalculateDynamicLateFee computes the fee for returning a book daysLate days after its due date.
//
// The base fee is 0.5 per day late. Bestsellers cost 1.5 times as much, premium members pay
// 80 percent. Both factors compose multiplicatively. No rounding is applied.
//
// Returns ErrNegativeDaysLate (which wraps ErrInvalidArgument) if daysLate is negative.
func CalculateDynamicLateFee(daysLate int, isBestseller bool, isPremiumMember bool) (float64, error) {
	if daysLate < 0 {
		return 0, ErrNegativeDaysLate
	}

	if daysLate == 0 {
		return 0, nil
	}

	fee := float64(daysLate) * baseFeePerDayLate

	if isBestseller {
		fee *= bestsellerMultiplier
	}

	if isPremiumMember {
		fee *= premiumMemberFactor
	}

	return fee, nil
}
