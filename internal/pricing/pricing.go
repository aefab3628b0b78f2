// Package pricing contains the pure money calculations shared by the
// booking wizard and the POS dashboard. All amounts are whole Thai baht;
// none of the functions touch the store or the clock.
package pricing

import (
	"math"

	"github.com/kohtao/scuba-reservation/internal/model"
)

// Deposit options: the fraction of the total price due at booking time.
const (
	DepositFull    = "full"
	DepositPartial = "partial"
	DepositNone    = "none"
)

// PartialPercent is the share of the total charged for a partial deposit.
const PartialPercent = 50

// CouponFlatDiscount is the flat THB discount granted for any non-empty
// coupon code. There is no real coupon backend; every code is worth the
// same fixed amount.
const CouponFlatDiscount = 100

// ComputeTotal returns the booking total for n divers on the given
// package: unit price times diver count. Price and count are integers, so
// there is no rounding involved.
func ComputeTotal(course model.CoursePackage, diverCount int) int {
	return course.PriceTHB * diverCount
}

// ComputeDeposit returns the amount due now for the chosen deposit option.
// Partial deposits round half away from zero, which for the non-negative
// totals used here matches JavaScript's Math.round; the boundary only
// matters when the total is odd. Unknown options charge nothing.
func ComputeDeposit(total int, option string) int {
	switch option {
	case DepositFull:
		return total
	case DepositPartial:
		return int(math.Round(float64(total) * float64(PartialPercent) / 100.0))
	default:
		return 0
	}
}

// Remaining returns the outstanding balance. Overpayment is legitimate:
// the result may be negative and is never clamped.
func Remaining(total, paid int) int {
	return total - paid
}

// NeedsPayment reports whether the reservation still owes money. Paying
// the total exactly clears the flag.
func NeedsPayment(total, paid int) bool {
	return paid < total
}

// CouponDiscount returns the discount for a coupon code: a flat amount for
// any non-empty code, zero otherwise.
func CouponDiscount(code string) int {
	if code == "" {
		return 0
	}
	return CouponFlatDiscount
}
