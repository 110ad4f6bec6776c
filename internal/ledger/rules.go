package ledger

import "bankist/internal/models"

// LoanCollateralRatio is the share of a requested loan that some existing
// movement must reach for the loan to be granted
const LoanCollateralRatio = 0.1

// ValidateTransfer reports whether sender may move amount to receiver.
// A nil receiver means the lookup failed. NaN amounts never pass.
func ValidateTransfer(sender, receiver *models.Account, amount float64) bool {
	if sender == nil || receiver == nil {
		return false
	}

	// Business rule: amount must be positive and covered by the current balance
	if !(amount > 0) || !(Balance(sender.Movements) >= amount) {
		return false
	}

	return receiver.UserName != sender.UserName
}

// ValidateLoan reports whether account is eligible for a loan of amount.
// The bank only lends when some past movement is at least 10% of the request.
func ValidateLoan(account *models.Account, amount float64) bool {
	if account == nil || !(amount > 0) {
		return false
	}

	required := amount * LoanCollateralRatio
	for _, m := range account.Movements {
		if m >= required {
			return true
		}
	}
	return false
}
