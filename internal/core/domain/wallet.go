package domain

import "github.com/shopspring/decimal"

// Wallet is a snapshot of the advertiser's prepaid balance. The platform owns
// it; this service only reads it and requests recharges.
type Wallet struct {
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
}

// Available returns the balance usable for funding. Inactive wallets and
// negative balances fund nothing.
func (w Wallet) Available() decimal.Decimal {
	if !w.IsActive || w.Balance.IsNegative() {
		return decimal.Zero
	}
	return w.Balance
}
