package model

import "time"

// AccountKind classifies an account.
type AccountKind string

const (
	// AccountChecking is a checking account.
	AccountChecking AccountKind = "checking"
	// AccountSavings is a savings account.
	AccountSavings AccountKind = "savings"
	// AccountCredit is a credit account.
	AccountCredit AccountKind = "credit"
	// AccountInvestment is an investment account.
	AccountInvestment AccountKind = "investment"
)

// Valid reports whether the kind is one of the allowed values.
func (k AccountKind) Valid() bool {
	switch k {
	case AccountChecking, AccountSavings, AccountCredit, AccountInvestment:
		return true
	}
	return false
}

// Account holds a running balance. At most one account is treated as
// primary: the earliest-created one receives the signed balance delta
// posted by each appended transaction.
type Account struct {
	CreatedAt time.Time
	Name      string
	Kind      AccountKind
	Currency  string
	Bank      string
	ID        int64
	Balance   float64
}
