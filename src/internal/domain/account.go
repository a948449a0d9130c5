package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a registered customer profile together with its balance and
// full transaction history, newest transaction first.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	PasswordHash  string          `json:"passwordHash"`
	Balance       decimal.Decimal `json:"balance"`
	Transactions  []Transaction   `json:"transactions"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// HeadTransaction returns the most recent transaction. The account balance
// always equals the head transaction's running balance.
func (a Account) HeadTransaction() (Transaction, bool) {
	if len(a.Transactions) == 0 {
		return Transaction{}, false
	}
	return a.Transactions[0], true
}
