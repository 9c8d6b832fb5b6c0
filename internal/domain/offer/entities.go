package offer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("offer terms not found")

// Kind distinguishes partner floor proposals from admin concrete offers.
type Kind string

const (
	// KindFloor: partner counter-offer naming minimum deposit / minimum tenor.
	KindFloor Kind = "floor"
	// KindOffer: admin's concrete terms; the latest one after approval is the
	// locked terms the schedule is generated from.
	KindOffer Kind = "offer"
)

// Terms is one row of the append-only offer history for an application.
// Terms are superseded, never mutated.
type Terms struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64 `gorm:"column:application_id;not null;index" json:"-"`
	Kind          Kind   `gorm:"column:kind;type:enum('floor','offer');not null" json:"kind"`

	// Amounts in minor currency units. Floor rows carry MinDeposit/MinTenor;
	// offer rows carry Amount/TenorMonths/MonthlyPayment.
	Amount         int64  `gorm:"column:amount" json:"amount"`
	TenorMonths    int    `gorm:"column:tenor_months" json:"tenor_months"`
	MinDeposit     *int64 `gorm:"column:min_deposit" json:"min_deposit,omitempty"`
	MinTenor       *int   `gorm:"column:min_tenor" json:"min_tenor,omitempty"`
	MonthlyPayment int64  `gorm:"column:monthly_payment" json:"monthly_payment"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Terms) TableName() string { return "offer_terms" }

// MeetsFloor reports whether the offer satisfies a partner floor. A nil
// floor constraint does not bind.
func (t *Terms) MeetsFloor(floor *Terms) bool {
	if floor == nil {
		return true
	}
	if floor.MinDeposit != nil && t.Amount < *floor.MinDeposit {
		return false
	}
	if floor.MinTenor != nil && t.TenorMonths < *floor.MinTenor {
		return false
	}
	return true
}
