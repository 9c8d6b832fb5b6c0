package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("repayment schedule not found")
	ErrAlreadyPaid        = errors.New("installment already paid")
	ErrUnknownInstallment = errors.New("unknown installment sequence")
)

// Schedule is the repayment plan materialized once per disbursement.
// All amounts are minor currency units.
type Schedule struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ScheduleID    uuid.UUID `gorm:"type:char(36);uniqueIndex:ux_schedules_schedule_id" json:"schedule_id"`
	ApplicationID uint64    `gorm:"column:application_id;not null;uniqueIndex:ux_schedules_application" json:"-"`

	Principal      int64     `gorm:"column:principal" json:"principal"`
	TotalRepayable int64     `gorm:"column:total_repayable" json:"total_repayable"`
	TenorMonths    int       `gorm:"column:tenor_months" json:"tenor_months"`
	DisbursedAt    time.Time `gorm:"column:disbursed_at;not null" json:"disbursed_at"`

	Installments []Installment `gorm:"foreignKey:ScheduleID;references:ID" json:"installments"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Schedule) TableName() string { return "repayment_schedules" }

// Installment is one repayment unit. Seq is 1-based and due dates are
// strictly increasing across a schedule.
type Installment struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID uuid.UUID  `gorm:"type:char(36);uniqueIndex:ux_installments_installment_id" json:"installment_id"`
	ScheduleID    uint64     `gorm:"column:schedule_id;not null;index" json:"-"`
	Seq           int        `gorm:"column:seq;not null" json:"seq"`
	DueDate       time.Time  `gorm:"column:due_date;not null" json:"due_date"`
	Amount        int64      `gorm:"column:amount" json:"amount"`
	Paid          bool       `gorm:"column:paid" json:"paid"`
	PaidAt        *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Installment) TableName() string { return "installments" }

// Overdue reports whether the installment is past due and unpaid at `now`.
func (i *Installment) Overdue(now time.Time) bool {
	return !i.Paid && now.After(i.DueDate)
}

// DaysOverdue is the whole-day count past the due date, floored at 0.
// Both timestamps are truncated to their UTC calendar date first so the
// count matches what an operator reads off a calendar.
func (i *Installment) DaysOverdue(now time.Time) int {
	if !i.Overdue(now) {
		return 0
	}
	d := dateOnly(now).Sub(dateOnly(i.DueDate))
	return int(d.Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
