package application

import (
	"time"

	"gorm.io/gorm"
)

// Status is the tri-state value shared by the lifecycle sub-statuses.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Application is a loan application together with its composite lifecycle
// status. The four sub-statuses are monotonic: none may regress once
// advanced, except approval during a counter-offer cycle.
type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id_active" json:"application_id"`
	ApplicantID   string `gorm:"size:32;index:idx_applications_applicant_active" json:"applicant_id"`

	// Requested terms. Amount is in minor currency units; Rate is a
	// percentage (5.5 = 5.5% flat over the tenor).
	Amount      int64   `gorm:"column:amount" json:"amount"`
	TenorMonths int     `gorm:"column:tenor_months" json:"tenor_months"`
	Rate        float64 `gorm:"type:decimal(6,3)" json:"rate"`

	KYCStatus          Status `gorm:"column:kyc_status;type:enum('pending','completed','rejected');default:'pending'" json:"kyc_status"`
	SendStatus         Status `gorm:"column:send_status;type:enum('pending','completed','rejected');default:'pending'" json:"send_status"`
	ApprovalStatus     Status `gorm:"column:approval_status;type:enum('pending','completed','rejected');default:'pending'" json:"approval_status"`
	DisbursementStatus Status `gorm:"column:disbursement_status;type:enum('pending','completed');default:'pending'" json:"disbursement_status"`

	// Counter-offer cycle bookkeeping. CounterPending means the partner has
	// proposed floor terms and the admin has not yet re-offered.
	CounterPending bool `gorm:"column:counter_pending" json:"counter_pending"`
	CounterRounds  int  `gorm:"column:counter_rounds" json:"counter_rounds"`

	// StatusVersion increments on every status write; commands load the row
	// FOR UPDATE so this is a consistency check, not the primary guard.
	StatusVersion uint64 `gorm:"column:status_version" json:"-"`

	DisbursedAt    *time.Time     `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy      string         `gorm:"size:32" json:"-"`
}

func (Application) TableName() string { return "applications" }

// Routable reports whether the application may be sent to a partner: the
// KYC gate must be settled and no partner decision may be pending.
func (a *Application) Routable() bool {
	return a.KYCStatus == StatusCompleted &&
		!(a.SendStatus == StatusCompleted && a.ApprovalStatus == StatusPending)
}

// Advance bumps the status version and state timestamp. Call after any
// sub-status mutation, inside the row-locked transaction.
func (a *Application) Advance(now time.Time) {
	a.StatusVersion++
	a.StateUpdatedAt = now.UTC()
}
