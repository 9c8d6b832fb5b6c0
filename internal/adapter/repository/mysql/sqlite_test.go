package mysql

import (
	"testing"
	"time"

	creditDomain "lenddesk-backend/internal/domain/credit"
	kycDomain "lenddesk-backend/internal/domain/kyc"
	partnerDomain "lenddesk-backend/internal/domain/partner"
	schedDomain "lenddesk-backend/internal/domain/schedule"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly shadow schemas for the enum-typed tables ---

type applicationSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	ApplicationID      string         `gorm:"size:32;column:application_id"`
	ApplicantID        string         `gorm:"size:32;column:applicant_id"`
	Amount             int64          `gorm:"column:amount"`
	TenorMonths        int            `gorm:"column:tenor_months"`
	Rate               float64        `gorm:"column:rate"`
	KYCStatus          string         `gorm:"type:text;column:kyc_status"` // no enum
	SendStatus         string         `gorm:"type:text;column:send_status"`
	ApprovalStatus     string         `gorm:"type:text;column:approval_status"`
	DisbursementStatus string         `gorm:"type:text;column:disbursement_status"`
	CounterPending     bool           `gorm:"column:counter_pending"`
	CounterRounds      int            `gorm:"column:counter_rounds"`
	StatusVersion      uint64         `gorm:"column:status_version"`
	DisbursedAt        *time.Time     `gorm:"column:disbursed_at"`
	StateUpdatedAt     time.Time      `gorm:"column:state_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy          string         `gorm:"column:deleted_by"`
}

func (applicationSQLite) TableName() string { return "applications" }

type offerTermsSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	ApplicationID  uint64    `gorm:"column:application_id"`
	Kind           string    `gorm:"type:text;column:kind"` // no enum
	Amount         int64     `gorm:"column:amount"`
	TenorMonths    int       `gorm:"column:tenor_months"`
	MinDeposit     *int64    `gorm:"column:min_deposit"`
	MinTenor       *int      `gorm:"column:min_tenor"`
	MonthlyPayment int64     `gorm:"column:monthly_payment"`
	Notes          string    `gorm:"column:notes"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (offerTermsSQLite) TableName() string { return "offer_terms" }

// openTestDB migrates the sqlite-safe schema for every table the repos
// touch. The enum-free models shadow the domain ones; everything else is
// sqlite-compatible as declared.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&offerTermsSQLite{},
		&partnerDomain.Partner{},
		&partnerDomain.RoutingRecord{},
		&kycDomain.Profile{},
		&creditDomain.Profile{},
		&schedDomain.Schedule{},
		&schedDomain.Installment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
