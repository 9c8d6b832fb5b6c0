package credit

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("credit profile not found")

// Profile holds the applicant's credit score. The loan limit is derived,
// never stored.
type Profile struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID string    `gorm:"size:32;uniqueIndex:ux_credit_profiles_applicant" json:"applicant_id"`
	Score       int       `gorm:"column:score" json:"score"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "credit_profiles" }

// limit tiers, minor currency units. Indexed by score/10 so the mapping is
// monotone non-decreasing by construction.
var limitTiers = [...]int64{
	0:  0,
	1:  5_000_000,
	2:  10_000_000,
	3:  20_000_000,
	4:  35_000_000,
	5:  50_000_000,
	6:  75_000_000,
	7:  100_000_000,
	8:  150_000_000,
	9:  250_000_000,
	10: 500_000_000,
}

// LimitForScore maps a 0..100 score to a loan limit in minor units.
// Out-of-range scores clamp to the nearest tier.
func LimitForScore(score int) int64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return limitTiers[score/10]
}
