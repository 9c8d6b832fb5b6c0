package partner

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("partner not found")

// Partner is immutable funding-partner reference data.
type Partner struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	PartnerID string    `gorm:"size:32;uniqueIndex:ux_partners_partner_id" json:"partner_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Code      string    `gorm:"size:16;uniqueIndex:ux_partners_code" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Partner) TableName() string { return "partners" }

// RoutingRecord is one routing event. Records are append-only: re-routing
// after a rejection inserts a new row and preserves the old one.
type RoutingRecord struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64    `gorm:"column:application_id;not null;index" json:"-"`
	PartnerID     uint64    `gorm:"column:partner_id;not null;index" json:"-"`
	RoutedAt      time.Time `gorm:"column:routed_at;not null" json:"routed_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Partner *Partner `gorm:"foreignKey:PartnerID;references:ID" json:"partner,omitempty"`
}

func (RoutingRecord) TableName() string { return "routing_records" }
