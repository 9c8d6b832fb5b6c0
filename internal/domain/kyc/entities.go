package kyc

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("kyc profile not found")

// Field identifies one requirement of the identity & document gate.
type Field string

const (
	FieldIdentityDocument        Field = "identity_document"
	FieldBeneficiaryName         Field = "beneficiary_name"
	FieldBeneficiaryRelationship Field = "beneficiary_relationship"
	FieldBeneficiaryContact      Field = "beneficiary_contact"
	FieldTitleDocument           Field = "title_document"
)

// Profile stores the gate data per applicant. Document fields hold storage
// references only; upload mechanics live outside the engine. A blank field
// is a normal "missing" state, never an error.
type Profile struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID string `gorm:"size:32;uniqueIndex:ux_kyc_profiles_applicant" json:"applicant_id"`

	IdentityDocumentRef     string `gorm:"type:text" json:"identity_document_ref"`
	BeneficiaryName         string `gorm:"size:128" json:"beneficiary_name"`
	BeneficiaryRelationship string `gorm:"size:64" json:"beneficiary_relationship"`
	BeneficiaryContact      string `gorm:"size:64" json:"beneficiary_contact"`
	TitleDocumentRef        string `gorm:"type:text" json:"title_document_ref"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "kyc_profiles" }

// Missing enumerates the gate fields the profile does not yet satisfy,
// in gate order.
func (p *Profile) Missing() []Field {
	var out []Field
	if p.IdentityDocumentRef == "" {
		out = append(out, FieldIdentityDocument)
	}
	if p.BeneficiaryName == "" {
		out = append(out, FieldBeneficiaryName)
	}
	if p.BeneficiaryRelationship == "" {
		out = append(out, FieldBeneficiaryRelationship)
	}
	if p.BeneficiaryContact == "" {
		out = append(out, FieldBeneficiaryContact)
	}
	if p.TitleDocumentRef == "" {
		out = append(out, FieldTitleDocument)
	}
	return out
}

// AllFields is the full gate requirement list, used when no profile row
// exists at all.
func AllFields() []Field {
	return []Field{
		FieldIdentityDocument,
		FieldBeneficiaryName,
		FieldBeneficiaryRelationship,
		FieldBeneficiaryContact,
		FieldTitleDocument,
	}
}
