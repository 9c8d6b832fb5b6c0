package kycgate

import (
	"context"
	"errors"

	"lenddesk-backend/internal/domain/kyc"

	"gorm.io/gorm"
)

type Usecase struct{ repo kyc.Repository }

func NewUsecase(r kyc.Repository) *Usecase { return &Usecase{repo: r} }

// Result is the gate verdict. Missing data is a normal state; Evaluate only
// errors on storage failures.
type Result struct {
	Complete bool        `json:"complete"`
	Missing  []kyc.Field `json:"missing,omitempty"`
}

func (u *Usecase) Evaluate(ctx context.Context, applicantID string) (*Result, error) {
	p, err := u.repo.GetByApplicantID(ctx, applicantID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, kyc.ErrNotFound):
		// no profile row at all: everything is missing
		return &Result{Complete: false, Missing: kyc.AllFields()}, nil
	case err != nil:
		return nil, err
	}
	missing := p.Missing()
	return &Result{Complete: len(missing) == 0, Missing: missing}, nil
}

type SubmitInput struct {
	ApplicantID             string `json:"applicant_id"`
	IdentityDocumentRef     string `json:"identity_document_ref"`
	BeneficiaryName         string `json:"beneficiary_name"`
	BeneficiaryRelationship string `json:"beneficiary_relationship"`
	BeneficiaryContact      string `json:"beneficiary_contact"`
	TitleDocumentRef        string `json:"title_document_ref"`
}

// SubmitProfile upserts the gate data for an applicant. Blank inputs leave
// the corresponding field missing; they do not clear previously stored data.
func (u *Usecase) SubmitProfile(ctx context.Context, in SubmitInput) (*kyc.Profile, error) {
	if in.ApplicantID == "" {
		return nil, errors.New("missing applicant id")
	}
	p, err := u.repo.GetByApplicantID(ctx, in.ApplicantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, kyc.ErrNotFound) {
			return nil, err
		}
		p = &kyc.Profile{ApplicantID: in.ApplicantID}
	}
	if in.IdentityDocumentRef != "" {
		p.IdentityDocumentRef = in.IdentityDocumentRef
	}
	if in.BeneficiaryName != "" {
		p.BeneficiaryName = in.BeneficiaryName
	}
	if in.BeneficiaryRelationship != "" {
		p.BeneficiaryRelationship = in.BeneficiaryRelationship
	}
	if in.BeneficiaryContact != "" {
		p.BeneficiaryContact = in.BeneficiaryContact
	}
	if in.TitleDocumentRef != "" {
		p.TitleDocumentRef = in.TitleDocumentRef
	}
	if err := u.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
