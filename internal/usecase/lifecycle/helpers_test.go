package lifecycle

import (
	"context"
	"strings"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	creditdomain "lenddesk-backend/internal/domain/credit"
	kycdomain "lenddesk-backend/internal/domain/kyc"
	offerdomain "lenddesk-backend/internal/domain/offer"
	partnerdomain "lenddesk-backend/internal/domain/partner"
	scheddomain "lenddesk-backend/internal/domain/schedule"
	"lenddesk-backend/internal/domain/uow"
	"lenddesk-backend/internal/testutil/appmock"
	"lenddesk-backend/internal/testutil/creditmock"
	"lenddesk-backend/internal/testutil/kycmock"
	"lenddesk-backend/internal/testutil/offermock"
	"lenddesk-backend/internal/testutil/partnermock"
	"lenddesk-backend/internal/testutil/schedmock"
	"lenddesk-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

// fixture drives the state machine fully in memory: append-only offer and
// schedule stores backed by slices, repos wired through the Static uowmock.
type fixture struct {
	uc   *Usecase
	app  *domain.Application
	repo uow.Repos

	offers    []offerdomain.Terms
	schedules []*scheddomain.Schedule
	routings  []partnerdomain.RoutingRecord

	kycProfile    *kycdomain.Profile
	creditProfile *creditdomain.Profile
}

func testTime() time.Time {
	return time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
}

func completeProfile(applicantID string) *kycdomain.Profile {
	return &kycdomain.Profile{
		ApplicantID:             applicantID,
		IdentityDocumentRef:     "doc://id/1",
		BeneficiaryName:         "Jane Doe",
		BeneficiaryRelationship: "spouse",
		BeneficiaryContact:      "+2348000000000",
		TitleDocumentRef:        "doc://title/1",
	}
}

func newFixture(app *domain.Application) *fixture {
	f := &fixture{app: app}

	f.repo = uow.Repos{
		Applications: &appmock.Repo{
			GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
				if f.app.ApplicationID == id {
					return f.app, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
		},
		Partners: &partnermock.Repo{
			GetByPartnerIDFn: func(ctx context.Context, partnerID string) (*partnerdomain.Partner, error) {
				if partnerID != "p-001" {
					return nil, gorm.ErrRecordNotFound
				}
				return &partnerdomain.Partner{ID: 7, PartnerID: "p-001", Name: "FirstFund", Code: "FF"}, nil
			},
			CreateRoutingFn: func(ctx context.Context, r *partnerdomain.RoutingRecord) error {
				f.routings = append(f.routings, *r)
				return nil
			},
			LatestRoutingFn: func(ctx context.Context, appID uint64) (*partnerdomain.RoutingRecord, error) {
				for i := len(f.routings) - 1; i >= 0; i-- {
					if f.routings[i].ApplicationID == appID {
						r := f.routings[i]
						r.Partner = &partnerdomain.Partner{ID: 7, PartnerID: "p-001", Name: "FirstFund", Code: "FF"}
						return &r, nil
					}
				}
				return nil, gorm.ErrRecordNotFound
			},
		},
		Offers: &offermock.Repo{
			CreateFn: func(ctx context.Context, t *offerdomain.Terms) error {
				f.offers = append(f.offers, *t)
				return nil
			},
			LatestFn: func(ctx context.Context, appID uint64, kind offerdomain.Kind) (*offerdomain.Terms, error) {
				for i := len(f.offers) - 1; i >= 0; i-- {
					if f.offers[i].ApplicationID == appID && f.offers[i].Kind == kind {
						t := f.offers[i]
						return &t, nil
					}
				}
				return nil, offerdomain.ErrNotFound
			},
		},
		KYC: &kycmock.Repo{
			GetByApplicantIDFn: func(ctx context.Context, applicantID string) (*kycdomain.Profile, error) {
				if f.kycProfile == nil {
					return nil, gorm.ErrRecordNotFound
				}
				return f.kycProfile, nil
			},
		},
		Credit: &creditmock.Repo{
			GetByApplicantIDFn: func(ctx context.Context, applicantID string) (*creditdomain.Profile, error) {
				if f.creditProfile == nil {
					return nil, gorm.ErrRecordNotFound
				}
				return f.creditProfile, nil
			},
		},
		Schedules: &schedmock.Repo{
			CreateFn: func(ctx context.Context, s *scheddomain.Schedule) error {
				f.schedules = append(f.schedules, s)
				return nil
			},
			GetByApplicationIDFn: func(ctx context.Context, appID uint64) (*scheddomain.Schedule, error) {
				for _, s := range f.schedules {
					if s.ApplicationID == appID {
						return s, nil
					}
				}
				return nil, gorm.ErrRecordNotFound
			},
		},
	}

	apps := map[string]*domain.Application{app.ApplicationID: app}
	f.uc = NewUsecase(uowmock.Static(f.repo, apps), nil, 0)
	f.uc.now = testTime
	return f
}

func newApp(mutate ...func(*domain.Application)) *domain.Application {
	a := &domain.Application{
		ID:                 42,
		ApplicationID:      strings.Repeat("a", 32),
		ApplicantID:        strings.Repeat("b", 32),
		Amount:             20_000_000,
		TenorMonths:        6,
		Rate:               5,
		KYCStatus:          domain.StatusPending,
		SendStatus:         domain.StatusPending,
		ApprovalStatus:     domain.StatusPending,
		DisbursementStatus: domain.StatusPending,
	}
	for _, m := range mutate {
		m(a)
	}
	return a
}

func routed(a *domain.Application) {
	a.KYCStatus = domain.StatusCompleted
	a.SendStatus = domain.StatusCompleted
}

func approved(a *domain.Application) {
	routed(a)
	a.ApprovalStatus = domain.StatusCompleted
}
