package lifecycle

import (
	"context"
	"errors"
	"testing"

	domain "lenddesk-backend/internal/domain/application"
	creditdomain "lenddesk-backend/internal/domain/credit"
	offerdomain "lenddesk-backend/internal/domain/offer"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestRecordDecision_ApproveLocksTerms(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)
	f.creditProfile = &creditdomain.Profile{ApplicantID: app.ApplicantID, Score: 80}

	dto, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        20_000_000,
		TenorMonths:   6,
	})
	if err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if app.ApprovalStatus != domain.StatusCompleted {
		t.Fatalf("approvalStatus = %s, want completed", app.ApprovalStatus)
	}
	if dto.Terms == nil || dto.Terms.Kind != string(offerdomain.KindOffer) {
		t.Fatalf("terms = %+v, want locked offer", dto.Terms)
	}
	// 21,000,000 / 6
	if dto.Terms.MonthlyPayment != 3_500_000 {
		t.Fatalf("monthlyPayment = %d, want 3500000", dto.Terms.MonthlyPayment)
	}
	if len(f.offers) != 1 {
		t.Fatalf("offer rows = %d, want 1 (append-only)", len(f.offers))
	}
}

func TestRecordDecision_ApproveExceedsLimit(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)
	// score 25 → tier 2 limit 10,000,000
	f.creditProfile = &creditdomain.Profile{ApplicantID: app.ApplicantID, Score: 25}

	_, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        20_000_000,
		TenorMonths:   6,
	})
	if !errors.Is(err, domain.ErrExceedsLimit) {
		t.Fatalf("err = %v, want ErrExceedsLimit", err)
	}
	if app.ApprovalStatus != domain.StatusPending {
		t.Fatalf("approvalStatus mutated on failed approve")
	}
	if len(f.offers) != 0 {
		t.Fatalf("offer rows = %d, want 0", len(f.offers))
	}
}

func TestRecordDecision_UnscoredApplicantGetsFloorLimit(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app) // no credit profile: limit 0

	_, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        1,
		TenorMonths:   6,
	})
	if !errors.Is(err, domain.ErrExceedsLimit) {
		t.Fatalf("err = %v, want ErrExceedsLimit for unscored applicant", err)
	}
}

func TestRecordDecision_Reject(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)

	dto, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionRejected,
	})
	if err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if dto.ApprovalStatus != string(domain.StatusRejected) {
		t.Fatalf("approvalStatus = %s, want rejected", dto.ApprovalStatus)
	}

	// rejected is terminal for this routing round
	_, err = f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        1_000_000, TenorMonths: 3,
	})
	if !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("decision after reject err = %v, want ErrIllegalTransition", err)
	}
}

func TestRecordDecision_CounterOfferCycle(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)
	f.creditProfile = &creditdomain.Profile{ApplicantID: app.ApplicantID, Score: 80}

	// partner proposes floor terms: minDeposit 150,000 / minTenor 3
	dto, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionCounterOffered,
		MinDeposit:    int64p(150_000),
		MinTenor:      intp(3),
	})
	if err != nil {
		t.Fatalf("counter-offer: %v", err)
	}
	if !dto.CounterPending || dto.CounterRounds != 1 {
		t.Fatalf("counter state = %+v, want pending round 1", dto)
	}
	if app.ApprovalStatus != domain.StatusPending {
		t.Fatalf("approvalStatus = %s, want still pending", app.ApprovalStatus)
	}

	// admin offers below the floor
	_, err = f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        100_000,
		TenorMonths:   4,
	})
	if !errors.Is(err, domain.ErrInvalidTerms) {
		t.Fatalf("below-floor offer err = %v, want ErrInvalidTerms", err)
	}
	if app.ApprovalStatus != domain.StatusPending {
		t.Fatalf("approvalStatus mutated by rejected offer")
	}

	// admin offers within the floor
	dto, err = f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        160_000,
		TenorMonths:   4,
	})
	if err != nil {
		t.Fatalf("re-offer: %v", err)
	}
	if dto.ApprovalStatus != string(domain.StatusCompleted) {
		t.Fatalf("approvalStatus = %s, want completed", dto.ApprovalStatus)
	}
	if app.CounterPending {
		t.Fatalf("counterPending still set after acceptance")
	}
}

func TestRecordDecision_CounterOfferWithoutFloorTerms(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)

	_, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionCounterOffered,
	})
	if !errors.Is(err, domain.ErrInvalidTerms) {
		t.Fatalf("err = %v, want ErrInvalidTerms", err)
	}
}

func TestRecordDecision_MaxCounterRoundsForcesRejection(t *testing.T) {
	app := newApp(routed)
	app.CounterRounds = DefaultMaxCounterRounds
	f := newFixture(app)

	dto, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionCounterOffered,
		MinDeposit:    int64p(1),
	})
	if err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if dto.ApprovalStatus != string(domain.StatusRejected) {
		t.Fatalf("approvalStatus = %s, want forced rejection past round %d",
			dto.ApprovalStatus, DefaultMaxCounterRounds)
	}
	if len(f.offers) != 0 {
		t.Fatalf("floor terms stored despite forced rejection")
	}
}

func TestRecordDecision_BeforeRoutingIsIllegal(t *testing.T) {
	app := newApp()
	f := newFixture(app)

	_, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionApproved,
		Amount:        1_000_000, TenorMonths: 3,
	})
	if !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("err = %v, want ErrIllegalTransition", err)
	}
}
