package lifecycle

import (
	"context"
	"testing"
	"time"

	domain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/kyc"
)

func TestView_FreshApplication(t *testing.T) {
	app := newApp()
	f := newFixture(app)

	dto, err := f.uc.View(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if dto.KYCStatus != string(domain.StatusPending) {
		t.Fatalf("kycStatus = %s, want pending", dto.KYCStatus)
	}
	if len(dto.MissingGateFields) != len(kyc.AllFields()) {
		t.Fatalf("missing gate fields = %v, want all", dto.MissingGateFields)
	}
	if dto.Schedule != nil || dto.OverdueSummary != nil || dto.CurrentTerms != nil {
		t.Fatalf("fresh application exposes derived sections: %+v", dto)
	}
}

func TestView_DisbursedWithOverdue(t *testing.T) {
	f, app := disbursedFixture(t)

	// 40 days past the first due date (disbursed at testTime, first due one
	// month later)
	firstDue := testTime().AddDate(0, 1, 0)
	f.uc.now = func() time.Time { return firstDue.AddDate(0, 0, 40) }

	dto, err := f.uc.View(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if dto.Schedule == nil || len(dto.Schedule.Installments) != 6 {
		t.Fatalf("schedule missing from view: %+v", dto.Schedule)
	}
	if dto.OverdueSummary == nil {
		t.Fatalf("overdue summary missing")
	}
	if dto.OverdueSummary.OverdueCount < 1 {
		t.Fatalf("overdueCount = %d, want >= 1", dto.OverdueSummary.OverdueCount)
	}
	if dto.OverdueSummary.MaxDaysOverdue != 40 {
		t.Fatalf("maxDaysOverdue = %d, want 40", dto.OverdueSummary.MaxDaysOverdue)
	}
	if dto.CurrentTerms == nil {
		t.Fatalf("current terms missing after approval")
	}
}

func TestView_RoutedShowsPartner(t *testing.T) {
	app := newApp()
	f := newFixture(app)
	f.kycProfile = completeProfile(app.ApplicantID)

	if _, err := f.uc.SubmitToPartner(context.Background(), app.ApplicationID, "p-001"); err != nil {
		t.Fatalf("SubmitToPartner: %v", err)
	}

	dto, err := f.uc.View(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if dto.RoutedPartner == nil {
		t.Fatalf("routed partner missing from view")
	}
	if dto.RoutedPartner.PartnerID != "p-001" || dto.RoutedPartner.Name != "FirstFund" {
		t.Fatalf("routed partner = %+v", dto.RoutedPartner)
	}
	if !dto.RoutedPartner.RoutedAt.Equal(testTime()) {
		t.Fatalf("routedAt = %v, want %v", dto.RoutedPartner.RoutedAt, testTime())
	}
}

func TestView_CounterPendingShowsFloor(t *testing.T) {
	app := newApp(routed)
	f := newFixture(app)

	if _, err := f.uc.RecordDecision(context.Background(), DecisionInput{
		ApplicationID: app.ApplicationID,
		Decision:      DecisionCounterOffered,
		MinDeposit:    int64p(150_000),
		MinTenor:      intp(3),
	}); err != nil {
		t.Fatalf("counter-offer: %v", err)
	}

	dto, err := f.uc.View(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !dto.CounterPending || dto.FloorTerms == nil {
		t.Fatalf("floor terms missing: %+v", dto)
	}
	if dto.FloorTerms.MinDeposit == nil || *dto.FloorTerms.MinDeposit != 150_000 {
		t.Fatalf("floor minDeposit = %v, want 150000", dto.FloorTerms.MinDeposit)
	}
}
