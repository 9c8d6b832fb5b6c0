package lifecycle

import (
	"context"
	"errors"
	"testing"

	domain "lenddesk-backend/internal/domain/application"
	scheddomain "lenddesk-backend/internal/domain/schedule"
)

func disbursedFixture(t *testing.T) (*fixture, *domain.Application) {
	t.Helper()
	app := newApp(approved)
	f := newFixture(app)
	lockTerms(f, 20_000_000, 6)
	if _, err := f.uc.Disburse(context.Background(), app.ApplicationID); err != nil {
		t.Fatalf("Disburse: %v", err)
	}
	return f, app
}

func TestRecordPayment_Success(t *testing.T) {
	f, app := disbursedFixture(t)

	dto, err := f.uc.RecordPayment(context.Background(), app.ApplicationID, 1)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if !dto.Installment.Paid || dto.Installment.PaidAt == nil {
		t.Fatalf("installment not settled: %+v", dto.Installment)
	}
	if dto.Outstanding != 5 {
		t.Fatalf("outstanding = %d, want 5", dto.Outstanding)
	}
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	f, app := disbursedFixture(t)

	if _, err := f.uc.RecordPayment(context.Background(), app.ApplicationID, 2); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	_, err := f.uc.RecordPayment(context.Background(), app.ApplicationID, 2)
	if !errors.Is(err, scheddomain.ErrAlreadyPaid) {
		t.Fatalf("err = %v, want ErrAlreadyPaid", err)
	}
}

func TestRecordPayment_UnknownInstallment(t *testing.T) {
	f, app := disbursedFixture(t)

	_, err := f.uc.RecordPayment(context.Background(), app.ApplicationID, 99)
	if !errors.Is(err, scheddomain.ErrUnknownInstallment) {
		t.Fatalf("err = %v, want ErrUnknownInstallment", err)
	}
}

func TestRecordPayment_BeforeDisbursementIsIllegal(t *testing.T) {
	app := newApp(approved)
	f := newFixture(app)

	_, err := f.uc.RecordPayment(context.Background(), app.ApplicationID, 1)
	if !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("err = %v, want ErrIllegalTransition", err)
	}
}
