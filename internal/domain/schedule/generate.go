package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalRepayable is principal plus flat interest, in minor units:
// principal * (1 + rate/100). Computed through decimal so fractional rates
// (e.g. 5.5%) round once, half-up, instead of drifting through float math.
func TotalRepayable(principal int64, ratePct float64) int64 {
	p := decimal.NewFromInt(principal)
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(ratePct).Div(decimal.NewFromInt(100)))
	return p.Mul(factor).Round(0).IntPart()
}

// Generate materializes the installment plan for a disbursement. The total
// is split evenly across the tenor; remainder units go to the final
// installment so the sum is exact. Due date of installment k is the start
// date plus k calendar months (AddDate, not k*30 days), so schedules do not
// drift across months of different lengths.
func Generate(principal int64, tenorMonths int, start time.Time, ratePct float64) []Installment {
	if tenorMonths <= 0 {
		return nil
	}
	total := TotalRepayable(principal, ratePct)
	per := total / int64(tenorMonths)
	last := total - per*int64(tenorMonths-1)

	out := make([]Installment, 0, tenorMonths)
	for k := 1; k <= tenorMonths; k++ {
		amt := per
		if k == tenorMonths {
			amt = last
		}
		out = append(out, Installment{
			InstallmentID: uuid.New(),
			Seq:           k,
			DueDate:       start.UTC().AddDate(0, k, 0),
			Amount:        amt,
		})
	}
	return out
}

// OverdueReport is the derived temporal view of a schedule at some instant.
// It is pure: safe to recompute concurrently on every read.
type OverdueReport struct {
	OverdueCount   int          `json:"overdue_count"`
	MaxDaysOverdue int          `json:"max_days_overdue"`
	NextDue        *Installment `json:"next_due,omitempty"`
}

// Overdue classifies every installment against `now`. NextDue is the
// earliest unpaid installment not yet due; nil when everything is paid or
// everything unpaid is already overdue.
func Overdue(s *Schedule, now time.Time) OverdueReport {
	var rep OverdueReport
	for idx := range s.Installments {
		ins := &s.Installments[idx]
		if ins.Paid {
			continue
		}
		if ins.Overdue(now) {
			rep.OverdueCount++
			if d := ins.DaysOverdue(now); d > rep.MaxDaysOverdue {
				rep.MaxDaysOverdue = d
			}
			continue
		}
		if rep.NextDue == nil || ins.DueDate.Before(rep.NextDue.DueDate) {
			rep.NextDue = ins
		}
	}
	return rep
}

// MarkPaid settles one installment by sequence number.
func MarkPaid(s *Schedule, seq int, paidAt time.Time) (*Installment, error) {
	if seq < 1 || seq > len(s.Installments) {
		return nil, ErrUnknownInstallment
	}
	for idx := range s.Installments {
		ins := &s.Installments[idx]
		if ins.Seq != seq {
			continue
		}
		if ins.Paid {
			return nil, ErrAlreadyPaid
		}
		ins.Paid = true
		at := paidAt.UTC()
		ins.PaidAt = &at
		return ins, nil
	}
	return nil, ErrUnknownInstallment
}
