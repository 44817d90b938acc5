package planner

import (
	"math"
	"testing"

	"github.com/finsight/backend/internal/domain/entity"
)

func testProfile() entity.FinancialProfile {
	return entity.FinancialProfile{
		MonthlyIncome:   60000,
		MonthlyExpenses: 30000,
		MonthlyBills:    5000,
		ExistingSavings: 50000,
		ExtraSaving:     5000,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCalculateEMIZeroInterest(t *testing.T) {
	profile := testProfile()
	details := entity.PurchaseDetails{
		Price:        120000,
		Mode:         entity.ModeInstallment,
		TenureMonths: 12,
		AnnualRate:   0,
	}

	emi := CalculateEMI(profile, details)

	if !almostEqual(emi.MonthlyPayment, 10000) {
		t.Errorf("expected monthly payment 10000, got %f", emi.MonthlyPayment)
	}
	if !almostEqual(emi.TotalInterest, 0) {
		t.Errorf("expected zero interest, got %f", emi.TotalInterest)
	}
	if !almostEqual(emi.DisposableIncome, 25000) {
		t.Errorf("expected disposable income 25000, got %f", emi.DisposableIncome)
	}
	if !almostEqual(emi.BurdenPercent, 40) {
		t.Errorf("expected burden 40, got %f", emi.BurdenPercent)
	}
	if emi.IsAffordable {
		t.Error("a burden of exactly 40% must not count as affordable")
	}
}

func TestCalculateEMIWithInterest(t *testing.T) {
	profile := testProfile()
	details := entity.PurchaseDetails{
		Price:        120000,
		Mode:         entity.ModeInstallment,
		TenureMonths: 12,
		AnnualRate:   12,
	}

	emi := CalculateEMI(profile, details)

	// Standard amortization at 1% monthly over 12 months.
	if emi.MonthlyPayment <= 10000 {
		t.Errorf("expected payment above the zero-interest baseline, got %f", emi.MonthlyPayment)
	}
	if emi.TotalInterest <= 0 {
		t.Errorf("expected positive total interest, got %f", emi.TotalInterest)
	}
	if !almostEqual(emi.TotalPaid, emi.MonthlyPayment*12+details.DownPayment) {
		t.Errorf("expected total paid to equal payment*tenure+down, got %f", emi.TotalPaid)
	}
}

func TestCalculateEMIDownPayment(t *testing.T) {
	profile := testProfile()
	details := entity.PurchaseDetails{
		Price:        120000,
		Mode:         entity.ModeInstallment,
		DownPayment:  60000,
		TenureMonths: 12,
		AnnualRate:   0,
	}

	emi := CalculateEMI(profile, details)

	if !almostEqual(emi.Principal, 60000) {
		t.Errorf("expected principal 60000, got %f", emi.Principal)
	}
	if !almostEqual(emi.MonthlyPayment, 5000) {
		t.Errorf("expected monthly payment 5000, got %f", emi.MonthlyPayment)
	}
	if !emi.IsAffordable {
		t.Error("expected a 20% burden to be affordable")
	}
}

func TestCalculateEMINonPositiveDisposableIncome(t *testing.T) {
	profile := entity.FinancialProfile{
		MonthlyIncome:   20000,
		MonthlyExpenses: 20000,
	}
	details := entity.PurchaseDetails{
		Price:        50000,
		Mode:         entity.ModeInstallment,
		TenureMonths: 10,
	}

	emi := CalculateEMI(profile, details)

	if emi.BurdenPercent != 100 {
		t.Errorf("expected burden pinned at 100, got %f", emi.BurdenPercent)
	}
	if emi.IsAffordable {
		t.Error("expected not affordable with no disposable income")
	}
}

func TestCalculateEMIDownPaymentCoversPrice(t *testing.T) {
	profile := testProfile()
	details := entity.PurchaseDetails{
		Price:        50000,
		Mode:         entity.ModeInstallment,
		DownPayment:  50000,
		TenureMonths: 12,
		AnnualRate:   10,
	}

	emi := CalculateEMI(profile, details)

	if emi.Principal != 0 {
		t.Errorf("expected zero principal, got %f", emi.Principal)
	}
	if emi.MonthlyPayment != 0 {
		t.Errorf("expected zero payment, got %f", emi.MonthlyPayment)
	}
	if emi.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %f", emi.TotalInterest)
	}
}
