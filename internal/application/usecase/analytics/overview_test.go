package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finsight/backend/internal/domain/entity"
)

type stubIncomeRepo struct {
	incomes []*entity.IncomeEntry
	calls   int
}

func (r *stubIncomeRepo) Create(_ context.Context, _ *entity.IncomeEntry) error { return nil }

func (r *stubIncomeRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *stubIncomeRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.IncomeEntry, error) {
	r.calls++
	return r.incomes, nil
}

type stubExpenseRepo struct {
	expenses []*entity.ExpenseEntry
}

func (r *stubExpenseRepo) Create(_ context.Context, _ *entity.ExpenseEntry) error { return nil }

func (r *stubExpenseRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *stubExpenseRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.ExpenseEntry, error) {
	return r.expenses, nil
}

type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, userID uuid.UUID, monthKey string) ([]byte, bool) {
	payload, ok := c.entries[userID.String()+monthKey]
	return payload, ok
}

func (c *memoryCache) Set(_ context.Context, userID uuid.UUID, monthKey string, payload []byte) error {
	c.sets++
	c.entries[userID.String()+monthKey] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	for key := range c.entries {
		if len(key) >= 36 && key[:36] == userID.String() {
			delete(c.entries, key)
		}
	}
	return nil
}

func TestGetOverviewComputesAllViews(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.January),
		income(t, 50000, 2025, time.February),
		income(t, 50000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 20000, entity.CategoryBills, 2025, time.January),
		expense(t, 45000, entity.CategoryShopping, 2025, time.February),
		expense(t, 20000, entity.CategoryFood, 2025, time.March),
	}

	uc := NewGetOverviewUseCase(&stubIncomeRepo{incomes: incomes}, &stubExpenseRepo{expenses: expenses}, nil)
	overview, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, AsOf: asOf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(overview.Monthly) != 12 {
		t.Errorf("expected 12 monthly aggregates, got %d", len(overview.Monthly))
	}
	if len(overview.Categories) != 3 {
		t.Errorf("expected 3 category summaries, got %d", len(overview.Categories))
	}
	if overview.HealthScore.Score < 0 || overview.HealthScore.Score > 100 {
		t.Errorf("expected health score in range, got %d", overview.HealthScore.Score)
	}
	if len(overview.Insights) == 0 {
		t.Error("expected insights in the overview")
	}
	if !overview.AsOf.Equal(asOf) {
		t.Errorf("expected asOf %s, got %s", asOf, overview.AsOf)
	}
}

func TestGetOverviewUsesCache(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	incomeRepo := &stubIncomeRepo{incomes: []*entity.IncomeEntry{income(t, 50000, 2025, time.March)}}
	expenseRepo := &stubExpenseRepo{}
	cache := newMemoryCache()

	uc := NewGetOverviewUseCase(incomeRepo, expenseRepo, cache)

	first, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, AsOf: asOf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.sets)
	}

	second, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, AsOf: asOf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if incomeRepo.calls != 1 {
		t.Errorf("expected the second call to be served from cache, repo calls %d", incomeRepo.calls)
	}
	if !second.Yearly.TotalIncome.Equal(first.Yearly.TotalIncome) {
		t.Errorf("expected identical cached overview, got income %s vs %s", second.Yearly.TotalIncome, first.Yearly.TotalIncome)
	}
}

func TestGetOverviewIgnoresCorruptCache(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	incomeRepo := &stubIncomeRepo{incomes: []*entity.IncomeEntry{income(t, 50000, 2025, time.March)}}
	cache := newMemoryCache()
	cache.entries[userID.String()+asOf.Format("2006-01")] = []byte("{not json")

	uc := NewGetOverviewUseCase(incomeRepo, &stubExpenseRepo{}, cache)
	overview, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, AsOf: asOf})
	if err != nil {
		t.Fatalf("expected corrupt cache to fall back to recompute, got %v", err)
	}
	if incomeRepo.calls != 1 {
		t.Errorf("expected a repository read, got %d calls", incomeRepo.calls)
	}
	if overview == nil || len(overview.Monthly) != 12 {
		t.Error("expected a recomputed overview")
	}
}

func TestOverviewJSONRoundTrip(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{income(t, 50000, 2025, time.March)}
	expenses := []*entity.ExpenseEntry{expense(t, 20000, entity.CategoryFood, 2025, time.March)}

	overview := ComputeOverview(incomes, expenses, asOf)

	payload, err := json.Marshal(overview)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded Overview
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Yearly.TotalIncome.Equal(overview.Yearly.TotalIncome) {
		t.Errorf("expected total income to survive the round trip, got %s", decoded.Yearly.TotalIncome)
	}
	if decoded.HealthScore.Score != overview.HealthScore.Score {
		t.Errorf("expected health score to survive the round trip, got %d", decoded.HealthScore.Score)
	}
}
