package domain

import (
	"testing"
	"time"
)

func TestValidateRegistry(t *testing.T) {
	if err := ValidateRegistry(); err != nil {
		t.Fatalf("Expected valid registry, got %v", err)
	}
}

func TestLimitsFor(t *testing.T) {
	cases := []struct {
		tier      PlanTier
		wantWords int
		wantPrice int
	}{
		{PlanFree, 1500, 0},
		{PlanPlus, 15000, 5},
		{PlanPro, 60000, 10},
		{PlanTier("enterprise"), 1500, 0}, // unknown falls back to free
	}

	for _, c := range cases {
		limits := LimitsFor(c.tier)
		if limits.DailyWords != c.wantWords {
			t.Errorf("LimitsFor(%s).DailyWords = %d, want %d", c.tier, limits.DailyWords, c.wantWords)
		}
		if limits.Price != c.wantPrice {
			t.Errorf("LimitsFor(%s).Price = %d, want %d", c.tier, limits.Price, c.wantPrice)
		}
	}
}

func TestQuotasStrictlyIncreasing(t *testing.T) {
	prev := -1
	for _, tier := range AllPlans {
		words := LimitsFor(tier).DailyWords
		if words <= prev {
			t.Errorf("Quota for %s (%d) should exceed previous tier (%d)", tier, words, prev)
		}
		prev = words
	}
}

func TestParsePlan(t *testing.T) {
	cases := []struct {
		in   string
		want PlanTier
	}{
		{"free", PlanFree},
		{"plus", PlanPlus},
		{"pro", PlanPro},
		{"", PlanFree},
		{"unknown", PlanFree},
		{"PLUS", PlanFree}, // stored values are lowercase
	}

	for _, c := range cases {
		if got := ParsePlan(c.in); got != c.want {
			t.Errorf("ParsePlan(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestUsageDay(t *testing.T) {
	// Day keys are UTC regardless of the wall clock's zone.
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, 3, 10, 22, 30, 0, 0, loc) // 03:30 next day UTC

	if got := UsageDay(local); got != "2026-03-11" {
		t.Errorf("UsageDay = %s, want 2026-03-11", got)
	}

	utc := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	if got := UsageDay(utc); got != "2026-03-10" {
		t.Errorf("UsageDay = %s, want 2026-03-10", got)
	}
}
