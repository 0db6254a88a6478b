package domain

import "fmt"

// PlanTier is a named subscription level.
type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPlus PlanTier = "plus"
	PlanPro  PlanTier = "pro"
)

// AllPlans lists every tier in ascending order of quota.
var AllPlans = []PlanTier{PlanFree, PlanPlus, PlanPro}

// PlanLimits describes what a tier entitles a user to.
type PlanLimits struct {
	DailyWords int      `json:"dailyWords"`
	Features   []string `json:"features"`
	Price      int      `json:"price"`
	Name       string   `json:"name"`
}

// planRegistry maps every tier to its quota and feature set. Defined at
// build time; ValidateRegistry is run at startup so a missing entry fails
// the process, never a request.
var planRegistry = map[PlanTier]PlanLimits{
	PlanFree: {
		DailyWords: 1500,
		Features:   []string{"basic"},
		Price:      0,
		Name:       "Free",
	},
	PlanPlus: {
		DailyWords: 15000,
		Features:   []string{"allTones", "allActions", "explain"},
		Price:      5,
		Name:       "Plus",
	},
	PlanPro: {
		DailyWords: 60000,
		Features:   []string{"priority", "all"},
		Price:      10,
		Name:       "Pro",
	},
}

// LimitsFor returns the limits for a tier. Unknown tiers fall back to free.
func LimitsFor(tier PlanTier) PlanLimits {
	if limits, ok := planRegistry[tier]; ok {
		return limits
	}
	return planRegistry[PlanFree]
}

// ParsePlan normalizes a stored plan string. Unknown values map to free.
func ParsePlan(s string) PlanTier {
	switch PlanTier(s) {
	case PlanPlus:
		return PlanPlus
	case PlanPro:
		return PlanPro
	default:
		return PlanFree
	}
}

// ValidateRegistry checks that every enumerated tier has an entry and that
// quotas are strictly increasing across free < plus < pro.
func ValidateRegistry() error {
	prev := 0
	for _, tier := range AllPlans {
		limits, ok := planRegistry[tier]
		if !ok {
			return fmt.Errorf("plan registry missing entry for %q", tier)
		}
		if limits.DailyWords <= prev {
			return fmt.Errorf("plan registry quota for %q (%d) must exceed previous tier (%d)", tier, limits.DailyWords, prev)
		}
		prev = limits.DailyWords
	}
	return nil
}
