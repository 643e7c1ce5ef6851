package booking

import (
	"sort"
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

type RefundTier struct {
	MinDays int
	Percent int
}

// RefundPolicy maps calendar days before check-in to a refund percentage.
// Tiers are checked from the longest notice down; no matching tier means no refund.
type RefundPolicy struct {
	tiers []RefundTier
}

func NewRefundPolicy(tiers ...RefundTier) RefundPolicy {
	sorted := make([]RefundTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinDays > sorted[j].MinDays })
	return RefundPolicy{tiers: sorted}
}

// NewTieredRefundPolicy builds the platform policy: full refund with fullDays notice,
// partialPercent with partialDays notice, nothing below that.
func NewTieredRefundPolicy(fullDays, partialDays, partialPercent int) RefundPolicy {
	return NewRefundPolicy(
		RefundTier{MinDays: fullDays, Percent: 100},
		RefundTier{MinDays: partialDays, Percent: partialPercent},
	)
}

func (p RefundPolicy) Percent(daysUntilCheckIn int) int {
	for _, t := range p.tiers {
		if daysUntilCheckIn >= t.MinDays {
			return t.Percent
		}
	}
	return 0
}

func (p RefundPolicy) Tiers() []RefundTier { return p.tiers }

// RefundFor returns the refund for a paid booking canceled at now.
func (p RefundPolicy) RefundFor(total int64, checkIn, now time.Time) int64 {
	pct := p.Percent(calendar.NightsBetween(now, checkIn))
	if pct <= 0 || total <= 0 {
		return 0
	}
	return decimal.NewFromInt(total).Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)).Round(0).IntPart()
}
