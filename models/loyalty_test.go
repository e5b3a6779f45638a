package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		points int64
		want   LoyaltyTier
	}{
		{0, TierNone},
		{99, TierNone},
		{100, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{999, TierSilver},
		{1000, TierGold},
		{1999, TierGold},
		{2000, TierDiamond},
		{50000, TierDiamond},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForPoints(tc.points), "points=%d", tc.points)
	}
}

func TestLoyaltyInfoPointsNeeded(t *testing.T) {
	info := LoyaltyInfoFor(120)
	assert.Equal(t, TierBronze, info.Tier)
	assert.Equal(t, TierSilver, info.NextTier)
	assert.Equal(t, int64(380), info.PointsNeeded)

	top := LoyaltyInfoFor(2500)
	assert.Equal(t, TierDiamond, top.Tier)
	assert.Empty(t, top.NextTier)
}
