package models

// Loyalty tiers are a pure function of accumulated points.
// Points accrue at 1 point per 100 rupees spent.

type LoyaltyTier string

const (
	TierNone    LoyaltyTier = "none"
	TierBronze  LoyaltyTier = "bronze"
	TierSilver  LoyaltyTier = "silver"
	TierGold    LoyaltyTier = "gold"
	TierDiamond LoyaltyTier = "diamond"
)

func TierForPoints(points int64) LoyaltyTier {
	switch {
	case points >= 2000:
		return TierDiamond
	case points >= 1000:
		return TierGold
	case points >= 500:
		return TierSilver
	case points >= 100:
		return TierBronze
	default:
		return TierNone
	}
}

type LoyaltyInfo struct {
	Tier         LoyaltyTier `json:"tier"`
	Name         string      `json:"name"`
	NextTier     LoyaltyTier `json:"next_tier,omitempty"`
	PointsNeeded int64       `json:"points_needed"`
	MinPoints    int64       `json:"min_points"`
}

func LoyaltyInfoFor(points int64) LoyaltyInfo {
	switch TierForPoints(points) {
	case TierDiamond:
		return LoyaltyInfo{Tier: TierDiamond, Name: "Diamond Member", MinPoints: 2000}
	case TierGold:
		return LoyaltyInfo{Tier: TierGold, Name: "Gold Member", NextTier: TierDiamond, PointsNeeded: 2000 - points, MinPoints: 1000}
	case TierSilver:
		return LoyaltyInfo{Tier: TierSilver, Name: "Silver Member", NextTier: TierGold, PointsNeeded: 1000 - points, MinPoints: 500}
	case TierBronze:
		return LoyaltyInfo{Tier: TierBronze, Name: "Bronze Member", NextTier: TierSilver, PointsNeeded: 500 - points, MinPoints: 100}
	default:
		return LoyaltyInfo{Tier: TierNone, Name: "No Tier", NextTier: TierBronze, PointsNeeded: 100 - points, MinPoints: 0}
	}
}
