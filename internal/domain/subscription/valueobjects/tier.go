package valueobjects

import "fmt"

type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

var validTiers = map[Tier]bool{
	TierFree:       true,
	TierPro:        true,
	TierEnterprise: true,
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return validTiers[t]
}

func (t Tier) IsPaid() bool {
	return t == TierPro || t == TierEnterprise
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s", s)
	}
	return t, nil
}
