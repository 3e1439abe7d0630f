// Package policy maps achievement types to reward amounts and badge labels.
// The table is fixed at compile time; handing out a reward never consults
// configuration or storage.
package policy

import (
	"github.com/sundevilsync/sds-backend/internal/domain"
)

// FundingMode decides where reward tokens come from.
type FundingMode string

const (
	// FundTransfer moves existing supply from the store identity
	FundTransfer FundingMode = "transfer"
	// FundMint creates new supply directly to the recipient
	FundMint FundingMode = "mint"
)

// Reward is the policy outcome for one achievement type.
type Reward struct {
	// Amount is the reward in whole tokens
	Amount int64
	// BadgeLabel is the achievement label recorded on the minted badge
	BadgeLabel string
	// Funding selects transfer-from-store versus mint-new-supply
	Funding FundingMode
}

var table = map[domain.AchievementType]Reward{
	domain.AchievementEnrolled: {Amount: 50, BadgeLabel: "enrolled", Funding: FundTransfer},
	domain.AchievementAttended: {Amount: 100, BadgeLabel: "attended", Funding: FundTransfer},
	domain.AchievementClaim:    {Amount: 0, BadgeLabel: "", Funding: FundMint},
}

// For returns the reward policy for an achievement type. An unknown type is a
// programming defect and returns domain.ErrUnknownAchievement.
func For(achievement domain.AchievementType) (Reward, error) {
	r, ok := table[achievement]
	if !ok {
		return Reward{}, domain.ErrUnknownAchievement
	}
	return r, nil
}
