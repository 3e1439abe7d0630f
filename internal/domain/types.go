package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Role represents an account's authorization level
type Role string

const (
	// RoleStudent is the default role for registered accounts
	RoleStudent Role = "student"
	// RoleVerifier can confirm attendance and mint attended badges
	RoleVerifier Role = "verifier"
	// RoleAdmin has full access, including manual badge minting and reward distribution
	RoleAdmin Role = "admin"
)

// AchievementType categorizes an accomplishment and drives the reward policy
type AchievementType string

const (
	// AchievementEnrolled is granted when a student reserves a seat for an event
	AchievementEnrolled AchievementType = "enrolled"
	// AchievementAttended is granted when a verifier confirms attendance
	AchievementAttended AchievementType = "attended"
	// AchievementClaim covers claiming cached off-chain balance to the linked wallet
	AchievementClaim AchievementType = "claim"
)

// ConversionStatus tracks the lifecycle of a conversion or claim request.
// Statuses only advance; a row never transitions backward.
type ConversionStatus string

const (
	ConversionPending    ConversionStatus = "pending"
	ConversionProcessing ConversionStatus = "processing"
	ConversionCompleted  ConversionStatus = "completed"
	ConversionFailed     ConversionStatus = "failed"
)

// ConversionKind distinguishes native-currency conversions from reward claims
type ConversionKind string

const (
	// KindConversion sends native currency to an arbitrary destination address
	KindConversion ConversionKind = "conversion"
	// KindClaim mints reward tokens to the caller's own linked wallet
	KindClaim ConversionKind = "claim"
)

// SubOutcome reports the result of one best-effort sub-operation of a
// reconciliation step, so callers can distinguish "enrolled, badge pending"
// from total failure.
type SubOutcome string

const (
	// OutcomeSucceeded means the sub-operation completed with a ledger reference
	OutcomeSucceeded SubOutcome = "succeeded"
	// OutcomeSkipped means a previous invocation already produced the effect
	OutcomeSkipped SubOutcome = "skipped-already-done"
	// OutcomeFailed means the external call failed; re-issuing the domain
	// trigger is the only retry path
	OutcomeFailed SubOutcome = "failed-will-not-retry-automatically"
)

// ValidWalletAddress reports whether s is a well-formed external ledger
// address (0x prefix followed by 40 hex characters).
func ValidWalletAddress(s string) bool {
	if len(s) != 42 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	return common.IsHexAddress(s)
}

// ToBaseUnits scales a whole-token amount into the ledger's fixed-point
// base-unit representation (amount * 10^decimals).
func ToBaseUnits(amount int64, decimals uint8) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Mul(big.NewInt(amount), scale)
}

// FromBaseUnits truncates a base-unit value back to whole tokens.
func FromBaseUnits(v *big.Int, decimals uint8) int64 {
	if v == nil {
		return 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Div(v, scale).Int64()
}
