package reconcile

import (
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/ledger"
)

// SubResult reports one best-effort sub-operation of a larger domain
// operation. Callers use it to tell "enrolled, badge minted" apart from
// "enrolled, badge failed".
type SubResult struct {
	Outcome domain.SubOutcome `json:"outcome"`
	TokenID *int64            `json:"token_id,omitempty"`
	TxHash  string            `json:"tx_hash,omitempty"`
	Amount  int64             `json:"amount,omitempty"`
	Reason  string            `json:"reason,omitempty"`
}

// EnrollResult is the outcome of an enroll toggle.
type EnrollResult struct {
	// Enrolled is false when the call toggled an existing enrollment off
	Enrolled       bool  `json:"enrolled"`
	EventID        int64 `json:"event_id"`
	SeatsAvailable int64 `json:"seats_available"`
	// Badge and Reward are nil on the cancellation arm
	Badge  *SubResult `json:"badge,omitempty"`
	Reward *SubResult `json:"reward,omitempty"`
}

// AttendanceResult is the outcome of an attendance confirmation.
type AttendanceResult struct {
	// TokenID is the attended badge's ledger token id when minted
	TokenID *int64 `json:"token_id,omitempty"`
	// AlreadyMinted is set when a previous confirmation already produced
	// the badge; TokenID then carries the existing id
	AlreadyMinted bool       `json:"already_minted"`
	Badge         *SubResult `json:"badge,omitempty"`
	Reward        *SubResult `json:"reward,omitempty"`
}

// ManualMintResult is the outcome of an admin-initiated badge mint.
type ManualMintResult struct {
	// TokenID is the badge's ledger token id when the mint landed
	TokenID *int64     `json:"token_id,omitempty"`
	Badge   *SubResult `json:"badge,omitempty"`
	Reward  *SubResult `json:"reward,omitempty"`
}

// ConversionResult is the outcome of a conversion or claim request. A failed
// external transfer is reported here, not as an error: the request row is the
// durable evidence and the caller is expected to retry with a new request.
type ConversionResult struct {
	Reference      string                  `json:"reference"`
	Status         domain.ConversionStatus `json:"status"`
	SDCAmount      int64                   `json:"sdc_amount"`
	ExternalAmount int64                   `json:"external_amount,omitempty"`
	TxHash         string                  `json:"tx_hash,omitempty"`
	FailureReason  string                  `json:"failure_reason,omitempty"`
}

// BalanceResult combines the cached off-chain balance with a best-effort
// on-chain read. OnChain is nil when the account has no linked wallet.
type BalanceResult struct {
	AccountID int64           `json:"account_id"`
	OffChain  int64           `json:"off_chain"`
	OnChain   *ledger.Balance `json:"on_chain,omitempty"`
}

// GatewayStatus describes the ledger gateway the engine was built with.
type GatewayStatus struct {
	Configured bool   `json:"configured"`
	Mock       bool   `json:"mock"`
	Network    string `json:"network"`
}

// DistributionItem is one recipient in a reward distribution.
type DistributionItem struct {
	Wallet      string `json:"wallet"`
	Amount      int64  `json:"amount"`
	RewardType  string `json:"reward_type,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
}

// DistributionResult is the per-recipient outcome of a distribution.
type DistributionResult struct {
	Wallet      string            `json:"wallet"`
	Amount      int64             `json:"amount"`
	ReferenceID string            `json:"reference_id,omitempty"`
	Outcome     domain.SubOutcome `json:"outcome"`
	TxHash      string            `json:"tx_hash,omitempty"`
	Reason      string            `json:"reason,omitempty"`
}
