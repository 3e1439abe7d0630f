package ledger

import (
	"context"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/config"
)

// IssueBadgeParams carries everything the badge contract needs to mint an
// achievement badge.
type IssueBadgeParams struct {
	// SubjectAddress is the wallet the badge is minted to
	SubjectAddress string
	EventID        int64
	EventName      string
	EventDate      string
	// AchievementType is the policy badge label, e.g. "enrolled"
	AchievementType string
	MetadataURI     string
}

// MintedBadge is the result of a successful badge mint.
type MintedBadge struct {
	TokenID int64
	TxHash  string
	Network string
}

// Badge is a badge record as reported by the external ledger.
type Badge struct {
	TokenID         int64
	EventID         int64
	EventName       string
	EventDate       string
	AchievementType string
	MetadataURI     string
	IssuedAt        int64
	Issuer          string
	Network         string
}

// TransferResult is the outcome of a reward transfer or mint.
type TransferResult struct {
	TxHash  string
	Network string
}

// Balance is a token balance read. When the ledger read fails, Amount is zero
// and Degraded is set instead of returning an error; callers must check the
// flag.
type Balance struct {
	Amount   int64
	Symbol   string
	Decimals uint8
	Degraded bool
}

// Gateway abstracts the external token and badge ledger. Mutating calls block
// until the ledger confirms (or definitively fails); they never retry
// internally, so a caller that saw an error knows no side effect will appear
// later.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// IssueBadge mints an achievement badge to the subject address
	IssueBadge(ctx context.Context, params IssueBadgeParams) (*MintedBadge, error)
	// GetBadge retrieves a badge by its token id
	GetBadge(ctx context.Context, tokenID int64) (*Badge, error)
	// TransferReward moves amount reward tokens from the store identity to
	// the recipient
	TransferReward(ctx context.Context, to string, amount int64) (*TransferResult, error)
	// MintReward mints amount new reward tokens to the recipient
	MintReward(ctx context.Context, to string, amount int64) (*TransferResult, error)
	// GetBalance reads the recipient's reward token balance
	GetBalance(ctx context.Context, address string) Balance
	// NetworkLabel identifies the connected ledger network
	NetworkLabel() string
	// IsConfigured reports whether the gateway can submit transactions
	IsConfigured() bool
	// UsesMock reports whether this is the in-process mock
	UsesMock() bool
	// Close releases the underlying connection
	Close()
}

// NewGateway builds the gateway variant the configuration asks for. The
// choice is made once here; nothing switches between live and mock at
// runtime.
func NewGateway(ctx context.Context, cfg config.LedgerConfig, dialer adapter.EthClientDialer, clock adapter.Clock) (Gateway, error) {
	if cfg.UsesMockLedger() {
		return NewMockGateway(cfg), nil
	}

	client, err := dialer.Dial(ctx, cfg.RPCURL)
	if err != nil {
		return nil, err
	}
	return NewLiveGateway(cfg, client, clock)
}
