package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sundevilsync/sds-backend/internal/config"
	"github.com/sundevilsync/sds-backend/internal/domain"
)

const mockIssuer = "0xMockIssuer"

// mockGateway is the in-process stand-in for the external ledger. Badge ids
// increase monotonically and every mutation gets a fabricated 0xmock tx ref.
// Nothing survives a restart; that parity gap versus the live ledger is
// accepted for local development and tests.
type mockGateway struct {
	symbol   string
	decimals uint8

	mu       sync.Mutex
	counter  int64
	badges   map[int64]Badge
	balances map[string]int64
}

// NewMockGateway creates the in-process mock gateway
func NewMockGateway(cfg config.LedgerConfig) Gateway {
	symbol := cfg.Symbol
	if symbol == "" {
		symbol = "SDC"
	}
	return &mockGateway{
		symbol:   symbol,
		decimals: cfg.Decimals,
		badges:   make(map[int64]Badge),
		balances: make(map[string]int64),
	}
}

func (g *mockGateway) IssueBadge(_ context.Context, params IssueBadgeParams) (*MintedBadge, error) {
	if !domain.ValidWalletAddress(params.SubjectAddress) {
		return nil, domain.ErrInvalidAddress
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	tokenID := g.counter
	g.badges[tokenID] = Badge{
		TokenID:         tokenID,
		EventID:         params.EventID,
		EventName:       params.EventName,
		EventDate:       params.EventDate,
		AchievementType: params.AchievementType,
		MetadataURI:     params.MetadataURI,
		IssuedAt:        time.Now().Unix(),
		Issuer:          mockIssuer,
		Network:         "mock",
	}
	return &MintedBadge{
		TokenID: tokenID,
		TxHash:  fmt.Sprintf("0xmock%d", tokenID),
		Network: "mock",
	}, nil
}

func (g *mockGateway) GetBadge(_ context.Context, tokenID int64) (*Badge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	badge, ok := g.badges[tokenID]
	if !ok {
		return nil, domain.ErrBadgeNotFound
	}
	return &badge, nil
}

func (g *mockGateway) TransferReward(_ context.Context, to string, amount int64) (*TransferResult, error) {
	return g.credit(to, amount)
}

func (g *mockGateway) MintReward(_ context.Context, to string, amount int64) (*TransferResult, error) {
	return g.credit(to, amount)
}

func (g *mockGateway) credit(to string, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidWalletAddress(to) {
		return nil, domain.ErrInvalidAddress
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	g.balances[to] += amount
	return &TransferResult{
		TxHash:  fmt.Sprintf("0xmock%d", g.counter),
		Network: "mock",
	}, nil
}

func (g *mockGateway) GetBalance(_ context.Context, address string) Balance {
	if !domain.ValidWalletAddress(address) {
		return Balance{Symbol: g.symbol, Decimals: g.decimals, Degraded: true}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return Balance{
		Amount:   g.balances[address],
		Symbol:   g.symbol,
		Decimals: g.decimals,
	}
}

func (g *mockGateway) NetworkLabel() string {
	return "mock"
}

func (g *mockGateway) IsConfigured() bool {
	return true
}

func (g *mockGateway) UsesMock() bool {
	return true
}

func (g *mockGateway) Close() {}
