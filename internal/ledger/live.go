package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/config"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/logger"
)

// rewardTokenABI covers the ERC-20 surface the gateway uses: transfer for
// policy rewards, mint for claims, balanceOf for reads
const rewardTokenABI = `[
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// badgeContractABI covers the achievement badge contract: issueBadge mints,
// totalMinted reports the id the mint produced, getBadge and tokenURI read
const badgeContractABI = `[
	{"constant":false,"inputs":[{"name":"student","type":"address"},{"name":"eventId","type":"uint256"},{"name":"eventName","type":"string"},{"name":"eventDate","type":"string"},{"name":"achievementType","type":"string"},{"name":"metadataURI","type":"string"}],"name":"issueBadge","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[],"name":"totalMinted","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getBadge","outputs":[{"name":"eventId","type":"uint256"},{"name":"eventName","type":"string"},{"name":"eventDate","type":"string"},{"name":"achievementType","type":"string"},{"name":"metadataURI","type":"string"},{"name":"issuedAt","type":"uint256"},{"name":"issuer","type":"address"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

type liveGateway struct {
	client adapter.EthClient
	clock  adapter.Clock

	key  *ecdsa.PrivateKey
	from common.Address

	chainID       *big.Int
	tokenContract common.Address
	badgeContract common.Address
	decimals      uint8
	symbol        string
	network       string
	confirmWait   time.Duration

	tokenABI abi.ABI
	badgeABI abi.ABI

	// one signing identity signs every outgoing transaction; submissions
	// are serialized so nonces are allocated and spent in order
	submitMu sync.Mutex
}

// NewLiveGateway creates a gateway backed by a real Ethereum-compatible
// ledger.
func NewLiveGateway(cfg config.LedgerConfig, client adapter.EthClient, clock adapter.Clock) (Gateway, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	tokenABI, err := abi.JSON(strings.NewReader(rewardTokenABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ABI: %w", err)
	}
	badgeABI, err := abi.JSON(strings.NewReader(badgeContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse badge ABI: %w", err)
	}

	confirmWait := cfg.ConfirmWait
	if confirmWait == 0 {
		confirmWait = 2 * time.Minute
	}
	if clock == nil {
		clock = adapter.NewClock()
	}

	return &liveGateway{
		client:        client,
		clock:         clock,
		key:           key,
		from:          crypto.PubkeyToAddress(key.PublicKey),
		chainID:       big.NewInt(cfg.ChainID),
		tokenContract: common.HexToAddress(cfg.TokenContract),
		badgeContract: common.HexToAddress(cfg.BadgeContract),
		decimals:      cfg.Decimals,
		symbol:        cfg.Symbol,
		network:       fmt.Sprintf("chain-%d", cfg.ChainID),
		confirmWait:   confirmWait,
		tokenABI:      tokenABI,
		badgeABI:      badgeABI,
	}, nil
}

func (g *liveGateway) IssueBadge(ctx context.Context, params IssueBadgeParams) (*MintedBadge, error) {
	if !domain.ValidWalletAddress(params.SubjectAddress) {
		return nil, domain.ErrInvalidAddress
	}

	data, err := g.badgeABI.Pack("issueBadge",
		common.HexToAddress(params.SubjectAddress),
		big.NewInt(params.EventID),
		params.EventName,
		params.EventDate,
		params.AchievementType,
		params.MetadataURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	txHash, receipt, err := g.submit(ctx, g.badgeContract, data)
	if err != nil {
		return nil, err
	}

	// the receipt's transfer log pins the id to this transaction; a
	// follow-up totalMinted read could observe a concurrent mint
	tokenID, ok := mintedTokenID(receipt, g.badgeContract)
	if !ok {
		tokenID, err = g.totalMinted(ctx)
		if err != nil {
			return nil, fmt.Errorf("badge minted (tx %s) but token id read failed: %w", txHash, err)
		}
	}

	return &MintedBadge{TokenID: tokenID, TxHash: txHash, Network: g.network}, nil
}

// erc721TransferTopic is the event signature hash of
// Transfer(address,address,uint256), emitted by every ERC-721 mint.
var erc721TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// mintedTokenID extracts the minted token id from the transaction's ERC-721
// transfer log.
func mintedTokenID(receipt *types.Receipt, contract common.Address) (int64, bool) {
	for _, entry := range receipt.Logs {
		if entry.Address != contract || len(entry.Topics) != 4 || entry.Topics[0] != erc721TransferTopic {
			continue
		}
		return new(big.Int).SetBytes(entry.Topics[3].Bytes()).Int64(), true
	}
	return 0, false
}

func (g *liveGateway) GetBadge(ctx context.Context, tokenID int64) (*Badge, error) {
	data, err := g.badgeABI.Pack("getBadge", big.NewInt(tokenID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := g.client.CallContract(ctx, ethereum.CallMsg{
		To:   &g.badgeContract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBadgeNotFound, err)
	}

	values, err := g.badgeABI.Unpack("getBadge", result)
	if err != nil || len(values) != 7 {
		return nil, fmt.Errorf("failed to unpack badge: %w", err)
	}

	badge := &Badge{
		TokenID: tokenID,
		Network: g.network,
	}
	if v, ok := values[0].(*big.Int); ok {
		badge.EventID = v.Int64()
	}
	badge.EventName, _ = values[1].(string)
	badge.EventDate, _ = values[2].(string)
	badge.AchievementType, _ = values[3].(string)
	badge.MetadataURI, _ = values[4].(string)
	if v, ok := values[5].(*big.Int); ok {
		badge.IssuedAt = v.Int64()
	}
	if v, ok := values[6].(common.Address); ok {
		badge.Issuer = v.Hex()
	}
	return badge, nil
}

func (g *liveGateway) TransferReward(ctx context.Context, to string, amount int64) (*TransferResult, error) {
	return g.sendTokens(ctx, "transfer", to, amount)
}

func (g *liveGateway) MintReward(ctx context.Context, to string, amount int64) (*TransferResult, error) {
	return g.sendTokens(ctx, "mint", to, amount)
}

func (g *liveGateway) sendTokens(ctx context.Context, method, to string, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidWalletAddress(to) {
		return nil, domain.ErrInvalidAddress
	}

	data, err := g.tokenABI.Pack(method, common.HexToAddress(to), domain.ToBaseUnits(amount, g.decimals))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	txHash, _, err := g.submit(ctx, g.tokenContract, data)
	if err != nil {
		return nil, err
	}
	return &TransferResult{TxHash: txHash, Network: g.network}, nil
}

func (g *liveGateway) GetBalance(ctx context.Context, address string) Balance {
	degraded := Balance{Symbol: g.symbol, Decimals: g.decimals, Degraded: true}
	if !domain.ValidWalletAddress(address) {
		return degraded
	}

	data, err := g.tokenABI.Pack("balanceOf", common.HexToAddress(address))
	if err != nil {
		return degraded
	}

	result, err := g.client.CallContract(ctx, ethereum.CallMsg{
		To:   &g.tokenContract,
		Data: data,
	}, nil)
	if err != nil {
		logger.WarnCtx(ctx, "balance read failed, reporting degraded zero",
			zap.String("address", address), zap.Error(err))
		return degraded
	}

	var raw *big.Int
	if err := g.tokenABI.UnpackIntoInterface(&raw, "balanceOf", result); err != nil {
		return degraded
	}

	return Balance{
		Amount:   domain.FromBaseUnits(raw, g.decimals),
		Symbol:   g.symbol,
		Decimals: g.decimals,
	}
}

func (g *liveGateway) NetworkLabel() string {
	return g.network
}

func (g *liveGateway) IsConfigured() bool {
	return true
}

func (g *liveGateway) UsesMock() bool {
	return false
}

func (g *liveGateway) Close() {
	g.client.Close()
}

func (g *liveGateway) totalMinted(ctx context.Context) (int64, error) {
	data, err := g.badgeABI.Pack("totalMinted")
	if err != nil {
		return 0, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := g.client.CallContract(ctx, ethereum.CallMsg{
		To:   &g.badgeContract,
		Data: data,
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call contract: %w", err)
	}

	var total *big.Int
	if err := g.badgeABI.UnpackIntoInterface(&total, "totalMinted", result); err != nil {
		return 0, fmt.Errorf("failed to unpack result: %w", err)
	}
	return total.Int64(), nil
}

// submit signs and sends one transaction and waits for its receipt. The
// mutex holds from nonce allocation through send so two goroutines can never
// race for the same nonce.
func (g *liveGateway) submit(ctx context.Context, to common.Address, data []byte) (string, *types.Receipt, error) {
	g.submitMu.Lock()

	nonce, err := g.client.PendingNonceAt(ctx, g.from)
	if err != nil {
		g.submitMu.Unlock()
		return "", nil, fmt.Errorf("%w: failed to fetch nonce: %s", domain.ErrLedgerUnavailable, err)
	}

	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		g.submitMu.Unlock()
		return "", nil, fmt.Errorf("%w: failed to fetch gas price: %s", domain.ErrLedgerUnavailable, err)
	}

	gasLimit, err := g.client.EstimateGas(ctx, ethereum.CallMsg{
		From: g.from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		g.submitMu.Unlock()
		return "", nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(g.chainID), g.key)
	if err != nil {
		g.submitMu.Unlock()
		return "", nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signed); err != nil {
		g.submitMu.Unlock()
		return "", nil, fmt.Errorf("%w: failed to send transaction: %s", domain.ErrLedgerUnavailable, err)
	}
	g.submitMu.Unlock()

	receipt, err := g.waitReceipt(ctx, signed.Hash())
	if err != nil {
		return "", nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", nil, fmt.Errorf("transaction %s reverted", signed.Hash().Hex())
	}
	return signed.Hash().Hex(), receipt, nil
}

// waitReceipt polls for the transaction receipt with exponential backoff
// until the confirmation window runs out. Polling retries are read-only, so
// they never risk duplicating the side effect.
func (g *liveGateway) waitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = g.confirmWait
	// elapsed time is measured on the injected clock so tests can expire
	// the confirmation window without waiting it out
	b.Clock = g.clock

	operation := func() error {
		r, err := g.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err // still pending, keep polling
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("transaction %s not confirmed: %w", txHash.Hex(), err)
	}
	return receipt, nil
}
