package ledger_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/config"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/ledger"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/mocks"
)

// well-known anvil/hardhat dev key, safe to embed
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newLiveUnderTest(t *testing.T, client adapter.EthClient) ledger.Gateway {
	t.Helper()
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	g, err := ledger.NewLiveGateway(config.LedgerConfig{
		RPCURL:        "http://localhost:8545",
		ChainID:       80002,
		TokenContract: "0x00000000000000000000000000000000000000aa",
		BadgeContract: "0x00000000000000000000000000000000000000bb",
		PrivateKey:    testPrivateKey,
		Decimals:      18,
		Symbol:        "SDC",
		ConfirmWait:   5 * time.Second,
	}, client, adapter.NewClock())
	require.NoError(t, err)
	return g
}

func encodeUint256(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func TestLiveGatewayRejectsBadKey(t *testing.T) {
	_, err := ledger.NewLiveGateway(config.LedgerConfig{PrivateKey: "zz"}, nil, adapter.NewClock())
	assert.Error(t, err)
}

func TestLiveTransferRewardSubmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	client.EXPECT().PendingNonceAt(ctx, gomock.Any()).Return(uint64(7), nil)
	client.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1_000_000_000), nil)
	client.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(60_000), nil)

	var sentHash common.Hash
	client.EXPECT().SendTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			assert.Equal(t, uint64(7), tx.Nonce())
			sentHash = tx.Hash()
			return nil
		})
	client.EXPECT().TransactionReceipt(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, h common.Hash) (*types.Receipt, error) {
			assert.Equal(t, sentHash, h)
			return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
		})

	result, err := g.TransferReward(ctx, "0x1234567890123456789012345678901234567890", 50)
	require.NoError(t, err)
	assert.Equal(t, sentHash.Hex(), result.TxHash)
	assert.Equal(t, "chain-80002", result.Network)
}

func TestLiveTransferRewardRevertedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	client.EXPECT().PendingNonceAt(ctx, gomock.Any()).Return(uint64(0), nil)
	client.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1), nil)
	client.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(21_000), nil)
	client.EXPECT().SendTransaction(ctx, gomock.Any()).Return(nil)
	client.EXPECT().TransactionReceipt(ctx, gomock.Any()).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	_, err := g.TransferReward(ctx, "0x1234567890123456789012345678901234567890", 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
}

func TestLiveTransferRewardLedgerDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	client.EXPECT().PendingNonceAt(ctx, gomock.Any()).
		Return(uint64(0), fmt.Errorf("connection refused"))

	_, err := g.TransferReward(ctx, "0x1234567890123456789012345678901234567890", 50)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestLiveGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	// 42 tokens with 18 decimals
	raw := new(big.Int).Mul(big.NewInt(42), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	client.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(encodeUint256(raw), nil)

	balance := g.GetBalance(ctx, "0x1234567890123456789012345678901234567890")
	assert.False(t, balance.Degraded)
	assert.Equal(t, int64(42), balance.Amount)
	assert.Equal(t, "SDC", balance.Symbol)
}

func TestLiveGetBalanceDegradesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	client.EXPECT().CallContract(ctx, gomock.Any(), nil).
		Return(nil, fmt.Errorf("rpc timeout"))

	balance := g.GetBalance(ctx, "0x1234567890123456789012345678901234567890")
	assert.True(t, balance.Degraded)
	assert.Equal(t, int64(0), balance.Amount)
}

func TestLiveInvalidInputsShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no client expectations: invalid input never reaches the ledger
	client := mocks.NewMockEthClient(ctrl)
	g := newLiveUnderTest(t, client)
	ctx := context.Background()

	_, err := g.TransferReward(ctx, "bogus", 50)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = g.MintReward(ctx, "0x1234567890123456789012345678901234567890", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = g.IssueBadge(ctx, ledger.IssueBadgeParams{SubjectAddress: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestLiveIssueBadgeTokenIDFromReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now()).MinTimes(1)

	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	g, err := ledger.NewLiveGateway(config.LedgerConfig{
		RPCURL:        "http://localhost:8545",
		ChainID:       80002,
		TokenContract: "0x00000000000000000000000000000000000000aa",
		BadgeContract: "0x00000000000000000000000000000000000000bb",
		PrivateKey:    testPrivateKey,
		Decimals:      18,
		Symbol:        "SDC",
		ConfirmWait:   5 * time.Second,
	}, client, clock)
	require.NoError(t, err)
	ctx := context.Background()

	client.EXPECT().PendingNonceAt(ctx, gomock.Any()).Return(uint64(3), nil)
	client.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1), nil)
	client.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(200_000), nil)
	client.EXPECT().SendTransaction(ctx, gomock.Any()).Return(nil)

	// no CallContract expectation: the token id must come from the mint
	// receipt, never from a follow-up counter read that a concurrent mint
	// could have advanced
	badgeContract := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	client.EXPECT().TransactionReceipt(ctx, gomock.Any()).
		Return(&types.Receipt{
			Status: types.ReceiptStatusSuccessful,
			Logs: []*types.Log{{
				Address: badgeContract,
				Topics: []common.Hash{
					ledger.ERC721TransferTopic,
					common.Hash{},
					common.BytesToHash(common.HexToAddress("0x1234567890123456789012345678901234567890").Bytes()),
					common.BigToHash(big.NewInt(42)),
				},
			}},
		}, nil)

	minted, err := g.IssueBadge(ctx, ledger.IssueBadgeParams{
		SubjectAddress:  "0x1234567890123456789012345678901234567890",
		EventID:         7,
		EventName:       "Hackathon",
		EventDate:       "2026-10-01",
		AchievementType: "attended",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), minted.TokenID)
	assert.NotEmpty(t, minted.TxHash)
}
