package reconcile

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/config"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/ledger"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/mocks"
	"github.com/sundevilsync/sds-backend/internal/store"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

const testWallet = "0x1234567890123456789012345678901234567890"

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	db, err := store.Open("file:"+t.Name()+"?mode=memory&cache=shared", 0, 0)
	require.NoError(t, err)
	s := store.NewSQLiteStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// newTestEngine wires the engine to an in-memory store and the in-process
// mock ledger
func newTestEngine(t *testing.T) (*Engine, store.Store) {
	t.Helper()
	s := newTestStore(t)
	g := ledger.NewMockGateway(config.LedgerConfig{Symbol: "SDC", Decimals: 18})
	return NewEngine(s, g, adapter.NewClock()), s
}

// newMockedEngine wires the engine to a gomock gateway for failure-path tests
func newMockedEngine(t *testing.T, ctrl *gomock.Controller) (*Engine, store.Store, *mocks.MockGateway) {
	t.Helper()
	s := newTestStore(t)
	g := mocks.NewMockGateway(ctrl)
	return NewEngine(s, g, adapter.NewClock()), s, g
}

func seedAccount(t *testing.T, s store.Store, username string, wallet string, balance int64) *schema.Account {
	t.Helper()
	account := &schema.Account{
		Username:      username,
		Email:         username + "@asu.edu",
		PasswordHash:  "x",
		Role:          domain.RoleStudent,
		RewardBalance: balance,
	}
	require.NoError(t, s.CreateAccount(context.Background(), account))
	if wallet != "" {
		require.NoError(t, s.LinkWallet(context.Background(), account.ID, wallet))
		account.WalletAddress = &wallet
	}
	return account
}

func seedEvent(t *testing.T, s store.Store, id, seats int64) {
	t.Helper()
	require.NoError(t, s.UpsertEvents(context.Background(), []schema.Event{{
		ID:             id,
		Title:          fmt.Sprintf("Event %d", id),
		Date:           "2026-09-15",
		SeatsTotal:     seats,
		SeatsAvailable: seats,
		RSVPRequired:   true,
	}}))
}

func TestEnrollMintsBadgeAndReward(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 100)
	seedEvent(t, s, 1, 1)

	result, err := e.Enroll(ctx, account.ID, 1)
	require.NoError(t, err)
	assert.True(t, result.Enrolled)
	assert.Equal(t, int64(0), result.SeatsAvailable)

	require.NotNil(t, result.Badge)
	assert.Equal(t, domain.OutcomeSucceeded, result.Badge.Outcome)
	require.NotNil(t, result.Badge.TokenID)
	assert.NotEmpty(t, result.Badge.TxHash)

	require.NotNil(t, result.Reward)
	assert.Equal(t, domain.OutcomeSucceeded, result.Reward.Outcome)
	assert.Equal(t, int64(50), result.Reward.Amount)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.RewardBalance)

	badge, err := s.GetBadge(ctx, account.ID, 1, string(domain.AchievementEnrolled))
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateMinted, badge.State)
	assert.Equal(t, testWallet, badge.SubjectAddress)
}

func TestEnrollToggleCancelsAndNeverDoubleRewards(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 100)
	seedEvent(t, s, 1, 1)

	_, err := e.Enroll(ctx, account.ID, 1)
	require.NoError(t, err)

	// second call toggles the enrollment off
	result, err := e.Enroll(ctx, account.ID, 1)
	require.NoError(t, err)
	assert.False(t, result.Enrolled)
	assert.Equal(t, int64(1), result.SeatsAvailable)
	assert.Nil(t, result.Badge)

	_, err = s.GetEnrollment(ctx, account.ID, 1)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)

	// the badge index is untouched by the cancel
	badges, err := s.ListBadgesByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)

	// re-enrolling reuses the badge and grants no second reward
	result, err = e.Enroll(ctx, account.ID, 1)
	require.NoError(t, err)
	assert.True(t, result.Enrolled)
	assert.Equal(t, domain.OutcomeSkipped, result.Badge.Outcome)
	assert.Equal(t, domain.OutcomeSkipped, result.Reward.Outcome)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.RewardBalance)

	badges, err = s.ListBadgesByAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestEnrollRequiresWallet(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", "", 100)
	seedEvent(t, s, 1, 1)

	_, err := e.Enroll(ctx, account.ID, 1)
	assert.ErrorIs(t, err, domain.ErrWalletRequired)

	event, err := s.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.SeatsAvailable)
}

func TestEnrollEventFull(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	first := seedAccount(t, s, "first", testWallet, 100)
	second := seedAccount(t, s, "second", "0x2222222222222222222222222222222222222222", 100)
	seedEvent(t, s, 1, 1)

	_, err := e.Enroll(ctx, first.ID, 1)
	require.NoError(t, err)

	_, err = e.Enroll(ctx, second.ID, 1)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestEnrollConcurrentSingleSeat(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	const contenders = 6
	seedEvent(t, s, 1, 1)
	accounts := make([]*schema.Account, contenders)
	for i := range accounts {
		wallet := fmt.Sprintf("0x%040d", i+1)
		accounts[i] = seedAccount(t, s, fmt.Sprintf("student%d", i), wallet, 100)
	}

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Enroll(ctx, accounts[i].ID, 1)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, domain.ErrEventFull)
		}
	}
	assert.Equal(t, 1, won)

	event, err := s.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), event.SeatsAvailable)
	assert.Equal(t, event.SeatsTotal-event.SeatsAvailable, event.AttendeeCount)
}

func TestEnrollSurvivesBadgeMintFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, s, g := newMockedEngine(t, ctrl)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 100)
	seedEvent(t, s, 1, 1)

	g.EXPECT().IssueBadge(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("ledger timeout"))
	g.EXPECT().TransferReward(gomock.Any(), testWallet, int64(50)).
		Return(&ledger.TransferResult{TxHash: "0xaa", Network: "test"}, nil)

	result, err := e.Enroll(ctx, account.ID, 1)
	require.NoError(t, err)
	assert.True(t, result.Enrolled)
	assert.Equal(t, domain.OutcomeFailed, result.Badge.Outcome)
	assert.Equal(t, domain.OutcomeSucceeded, result.Reward.Outcome)

	// the enrollment and the off-chain reward credit both stand
	_, err = s.GetEnrollment(ctx, account.ID, 1)
	require.NoError(t, err)
	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.RewardBalance)

	badge, err := s.GetBadge(ctx, account.ID, 1, string(domain.AchievementEnrolled))
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateMintFailed, badge.State)
}

func TestConfirmAttendanceOnceAndAgain(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	student := seedAccount(t, s, "sparky", testWallet, 100)
	verifier := seedAccount(t, s, "checker", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, verifier.ID, domain.RoleVerifier))
	seedEvent(t, s, 1, 5)

	enrollResult, err := e.Enroll(ctx, student.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, enrollResult.Badge.TokenID)
	enrolledToken := *enrollResult.Badge.TokenID

	first, err := e.ConfirmAttendance(ctx, verifier.ID, enrolledToken)
	require.NoError(t, err)
	assert.False(t, first.AlreadyMinted)
	require.NotNil(t, first.TokenID)
	assert.Equal(t, domain.OutcomeSucceeded, first.Badge.Outcome)
	assert.Equal(t, int64(100), first.Reward.Amount)

	got, err := s.GetAccount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.RewardBalance) // 100 + 50 enroll + 100 attend

	second, err := e.ConfirmAttendance(ctx, verifier.ID, enrolledToken)
	require.NoError(t, err)
	assert.True(t, second.AlreadyMinted)
	require.NotNil(t, second.TokenID)
	assert.Equal(t, *first.TokenID, *second.TokenID)
	assert.Equal(t, domain.OutcomeSkipped, second.Badge.Outcome)

	// balance unchanged by the repeat
	got, err = s.GetAccount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.RewardBalance)
}

func TestConfirmAttendanceMakesNoSecondLedgerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, s, g := newMockedEngine(t, ctrl)
	ctx := context.Background()

	student := seedAccount(t, s, "sparky", testWallet, 100)
	verifier := seedAccount(t, s, "checker", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, verifier.ID, domain.RoleVerifier))
	seedEvent(t, s, 1, 5)

	// minted enrolled badge placed directly in the index
	record, err := s.CommitAchievement(ctx, store.CommitAchievementInput{
		Badge: &schema.BadgeRecord{
			AccountID:       student.ID,
			EventID:         1,
			AchievementType: string(domain.AchievementEnrolled),
			SubjectAddress:  testWallet,
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.MarkBadgeMinted(ctx, record.ID, store.MintResult{TokenID: 11, TxHash: "0xaa", Network: "test"}))

	tokenID := int64(77)
	g.EXPECT().IssueBadge(gomock.Any(), gomock.Any()).Times(1).
		Return(&ledger.MintedBadge{TokenID: tokenID, TxHash: "0xbb", Network: "test"}, nil)
	g.EXPECT().TransferReward(gomock.Any(), testWallet, int64(100)).Times(1).
		Return(&ledger.TransferResult{TxHash: "0xcc", Network: "test"}, nil)

	first, err := e.ConfirmAttendance(ctx, verifier.ID, 11)
	require.NoError(t, err)
	assert.False(t, first.AlreadyMinted)

	// no further gateway expectations: the repeat short-circuits locally
	second, err := e.ConfirmAttendance(ctx, verifier.ID, 11)
	require.NoError(t, err)
	assert.True(t, second.AlreadyMinted)
	assert.Equal(t, tokenID, *second.TokenID)
}

func TestConfirmAttendanceAuthorization(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	student := seedAccount(t, s, "sparky", testWallet, 100)

	_, err := e.ConfirmAttendance(ctx, student.ID, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestConfirmAttendanceUnknownBadge(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	verifier := seedAccount(t, s, "checker", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, verifier.ID, domain.RoleVerifier))

	_, err := e.ConfirmAttendance(ctx, verifier.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestConversionInsufficientBalance(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 100)

	_, err := e.RequestConversion(ctx, account.ID, 150, testWallet)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.RewardBalance)

	history, err := e.ConversionHistory(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConversionRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, s, g := newMockedEngine(t, ctrl)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 500)

	g.EXPECT().TransferReward(gomock.Any(), testWallet, int64(200)).
		Return(nil, fmt.Errorf("rpc timeout"))

	failed, err := e.RequestConversion(ctx, account.ID, 200, testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionFailed, failed.Status)
	assert.Equal(t, "rpc timeout", failed.FailureReason)

	// balance untouched by the failed attempt
	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.RewardBalance)

	g.EXPECT().TransferReward(gomock.Any(), testWallet, int64(200)).
		Return(&ledger.TransferResult{TxHash: "0xdd", Network: "test"}, nil)

	completed, err := e.RequestConversion(ctx, account.ID, 200, testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionCompleted, completed.Status)
	assert.Equal(t, "0xdd", completed.TxHash)
	assert.NotEqual(t, failed.Reference, completed.Reference)

	// debited exactly once
	got, err = s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), got.RewardBalance)

	history, err := e.ConversionHistory(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, string(domain.ConversionCompleted), history[0].Status)
	assert.Equal(t, string(domain.ConversionFailed), history[1].Status)
}

func TestConversionValidatesInput(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 100)

	_, err := e.RequestConversion(ctx, account.ID, 0, testWallet)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = e.RequestConversion(ctx, account.ID, 50, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestClaimRewardMintsToOwnWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, s, g := newMockedEngine(t, ctrl)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", testWallet, 300)

	g.EXPECT().MintReward(gomock.Any(), testWallet, int64(100)).
		Return(&ledger.TransferResult{TxHash: "0xee", Network: "test"}, nil)

	result, err := e.ClaimReward(ctx, account.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionCompleted, result.Status)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.RewardBalance)

	history, err := e.ConversionHistory(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, string(domain.KindClaim), history[0].Kind)
	assert.Equal(t, testWallet, history[0].DestinationAddress)
}

func TestClaimRewardRequiresWallet(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	account := seedAccount(t, s, "sparky", "", 300)
	_, err := e.ClaimReward(ctx, account.ID, 100)
	assert.ErrorIs(t, err, domain.ErrWalletRequired)
}

func TestDistributeRewardAdminOnly(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	student := seedAccount(t, s, "sparky", testWallet, 100)
	admin := seedAccount(t, s, "boss", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, admin.ID, domain.RoleAdmin))

	_, err := e.DistributeReward(ctx, student.ID, DistributionItem{Wallet: testWallet, Amount: 10})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	result, err := e.DistributeReward(ctx, admin.ID, DistributionItem{Wallet: testWallet, Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSucceeded, result.Outcome)
	assert.NotEmpty(t, result.TxHash)
}

func TestBatchDistributeRewards(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	admin := seedAccount(t, s, "boss", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, admin.ID, domain.RoleAdmin))

	items := []DistributionItem{
		{Wallet: testWallet, Amount: 10, ReferenceID: "a"},
		{Wallet: "0x2222222222222222222222222222222222222222", Amount: 20, ReferenceID: "b"},
		{Wallet: "bogus", Amount: 30, ReferenceID: "c"},
	}
	results, err := e.BatchDistributeRewards(ctx, admin.ID, items)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byRef := make(map[string]DistributionResult)
	for _, r := range results {
		byRef[r.ReferenceID] = r
	}
	assert.Equal(t, domain.OutcomeSucceeded, byRef["a"].Outcome)
	assert.Equal(t, domain.OutcomeSucceeded, byRef["b"].Outcome)
	assert.Equal(t, domain.OutcomeFailed, byRef["c"].Outcome)
}

func TestGetBalance(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	linked := seedAccount(t, s, "sparky", testWallet, 100)
	unlinked := seedAccount(t, s, "plain", "", 40)

	result, err := e.GetBalance(ctx, linked.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), result.OffChain)
	require.NotNil(t, result.OnChain)
	assert.False(t, result.OnChain.Degraded)

	result, err = e.GetBalance(ctx, unlinked.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), result.OffChain)
	assert.Nil(t, result.OnChain)
}

func TestGatewayStatus(t *testing.T) {
	e, _ := newTestEngine(t)
	status := e.GatewayStatus()
	assert.True(t, status.Mock)
	assert.True(t, status.Configured)
	assert.Equal(t, "mock", status.Network)
}

func TestMintBadgeAdminGrant(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	student := seedAccount(t, s, "sparky", testWallet, 100)
	admin := seedAccount(t, s, "boss", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, admin.ID, domain.RoleAdmin))
	seedEvent(t, s, 1, 5)

	input := ManualMintInput{AccountID: student.ID, EventID: 1, AchievementType: domain.AchievementAttended}

	_, err := e.MintBadge(ctx, student.ID, input)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	result, err := e.MintBadge(ctx, admin.ID, input)
	require.NoError(t, err)
	require.NotNil(t, result.TokenID)
	assert.Equal(t, domain.OutcomeSucceeded, result.Badge.Outcome)
	assert.Equal(t, domain.OutcomeSucceeded, result.Reward.Outcome)
	assert.Equal(t, int64(100), result.Reward.Amount)

	badge, err := s.GetBadge(ctx, student.ID, 1, string(domain.AchievementAttended))
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateMinted, badge.State)
	require.NotNil(t, badge.MintedBy)
	assert.Equal(t, admin.ID, *badge.MintedBy)

	account, err := s.GetAccount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), account.RewardBalance)

	// repeat grant reuses the existing badge and never re-credits
	again, err := e.MintBadge(ctx, admin.ID, input)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, again.Badge.Outcome)
	assert.Equal(t, *result.TokenID, *again.TokenID)

	account, err = s.GetAccount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), account.RewardBalance)
}

func TestMintBadgePreconditions(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	unlinked := seedAccount(t, s, "plain", "", 100)
	admin := seedAccount(t, s, "boss", "", 0)
	require.NoError(t, s.UpdateAccountRole(ctx, admin.ID, domain.RoleAdmin))
	seedEvent(t, s, 1, 5)

	_, err := e.MintBadge(ctx, admin.ID, ManualMintInput{
		AccountID: unlinked.ID, EventID: 1, AchievementType: domain.AchievementAttended,
	})
	assert.ErrorIs(t, err, domain.ErrWalletRequired)

	linked := seedAccount(t, s, "sparky", testWallet, 100)

	_, err = e.MintBadge(ctx, admin.ID, ManualMintInput{
		AccountID: linked.ID, EventID: 404, AchievementType: domain.AchievementAttended,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = e.MintBadge(ctx, admin.ID, ManualMintInput{
		AccountID: linked.ID, EventID: 1, AchievementType: domain.AchievementType("volunteered"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAchievement)
}

func TestListBadgesNewestFirstWithFilters(t *testing.T) {
	e, s := newTestEngine(t)
	ctx := context.Background()

	first := seedAccount(t, s, "sparky", testWallet, 100)
	second := seedAccount(t, s, "devil", "0x2222222222222222222222222222222222222222", 100)
	seedEvent(t, s, 1, 5)
	seedEvent(t, s, 2, 5)

	_, err := e.Enroll(ctx, first.ID, 1)
	require.NoError(t, err)
	_, err = e.Enroll(ctx, second.ID, 1)
	require.NoError(t, err)
	_, err = e.Enroll(ctx, second.ID, 2)
	require.NoError(t, err)

	badges, err := e.ListBadges(ctx, store.BadgeFilter{})
	require.NoError(t, err)
	require.Len(t, badges, 3)
	assert.Equal(t, int64(2), badges[0].EventID)
	assert.Equal(t, second.ID, badges[0].AccountID)
	assert.Equal(t, first.ID, badges[2].AccountID)

	badges, err = e.ListBadges(ctx, store.BadgeFilter{EventID: 1})
	require.NoError(t, err)
	require.Len(t, badges, 2)
	for _, b := range badges {
		assert.Equal(t, int64(1), b.EventID)
	}

	badges, err = e.ListBadges(ctx, store.BadgeFilter{AchievementType: string(domain.AchievementAttended)})
	require.NoError(t, err)
	assert.Empty(t, badges)

	badges, err = e.ListBadges(ctx, store.BadgeFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, int64(2), badges[0].EventID)
}
