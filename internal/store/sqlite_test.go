package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

// newTestStore opens a fresh in-memory database with the full schema
func newTestStore(t *testing.T) Store {
	t.Helper()
	db, err := Open("file:"+t.Name()+"?mode=memory&cache=shared", 0, 0)
	require.NoError(t, err)
	s := NewSQLiteStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func buildTestAccount(username string, balance int64) *schema.Account {
	return &schema.Account{
		Username:      username,
		Email:         username + "@asu.edu",
		PasswordHash:  "x",
		Role:          domain.RoleStudent,
		RewardBalance: balance,
	}
}

func buildTestEvent(id, seats int64) schema.Event {
	return schema.Event{
		ID:             id,
		Title:          fmt.Sprintf("Event %d", id),
		Date:           "2026-09-15",
		SeatsTotal:     seats,
		SeatsAvailable: seats,
		RSVPRequired:   true,
	}
}

func TestAccountLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))
	require.NotZero(t, account.ID)

	got, err := s.GetAccountByUsername(ctx, "sparky")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, int64(100), got.RewardBalance)
	assert.Nil(t, got.WalletAddress)

	_, err = s.GetAccount(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, s.LinkWallet(ctx, account.ID, "0x1234567890123456789012345678901234567890"))
	got, err = s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WalletAddress)
	assert.Equal(t, "0x1234567890123456789012345678901234567890", *got.WalletAddress)

	require.NoError(t, s.UpdateAccountRole(ctx, account.ID, domain.RoleVerifier))
	got, err = s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVerifier, got.Role)
}

func TestAdjustBalanceFloor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))

	require.NoError(t, s.AdjustBalance(ctx, account.ID, 50))
	require.NoError(t, s.AdjustBalance(ctx, account.ID, -150))

	err := s.AdjustBalance(ctx, account.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.RewardBalance)

	err = s.AdjustBalance(ctx, 9999, 10)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestReserveSeatAndRelease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))
	require.NoError(t, s.UpsertEvents(ctx, []schema.Event{buildTestEvent(1, 2)}))

	enrollment, err := s.ReserveSeat(ctx, account.ID, 1)
	require.NoError(t, err)
	assert.False(t, enrollment.RewardGranted)

	event, err := s.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.SeatsAvailable)
	assert.Equal(t, int64(1), event.AttendeeCount)

	require.NoError(t, s.ReleaseSeat(ctx, account.ID, 1))
	event, err = s.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), event.SeatsAvailable)
	assert.Equal(t, int64(0), event.AttendeeCount)

	// releasing again fails, seat count untouched
	err = s.ReleaseSeat(ctx, account.ID, 1)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
	event, err = s.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), event.SeatsAvailable)

	_, err = s.ReserveSeat(ctx, account.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestReserveSeatNeverOversells(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertEvents(ctx, []schema.Event{buildTestEvent(1, 1)}))

	const contenders = 8
	accounts := make([]*schema.Account, contenders)
	for i := range accounts {
		accounts[i] = buildTestAccount(fmt.Sprintf("student%d", i), 100)
		require.NoError(t, s.CreateAccount(ctx, accounts[i]))
	}

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.ReserveSeat(ctx, accounts[i].ID, 1)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range results {
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

func TestToggleMembership(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))
	require.NoError(t, s.UpsertGroups(ctx, []schema.Group{{ID: 7, Name: "Robotics Club"}}))

	member, err := s.ToggleMembership(ctx, account.ID, 7)
	require.NoError(t, err)
	assert.True(t, member)

	groupIDs, err := s.ListMemberships(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, groupIDs)

	member, err = s.ToggleMembership(ctx, account.ID, 7)
	require.NoError(t, err)
	assert.False(t, member)

	groupIDs, err = s.ListMemberships(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, groupIDs)

	_, err = s.ToggleMembership(ctx, account.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestCommitAchievementOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))
	require.NoError(t, s.UpsertEvents(ctx, []schema.Event{buildTestEvent(1, 10)}))
	_, err := s.ReserveSeat(ctx, account.ID, 1)
	require.NoError(t, err)

	input := CommitAchievementInput{
		Badge: &schema.BadgeRecord{
			AccountID:       account.ID,
			EventID:         1,
			AchievementType: string(domain.AchievementAttended),
			EventName:       "Event 1",
			EventDate:       "2026-09-15",
		},
		RewardAmount: 100,
	}
	badge, err := s.CommitAchievement(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateUnclaimed, badge.State)
	assert.Nil(t, badge.TokenID)

	got, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.RewardBalance)

	// a second commit for the same achievement changes nothing
	input.Badge = &schema.BadgeRecord{
		AccountID:       account.ID,
		EventID:         1,
		AchievementType: string(domain.AchievementAttended),
	}
	_, err = s.CommitAchievement(ctx, input)
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)

	got, err = s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.RewardBalance)
}

func TestMarkBadgeMintOutcome(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 100)
	require.NoError(t, s.CreateAccount(ctx, account))
	require.NoError(t, s.UpsertEvents(ctx, []schema.Event{buildTestEvent(1, 10)}))

	badge, err := s.CommitAchievement(ctx, CommitAchievementInput{
		Badge: &schema.BadgeRecord{
			AccountID:       account.ID,
			EventID:         1,
			AchievementType: string(domain.AchievementEnrolled),
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.MarkBadgeMinted(ctx, badge.ID, MintResult{
		TokenID:     42,
		MetadataURI: "ipfs://badge/42",
		TxHash:      "0xabc",
		Network:     "amoy",
	}))

	got, err := s.GetBadgeByToken(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateMinted, got.State)
	assert.Equal(t, "0xabc", got.TxHash)

	require.NoError(t, s.MarkBadgeMintFailed(ctx, badge.ID))
	got, err = s.GetBadge(ctx, account.ID, 1, string(domain.AchievementEnrolled))
	require.NoError(t, err)
	assert.Equal(t, schema.BadgeStateMintFailed, got.State)
}

func TestConversionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 500)
	require.NoError(t, s.CreateAccount(ctx, account))

	request := &schema.ConversionRequest{
		Reference: "01J8TESTREF00000000000000",
		AccountID: account.ID,
		Kind:      string(domain.KindClaim),
		SDCAmount: 200,
	}
	require.NoError(t, s.CreateConversionRequest(ctx, request))
	assert.Equal(t, string(domain.ConversionPending), request.Status)

	claimed, err := s.ClaimConversion(ctx, request.Reference)
	require.NoError(t, err)
	assert.True(t, claimed)

	// second claim loses the handoff
	claimed, err = s.ClaimConversion(ctx, request.Reference)
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, s.CompleteConversion(ctx, request.Reference, "0xdef", 200))

	got, err := s.GetConversion(ctx, request.Reference)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ConversionCompleted), got.Status)
	assert.Equal(t, "0xdef", got.TxHash)

	acct, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), acct.RewardBalance)
}

func TestFailConversionLeavesBalance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := buildTestAccount("sparky", 500)
	require.NoError(t, s.CreateAccount(ctx, account))

	request := &schema.ConversionRequest{
		Reference: "01J8TESTREF00000000000001",
		AccountID: account.ID,
		Kind:      string(domain.KindConversion),
		SDCAmount: 200,
	}
	require.NoError(t, s.CreateConversionRequest(ctx, request))

	_, err := s.ClaimConversion(ctx, request.Reference)
	require.NoError(t, err)
	require.NoError(t, s.FailConversion(ctx, request.Reference, "ledger unavailable"))

	got, err := s.GetConversion(ctx, request.Reference)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ConversionFailed), got.Status)
	assert.Equal(t, "ledger unavailable", got.FailureReason)

	acct, err := s.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), acct.RewardBalance)

	history, err := s.ListConversionsByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}
