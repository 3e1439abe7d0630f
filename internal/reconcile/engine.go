// Package reconcile keeps the off-chain reward ledger consistent with the
// external token and badge ledger. Every operation commits its off-chain
// changes first, then mirrors them to the external ledger best-effort; a
// committed local change is never rolled back because a ledger call failed.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/ledger"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/policy"
	"github.com/sundevilsync/sds-backend/internal/store"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

const defaultBatchWorkers = 4

// Engine is the reconciliation state machine. It owns the ordering of
// off-chain commits versus external ledger calls; the store and gateway are
// injected so tests can substitute either side.
type Engine struct {
	store   store.Store
	gateway ledger.Gateway
	clock   adapter.Clock

	// metadataBaseURL prefixes badge metadata references
	metadataBaseURL string

	batchPool pond.ResultPool[DistributionResult]
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetadataBaseURL sets the base URL for badge metadata references.
func WithMetadataBaseURL(base string) Option {
	return func(e *Engine) { e.metadataBaseURL = base }
}

// WithBatchWorkers sets the worker count for batch reward distribution.
func WithBatchWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchPool = pond.NewResultPool[DistributionResult](n)
		}
	}
}

// NewEngine creates a reconciliation engine.
func NewEngine(s store.Store, g ledger.Gateway, clock adapter.Clock, opts ...Option) *Engine {
	e := &Engine{
		store:           s,
		gateway:         g,
		clock:           clock,
		metadataBaseURL: "https://sundevilsync.asu.edu",
		batchPool:       pond.NewResultPool[DistributionResult](defaultBatchWorkers),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close drains the batch pool.
func (e *Engine) Close() {
	e.batchPool.StopAndWait()
}

// Enroll toggles an enrollment. A first call reserves a seat, commits the
// enrollment reward off-chain and then mints the badge and mirrors the reward
// externally, each reported as its own sub-result. A second call for the same
// pair cancels the enrollment; the badge index is left untouched, so a later
// re-enroll never mints or rewards twice.
func (e *Engine) Enroll(ctx context.Context, accountID, eventID int64) (*EnrollResult, error) {
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.WalletAddress == nil || *account.WalletAddress == "" {
		return nil, domain.ErrWalletRequired
	}

	if _, err := e.store.GetEnrollment(ctx, accountID, eventID); err == nil {
		return e.cancel(ctx, accountID, eventID)
	} else if !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, err
	}

	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := e.store.ReserveSeat(ctx, accountID, eventID); err != nil {
		return nil, err
	}

	// seat is committed; everything past this point is best-effort and
	// never unwinds the enrollment
	badge, reward, err := e.grantAchievement(ctx, account, event, domain.AchievementEnrolled, nil)
	if err != nil {
		return nil, err
	}

	event, err = e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &EnrollResult{
		Enrolled:       true,
		EventID:        eventID,
		SeatsAvailable: event.SeatsAvailable,
		Badge:          badge,
		Reward:         reward,
	}, nil
}

// CancelEnrollment removes an enrollment and returns its seat. Minted badges
// and already-granted rewards stay.
func (e *Engine) CancelEnrollment(ctx context.Context, accountID, eventID int64) (*EnrollResult, error) {
	if _, err := e.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return e.cancel(ctx, accountID, eventID)
}

func (e *Engine) cancel(ctx context.Context, accountID, eventID int64) (*EnrollResult, error) {
	if err := e.store.ReleaseSeat(ctx, accountID, eventID); err != nil {
		return nil, err
	}
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &EnrollResult{
		Enrolled:       false,
		EventID:        eventID,
		SeatsAvailable: event.SeatsAvailable,
	}, nil
}

// ConfirmAttendance issues the attended badge and reward for an enrollment,
// identified by the token id of its minted enrolled badge. Only verifiers and
// admins may confirm. A repeated confirmation returns the existing attended
// badge id without touching the ledger.
func (e *Engine) ConfirmAttendance(ctx context.Context, actorID, enrollmentBadgeTokenID int64) (*AttendanceResult, error) {
	actor, err := e.store.GetAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleVerifier && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	enrolled, err := e.store.GetBadgeByToken(ctx, enrollmentBadgeTokenID)
	if err != nil {
		return nil, domain.ErrEnrollmentNotFound
	}
	if enrolled.AchievementType != string(domain.AchievementEnrolled) ||
		enrolled.State != schema.BadgeStateMinted {
		return nil, domain.ErrEnrollmentNotFound
	}

	// an already minted attended badge short-circuits before any ledger call
	if existing, err := e.store.GetBadge(ctx, enrolled.AccountID, enrolled.EventID,
		string(domain.AchievementAttended)); err == nil && existing.State == schema.BadgeStateMinted {
		return &AttendanceResult{
			TokenID:       existing.TokenID,
			AlreadyMinted: true,
			Badge:         &SubResult{Outcome: domain.OutcomeSkipped, TokenID: existing.TokenID, TxHash: existing.TxHash},
			Reward:        &SubResult{Outcome: domain.OutcomeSkipped},
		}, nil
	} else if err != nil && !errors.Is(err, domain.ErrBadgeNotFound) {
		return nil, err
	}

	account, err := e.store.GetAccount(ctx, enrolled.AccountID)
	if err != nil {
		return nil, err
	}
	if account.WalletAddress == nil || *account.WalletAddress == "" {
		return nil, domain.ErrWalletRequired
	}
	event, err := e.store.GetEvent(ctx, enrolled.EventID)
	if err != nil {
		return nil, err
	}

	badge, reward, err := e.grantAchievement(ctx, account, event, domain.AchievementAttended, &actorID)
	if err != nil {
		return nil, err
	}
	return &AttendanceResult{
		TokenID: badge.TokenID,
		Badge:   badge,
		Reward:  reward,
	}, nil
}

// grantAchievement runs the badge/reward state machine for one (account,
// event, achievement) tuple. The off-chain commitment (index row + cached
// balance credit) happens exactly once, on the first grant; the external mint
// is retried on later triggers while it has not succeeded.
func (e *Engine) grantAchievement(ctx context.Context, account *schema.Account, event *schema.Event, achievement domain.AchievementType, mintedBy *int64) (*SubResult, *SubResult, error) {
	rewardSpec, err := policy.For(achievement)
	if err != nil {
		return nil, nil, err
	}

	record, err := e.store.GetBadge(ctx, account.ID, event.ID, string(achievement))
	committed := false
	switch {
	case err == nil:
		// already granted by an earlier trigger
	case errors.Is(err, domain.ErrBadgeNotFound):
		record, err = e.store.CommitAchievement(ctx, store.CommitAchievementInput{
			Badge: &schema.BadgeRecord{
				AccountID:       account.ID,
				EventID:         event.ID,
				AchievementType: string(achievement),
				SubjectAddress:  *account.WalletAddress,
				EventName:       event.Title,
				EventDate:       event.Date,
				MintedBy:        mintedBy,
			},
			RewardAmount:           rewardSpec.Amount,
			MarkEnrollmentRewarded: achievement == domain.AchievementEnrolled,
		})
		if errors.Is(err, domain.ErrAlreadyMinted) {
			// lost a commit race; fall back to the winner's row
			record, err = e.store.GetBadge(ctx, account.ID, event.ID, string(achievement))
		} else {
			committed = err == nil
		}
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, err
	}

	badge := e.mintBadge(ctx, record, rewardSpec.BadgeLabel)
	reward := e.mirrorReward(ctx, record, rewardSpec, committed)
	return badge, reward, nil
}

// mintBadge attempts the external mint for an index row that has not reached
// Minted yet. A previously minted row reports skipped.
func (e *Engine) mintBadge(ctx context.Context, record *schema.BadgeRecord, label string) *SubResult {
	if record.State == schema.BadgeStateMinted {
		return &SubResult{Outcome: domain.OutcomeSkipped, TokenID: record.TokenID, TxHash: record.TxHash}
	}

	minted, err := e.gateway.IssueBadge(ctx, ledger.IssueBadgeParams{
		SubjectAddress:  record.SubjectAddress,
		EventID:         record.EventID,
		EventName:       record.EventName,
		EventDate:       record.EventDate,
		AchievementType: label,
		MetadataURI:     fmt.Sprintf("%s/events/%d", e.metadataBaseURL, record.EventID),
	})
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Int64("account_id", record.AccountID),
			zap.Int64("event_id", record.EventID),
			zap.String("achievement", record.AchievementType))
		if markErr := e.store.MarkBadgeMintFailed(ctx, record.ID); markErr != nil {
			logger.ErrorCtx(ctx, markErr, zap.Int64("badge_id", record.ID))
		}
		return &SubResult{Outcome: domain.OutcomeFailed, Reason: err.Error()}
	}

	if err := e.store.MarkBadgeMinted(ctx, record.ID, store.MintResult{
		TokenID:     minted.TokenID,
		MetadataURI: fmt.Sprintf("%s/events/%d", e.metadataBaseURL, record.EventID),
		TxHash:      minted.TxHash,
		Network:     minted.Network,
	}); err != nil {
		logger.ErrorCtx(ctx, err, zap.Int64("badge_id", record.ID))
	}
	return &SubResult{Outcome: domain.OutcomeSucceeded, TokenID: &minted.TokenID, TxHash: minted.TxHash}
}

// mirrorReward mirrors a freshly committed reward to the external ledger. The
// cached credit already happened in the same transaction as the index row, so
// a failed mirror only logs; nothing is unwound and a retry never re-credits.
func (e *Engine) mirrorReward(ctx context.Context, record *schema.BadgeRecord, spec policy.Reward, committed bool) *SubResult {
	if !committed || spec.Amount <= 0 {
		return &SubResult{Outcome: domain.OutcomeSkipped, Amount: 0}
	}

	var (
		result *ledger.TransferResult
		err    error
	)
	if spec.Funding == policy.FundMint {
		result, err = e.gateway.MintReward(ctx, record.SubjectAddress, spec.Amount)
	} else {
		result, err = e.gateway.TransferReward(ctx, record.SubjectAddress, spec.Amount)
	}
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Int64("account_id", record.AccountID),
			zap.Int64("amount", spec.Amount))
		return &SubResult{Outcome: domain.OutcomeFailed, Amount: spec.Amount, Reason: err.Error()}
	}
	return &SubResult{Outcome: domain.OutcomeSucceeded, Amount: spec.Amount, TxHash: result.TxHash}
}

// RequestConversion converts cached balance into an external transfer to an
// arbitrary destination. The request row goes to processing before the
// external call so a crash mid-flight leaves evidence; the cached balance is
// debited only after the transfer succeeded. A failed transfer is reported in
// the result, and a retry is a brand new request.
func (e *Engine) RequestConversion(ctx context.Context, accountID, amount int64, destination string) (*ConversionResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidWalletAddress(destination) {
		return nil, domain.ErrInvalidAddress
	}
	return e.runConversion(ctx, accountID, amount, destination, domain.KindConversion)
}

// ClaimReward converts cached balance into newly minted supply on the
// caller's own linked wallet, with the same debit-after-success discipline as
// RequestConversion.
func (e *Engine) ClaimReward(ctx context.Context, accountID, amount int64) (*ConversionResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.WalletAddress == nil || *account.WalletAddress == "" {
		return nil, domain.ErrWalletRequired
	}
	return e.runConversion(ctx, accountID, amount, *account.WalletAddress, domain.KindClaim)
}

func (e *Engine) runConversion(ctx context.Context, accountID, amount int64, destination string, kind domain.ConversionKind) (*ConversionResult, error) {
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.RewardBalance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	request := &schema.ConversionRequest{
		Reference:          ulid.MustNewDefault(e.clock.Now()).String(),
		AccountID:          accountID,
		Kind:               string(kind),
		SDCAmount:          amount,
		DestinationAddress: destination,
	}
	if err := e.store.CreateConversionRequest(ctx, request); err != nil {
		return nil, err
	}
	claimed, err := e.store.ClaimConversion(ctx, request.Reference)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// someone else picked up this fresh request; nothing left to do here
		return nil, domain.ErrConversionNotFound
	}

	var result *ledger.TransferResult
	if kind == domain.KindClaim {
		result, err = e.gateway.MintReward(ctx, destination, amount)
	} else {
		result, err = e.gateway.TransferReward(ctx, destination, amount)
	}
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("reference", request.Reference),
			zap.Int64("account_id", accountID))
		if failErr := e.store.FailConversion(ctx, request.Reference, err.Error()); failErr != nil {
			logger.ErrorCtx(ctx, failErr, zap.String("reference", request.Reference))
		}
		return &ConversionResult{
			Reference:     request.Reference,
			Status:        domain.ConversionFailed,
			SDCAmount:     amount,
			FailureReason: err.Error(),
		}, nil
	}

	if err := e.store.CompleteConversion(ctx, request.Reference, result.TxHash, amount); err != nil {
		// transfer went out but the local completion failed; surface it,
		// the row stays in processing for operator reconciliation
		return nil, err
	}
	return &ConversionResult{
		Reference:      request.Reference,
		Status:         domain.ConversionCompleted,
		SDCAmount:      amount,
		ExternalAmount: amount,
		TxHash:         result.TxHash,
	}, nil
}

// ManualMintInput identifies the achievement an admin grants directly.
type ManualMintInput struct {
	AccountID       int64
	EventID         int64
	AchievementType domain.AchievementType
}

// MintBadge grants an achievement badge outside the enrollment and attendance
// flows. Admin only. It runs through the same commit-then-mint path as the
// automatic grants, so badge dedup, the reward policy and mint retries behave
// identically.
func (e *Engine) MintBadge(ctx context.Context, actorID int64, input ManualMintInput) (*ManualMintResult, error) {
	actor, err := e.store.GetAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	account, err := e.store.GetAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account.WalletAddress == nil || *account.WalletAddress == "" {
		return nil, domain.ErrWalletRequired
	}
	event, err := e.store.GetEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	badge, reward, err := e.grantAchievement(ctx, account, event, input.AchievementType, &actorID)
	if err != nil {
		return nil, err
	}
	return &ManualMintResult{TokenID: badge.TokenID, Badge: badge, Reward: reward}, nil
}

// DistributeReward sends reward tokens straight to a wallet, bypassing the
// off-chain ledger. Admin only.
func (e *Engine) DistributeReward(ctx context.Context, actorID int64, item DistributionItem) (*DistributionResult, error) {
	actor, err := e.store.GetAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	result := e.distribute(ctx, item)
	return &result, nil
}

// BatchDistributeRewards fans DistributeReward out over the worker pool and
// reports a per-recipient outcome. One bad recipient never aborts the batch.
func (e *Engine) BatchDistributeRewards(ctx context.Context, actorID int64, items []DistributionItem) ([]DistributionResult, error) {
	actor, err := e.store.GetAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	tasks := make([]pond.Result[DistributionResult], 0, len(items))
	for _, item := range items {
		item := item
		tasks = append(tasks, e.batchPool.Submit(func() DistributionResult {
			return e.distribute(ctx, item)
		}))
	}

	results := make([]DistributionResult, 0, len(items))
	for _, task := range tasks {
		r, err := task.Wait()
		if err != nil {
			r.Outcome = domain.OutcomeFailed
			r.Reason = err.Error()
		}
		results = append(results, r)
	}
	return results, nil
}

func (e *Engine) distribute(ctx context.Context, item DistributionItem) DistributionResult {
	out := DistributionResult{
		Wallet:      item.Wallet,
		Amount:      item.Amount,
		ReferenceID: item.ReferenceID,
	}
	result, err := e.gateway.TransferReward(ctx, item.Wallet, item.Amount)
	if err != nil {
		out.Outcome = domain.OutcomeFailed
		out.Reason = err.Error()
		return out
	}
	out.Outcome = domain.OutcomeSucceeded
	out.TxHash = result.TxHash
	return out
}

// AccountBadges lists the badge index rows for an account.
func (e *Engine) AccountBadges(ctx context.Context, accountID int64) ([]schema.BadgeRecord, error) {
	if _, err := e.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return e.store.ListBadgesByAccount(ctx, accountID)
}

// BadgesIssuedBy lists the badge index rows a verifier or admin confirmed.
func (e *Engine) BadgesIssuedBy(ctx context.Context, minterID int64) ([]schema.BadgeRecord, error) {
	return e.store.ListBadgesByMinter(ctx, minterID)
}

// ListBadges lists badge index rows across all accounts, newest first.
func (e *Engine) ListBadges(ctx context.Context, filter store.BadgeFilter) ([]schema.BadgeRecord, error) {
	return e.store.ListBadges(ctx, filter)
}

// BadgeByToken reads a badge, preferring the local index and falling back to
// the ledger for tokens the index does not know.
func (e *Engine) BadgeByToken(ctx context.Context, tokenID int64) (*schema.BadgeRecord, error) {
	record, err := e.store.GetBadgeByToken(ctx, tokenID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrBadgeNotFound) {
		return nil, err
	}

	remote, gerr := e.gateway.GetBadge(ctx, tokenID)
	if gerr != nil {
		return nil, domain.ErrBadgeNotFound
	}
	return &schema.BadgeRecord{
		TokenID:         &remote.TokenID,
		EventID:         remote.EventID,
		EventName:       remote.EventName,
		EventDate:       remote.EventDate,
		AchievementType: remote.AchievementType,
		MetadataURI:     remote.MetadataURI,
		Network:         remote.Network,
		State:           schema.BadgeStateMinted,
	}, nil
}

// ConversionHistory lists an account's conversion requests, newest first.
func (e *Engine) ConversionHistory(ctx context.Context, accountID int64) ([]schema.ConversionRequest, error) {
	return e.store.ListConversionsByAccount(ctx, accountID)
}

// GetBalance reports the cached balance plus a best-effort on-chain read for
// accounts with a linked wallet.
func (e *Engine) GetBalance(ctx context.Context, accountID int64) (*BalanceResult, error) {
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	result := &BalanceResult{
		AccountID: accountID,
		OffChain:  account.RewardBalance,
	}
	if account.WalletAddress != nil && *account.WalletAddress != "" {
		balance := e.gateway.GetBalance(ctx, *account.WalletAddress)
		result.OnChain = &balance
	}
	return result, nil
}

// GatewayStatus describes the gateway the engine runs against.
func (e *Engine) GatewayStatus() GatewayStatus {
	return GatewayStatus{
		Configured: e.gateway.IsConfigured(),
		Mock:       e.gateway.UsesMock(),
		Network:    e.gateway.NetworkLabel(),
	}
}
