package store

import (
	"context"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

// CommitAchievementInput carries everything needed to commit an achievement
// off-chain in a single transaction: the badge index row, the balance credit
// and any event counter update. The commitment is durable once this returns;
// external minting happens afterwards and never rolls it back.
type CommitAchievementInput struct {
	Badge *schema.BadgeRecord
	// RewardAmount is credited to the account balance; zero means no credit
	RewardAmount int64
	// MarkEnrollmentRewarded flips the reward_granted flag on the live
	// enrollment row, when one exists
	MarkEnrollmentRewarded bool
}

// MintResult records the outcome of an external badge mint against the local
// badge index.
type MintResult struct {
	TokenID     int64
	MetadataURI string
	TxHash      string
	Network     string
}

// BadgeFilter narrows a ListBadges query. Zero values place no constraint.
type BadgeFilter struct {
	EventID         int64
	AchievementType string
	// Limit caps the result set; zero means no cap
	Limit int
}

// Store defines the interface for database operations
type Store interface {
	// Migrate creates or updates the database tables
	Migrate(ctx context.Context) error

	// CreateAccount inserts a new account
	CreateAccount(ctx context.Context, account *schema.Account) error
	// GetAccount retrieves an account by id
	GetAccount(ctx context.Context, id int64) (*schema.Account, error)
	// GetAccountByUsername retrieves an account by its unique username
	GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error)
	// LinkWallet sets the wallet address on an account
	LinkWallet(ctx context.Context, accountID int64, address string) error
	// UpdateAccountRole changes an account's role
	UpdateAccountRole(ctx context.Context, accountID int64, role domain.Role) error
	// AdjustBalance changes an account balance by delta. Negative deltas
	// only apply when the balance stays non-negative.
	AdjustBalance(ctx context.Context, accountID int64, delta int64) error

	// ListEvents retrieves all events
	ListEvents(ctx context.Context) ([]schema.Event, error)
	// GetEvent retrieves an event by id
	GetEvent(ctx context.Context, id int64) (*schema.Event, error)
	// UpsertEvents inserts or replaces the given events, used for seeding
	UpsertEvents(ctx context.Context, events []schema.Event) error

	// ListGroups retrieves all groups
	ListGroups(ctx context.Context) ([]schema.Group, error)
	// GetGroup retrieves a group by id
	GetGroup(ctx context.Context, id int64) (*schema.Group, error)
	// UpsertGroups inserts or replaces the given groups, used for seeding
	UpsertGroups(ctx context.Context, groups []schema.Group) error
	// ToggleMembership joins the account to the group when no membership
	// exists, or leaves it when one does. Returns true when the account is
	// a member after the call.
	ToggleMembership(ctx context.Context, accountID, groupID int64) (bool, error)
	// ListMemberships retrieves the group ids the account belongs to
	ListMemberships(ctx context.Context, accountID int64) ([]int64, error)

	// GetEnrollment retrieves the live enrollment for (account, event)
	GetEnrollment(ctx context.Context, accountID, eventID int64) (*schema.Enrollment, error)
	// ListEnrollments retrieves the account's live enrollments
	ListEnrollments(ctx context.Context, accountID int64) ([]schema.Enrollment, error)
	// ReserveSeat atomically creates an enrollment and takes one seat.
	// Returns domain.ErrEventFull when no seat is available.
	ReserveSeat(ctx context.Context, accountID, eventID int64) (*schema.Enrollment, error)
	// ReleaseSeat atomically deletes the enrollment and returns its seat
	ReleaseSeat(ctx context.Context, accountID, eventID int64) error

	// GetBadge retrieves the badge row for (account, event, achievement)
	GetBadge(ctx context.Context, accountID, eventID int64, achievementType string) (*schema.BadgeRecord, error)
	// GetBadgeByToken retrieves a badge row by its ledger token id
	GetBadgeByToken(ctx context.Context, tokenID int64) (*schema.BadgeRecord, error)
	// ListBadgesByAccount retrieves all badge rows for an account
	ListBadgesByAccount(ctx context.Context, accountID int64) ([]schema.BadgeRecord, error)
	// ListBadgesByMinter retrieves all badge rows confirmed by a verifier
	ListBadgesByMinter(ctx context.Context, minterID int64) ([]schema.BadgeRecord, error)
	// ListBadges retrieves badge rows across all accounts, newest first
	ListBadges(ctx context.Context, filter BadgeFilter) ([]schema.BadgeRecord, error)
	// CommitAchievement records an achievement off-chain in one
	// transaction. Returns domain.ErrAlreadyMinted when a row for the
	// same (account, event, achievement) already exists.
	CommitAchievement(ctx context.Context, input CommitAchievementInput) (*schema.BadgeRecord, error)
	// MarkBadgeMinted records a successful external mint
	MarkBadgeMinted(ctx context.Context, badgeID int64, result MintResult) error
	// MarkBadgeMintFailed records a definitive mint failure
	MarkBadgeMintFailed(ctx context.Context, badgeID int64) error

	// CreateConversionRequest appends a pending conversion row
	CreateConversionRequest(ctx context.Context, request *schema.ConversionRequest) error
	// ClaimConversion moves a pending request to processing. Returns false
	// when the request was not pending, so only one caller proceeds.
	ClaimConversion(ctx context.Context, reference string) (bool, error)
	// CompleteConversion marks the request completed and debits the
	// account balance in the same transaction. The debit fails with
	// domain.ErrInsufficientBalance when the balance no longer covers it.
	CompleteConversion(ctx context.Context, reference string, txHash string, externalAmount int64) error
	// FailConversion marks the request failed with a reason. The balance
	// is untouched; nothing was debited yet.
	FailConversion(ctx context.Context, reference string, reason string) error
	// GetConversion retrieves a conversion request by reference
	GetConversion(ctx context.Context, reference string) (*schema.ConversionRequest, error)
	// ListConversionsByAccount retrieves the account's conversion history,
	// newest first
	ListConversionsByAccount(ctx context.Context, accountID int64) ([]schema.ConversionRequest, error)
}
