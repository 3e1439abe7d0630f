package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore creates a new SQLite store instance
func NewSQLiteStore(db *gorm.DB) Store {
	return &sqliteStore{db: db}
}

// Open opens a SQLite database at path and configures the connection pool.
// SQLite serializes writers, so the pool is capped at a single open
// connection to avoid SQLITE_BUSY churn under concurrent transactions.
func Open(path string, connMaxLifetime, connMaxIdleTime time.Duration) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the database tables
func (s *sqliteStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&schema.Account{},
		&schema.Event{},
		&schema.Group{},
		&schema.Membership{},
		&schema.Enrollment{},
		&schema.BadgeRecord{},
		&schema.ConversionRequest{},
	)
}

// CreateAccount inserts a new account
func (s *sqliteStore) CreateAccount(ctx context.Context, account *schema.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

// GetAccount retrieves an account by id
func (s *sqliteStore) GetAccount(ctx context.Context, id int64) (*schema.Account, error) {
	var account schema.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetAccountByUsername retrieves an account by its unique username
func (s *sqliteStore) GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error) {
	var account schema.Account
	if err := s.db.WithContext(ctx).First(&account, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// LinkWallet sets the wallet address on an account
func (s *sqliteStore) LinkWallet(ctx context.Context, accountID int64, address string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Account{}).
		Where("id = ?", accountID).
		Update("wallet_address", address)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// UpdateAccountRole changes an account's role
func (s *sqliteStore) UpdateAccountRole(ctx context.Context, accountID int64, role domain.Role) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Account{}).
		Where("id = ?", accountID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// AdjustBalance changes an account balance by delta. Negative deltas only
// apply when the balance stays non-negative; the guard rides in the UPDATE so
// concurrent debits cannot overdraw.
func (s *sqliteStore) AdjustBalance(ctx context.Context, accountID int64, delta int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return adjustBalanceTx(tx, accountID, delta)
	})
}

func adjustBalanceTx(tx *gorm.DB, accountID int64, delta int64) error {
	query := tx.Model(&schema.Account{}).Where("id = ?", accountID)
	if delta < 0 {
		query = query.Where("reward_balance >= ?", -delta)
	}
	result := query.Update("reward_balance", gorm.Expr("reward_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&schema.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrAccountNotFound
		}
		return domain.ErrInsufficientBalance
	}
	return nil
}

// ListEvents retrieves all events
func (s *sqliteStore) ListEvents(ctx context.Context) ([]schema.Event, error) {
	var events []schema.Event
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent retrieves an event by id
func (s *sqliteStore) GetEvent(ctx context.Context, id int64) (*schema.Event, error) {
	var event schema.Event
	if err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// UpsertEvents inserts the given events, keeping existing rows untouched so
// live seat counters survive reseeding
func (s *sqliteStore) UpsertEvents(ctx context.Context, events []schema.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&events).Error
}

// ListGroups retrieves all groups
func (s *sqliteStore) ListGroups(ctx context.Context) ([]schema.Group, error) {
	var groups []schema.Group
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup retrieves a group by id
func (s *sqliteStore) GetGroup(ctx context.Context, id int64) (*schema.Group, error) {
	var group schema.Group
	if err := s.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// UpsertGroups inserts the given groups, keeping existing rows untouched
func (s *sqliteStore) UpsertGroups(ctx context.Context, groups []schema.Group) error {
	if len(groups) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&groups).Error
}

// ToggleMembership joins the account to the group when no membership exists,
// or leaves it when one does
func (s *sqliteStore) ToggleMembership(ctx context.Context, accountID, groupID int64) (bool, error) {
	var member bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Group{}).Where("id = ?", groupID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrGroupNotFound
		}

		result := tx.Where("account_id = ? AND group_id = ?", accountID, groupID).
			Delete(&schema.Membership{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			member = false
			return nil
		}

		if err := tx.Create(&schema.Membership{AccountID: accountID, GroupID: groupID}).Error; err != nil {
			return err
		}
		member = true
		return nil
	})
	return member, err
}

// ListMemberships retrieves the group ids the account belongs to
func (s *sqliteStore) ListMemberships(ctx context.Context, accountID int64) ([]int64, error) {
	var groupIDs []int64
	if err := s.db.WithContext(ctx).
		Model(&schema.Membership{}).
		Where("account_id = ?", accountID).
		Order("group_id ASC").
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, err
	}
	return groupIDs, nil
}

// GetEnrollment retrieves the live enrollment for (account, event)
func (s *sqliteStore) GetEnrollment(ctx context.Context, accountID, eventID int64) (*schema.Enrollment, error) {
	var enrollment schema.Enrollment
	if err := s.db.WithContext(ctx).
		First(&enrollment, "account_id = ? AND event_id = ?", accountID, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListEnrollments retrieves the account's live enrollments
func (s *sqliteStore) ListEnrollments(ctx context.Context, accountID int64) ([]schema.Enrollment, error) {
	var enrollments []schema.Enrollment
	if err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("event_id ASC").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ReserveSeat atomically creates an enrollment and takes one seat. The seat
// decrement carries a seats_available > 0 guard so concurrent enrollments
// past capacity lose the race instead of overselling.
func (s *sqliteStore) ReserveSeat(ctx context.Context, accountID, eventID int64) (*schema.Enrollment, error) {
	enrollment := &schema.Enrollment{
		AccountID: accountID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrEventNotFound
		}

		result := tx.Model(&schema.Event{}).
			Where("id = ? AND seats_available > 0", eventID).
			Updates(map[string]interface{}{
				"seats_available": gorm.Expr("seats_available - 1"),
				"attendee_count":  gorm.Expr("attendee_count + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEventFull
		}

		return tx.Create(enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ReleaseSeat atomically deletes the enrollment and returns its seat
func (s *sqliteStore) ReleaseSeat(ctx context.Context, accountID, eventID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("account_id = ? AND event_id = ?", accountID, eventID).
			Delete(&schema.Enrollment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEnrollmentNotFound
		}

		return tx.Model(&schema.Event{}).
			Where("id = ? AND seats_available < seats_total", eventID).
			Updates(map[string]interface{}{
				"seats_available": gorm.Expr("seats_available + 1"),
				"attendee_count":  gorm.Expr("attendee_count - 1"),
			}).Error
	})
}

// GetBadge retrieves the badge row for (account, event, achievement)
func (s *sqliteStore) GetBadge(ctx context.Context, accountID, eventID int64, achievementType string) (*schema.BadgeRecord, error) {
	var badge schema.BadgeRecord
	if err := s.db.WithContext(ctx).
		First(&badge, "account_id = ? AND event_id = ? AND achievement_type = ?",
			accountID, eventID, achievementType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadgeNotFound
		}
		return nil, err
	}
	return &badge, nil
}

// GetBadgeByToken retrieves a badge row by its ledger token id
func (s *sqliteStore) GetBadgeByToken(ctx context.Context, tokenID int64) (*schema.BadgeRecord, error) {
	var badge schema.BadgeRecord
	if err := s.db.WithContext(ctx).First(&badge, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadgeNotFound
		}
		return nil, err
	}
	return &badge, nil
}

// ListBadgesByAccount retrieves all badge rows for an account
func (s *sqliteStore) ListBadgesByAccount(ctx context.Context, accountID int64) ([]schema.BadgeRecord, error) {
	var badges []schema.BadgeRecord
	if err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

// ListBadgesByMinter retrieves all badge rows confirmed by a verifier
func (s *sqliteStore) ListBadgesByMinter(ctx context.Context, minterID int64) ([]schema.BadgeRecord, error) {
	var badges []schema.BadgeRecord
	if err := s.db.WithContext(ctx).
		Where("minted_by = ?", minterID).
		Order("created_at ASC").
		Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

// ListBadges retrieves badge rows across all accounts, newest first
func (s *sqliteStore) ListBadges(ctx context.Context, filter BadgeFilter) ([]schema.BadgeRecord, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if filter.EventID != 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.AchievementType != "" {
		query = query.Where("achievement_type = ?", filter.AchievementType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var badges []schema.BadgeRecord
	if err := query.Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

// CommitAchievement records an achievement off-chain in one transaction: the
// badge index row, the balance credit and the optional counter updates all
// land together or not at all
func (s *sqliteStore) CommitAchievement(ctx context.Context, input CommitAchievementInput) (*schema.BadgeRecord, error) {
	if input.Badge == nil {
		return nil, fmt.Errorf("commit achievement: badge is required")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.BadgeRecord{}).
			Where("account_id = ? AND event_id = ? AND achievement_type = ?",
				input.Badge.AccountID, input.Badge.EventID, input.Badge.AchievementType).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyMinted
		}

		now := time.Now()
		input.Badge.CreatedAt = now
		input.Badge.UpdatedAt = now
		if input.Badge.State == "" {
			input.Badge.State = schema.BadgeStateUnclaimed
		}
		if err := tx.Create(input.Badge).Error; err != nil {
			return err
		}

		if input.RewardAmount != 0 {
			if err := adjustBalanceTx(tx, input.Badge.AccountID, input.RewardAmount); err != nil {
				return err
			}
		}

		if input.MarkEnrollmentRewarded {
			if err := tx.Model(&schema.Enrollment{}).
				Where("account_id = ? AND event_id = ?", input.Badge.AccountID, input.Badge.EventID).
				Update("reward_granted", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return input.Badge, nil
}

// MarkBadgeMinted records a successful external mint
func (s *sqliteStore) MarkBadgeMinted(ctx context.Context, badgeID int64, result MintResult) error {
	update := s.db.WithContext(ctx).
		Model(&schema.BadgeRecord{}).
		Where("id = ?", badgeID).
		Updates(map[string]interface{}{
			"state":        schema.BadgeStateMinted,
			"token_id":     result.TokenID,
			"metadata_uri": result.MetadataURI,
			"tx_hash":      result.TxHash,
			"network":      result.Network,
			"updated_at":   time.Now(),
		})
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected == 0 {
		return domain.ErrBadgeNotFound
	}
	return nil
}

// MarkBadgeMintFailed records a definitive mint failure
func (s *sqliteStore) MarkBadgeMintFailed(ctx context.Context, badgeID int64) error {
	update := s.db.WithContext(ctx).
		Model(&schema.BadgeRecord{}).
		Where("id = ?", badgeID).
		Updates(map[string]interface{}{
			"state":      schema.BadgeStateMintFailed,
			"updated_at": time.Now(),
		})
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected == 0 {
		return domain.ErrBadgeNotFound
	}
	return nil
}

// CreateConversionRequest appends a pending conversion row
func (s *sqliteStore) CreateConversionRequest(ctx context.Context, request *schema.ConversionRequest) error {
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = string(domain.ConversionPending)
	}
	return s.db.WithContext(ctx).Create(request).Error
}

// ClaimConversion moves a pending request to processing. The status guard in
// the UPDATE makes this an at-most-once handoff.
func (s *sqliteStore) ClaimConversion(ctx context.Context, reference string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.ConversionRequest{}).
		Where("reference = ? AND status = ?", reference, string(domain.ConversionPending)).
		Updates(map[string]interface{}{
			"status":     string(domain.ConversionProcessing),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CompleteConversion marks the request completed and debits the account
// balance in the same transaction. The debit happens only here, after the
// external transfer already succeeded.
func (s *sqliteStore) CompleteConversion(ctx context.Context, reference string, txHash string, externalAmount int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request schema.ConversionRequest
		if err := tx.First(&request, "reference = ?", reference).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrConversionNotFound
			}
			return err
		}

		if err := adjustBalanceTx(tx, request.AccountID, -request.SDCAmount); err != nil {
			return err
		}

		return tx.Model(&schema.ConversionRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":          string(domain.ConversionCompleted),
				"tx_hash":         txHash,
				"external_amount": externalAmount,
				"updated_at":      time.Now(),
			}).Error
	})
}

// FailConversion marks the request failed with a reason
func (s *sqliteStore) FailConversion(ctx context.Context, reference string, reason string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.ConversionRequest{}).
		Where("reference = ?", reference).
		Updates(map[string]interface{}{
			"status":         string(domain.ConversionFailed),
			"failure_reason": reason,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConversionNotFound
	}
	return nil
}

// GetConversion retrieves a conversion request by reference
func (s *sqliteStore) GetConversion(ctx context.Context, reference string) (*schema.ConversionRequest, error) {
	var request schema.ConversionRequest
	if err := s.db.WithContext(ctx).First(&request, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversionNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListConversionsByAccount retrieves the account's conversion history, newest
// first
func (s *sqliteStore) ListConversionsByAccount(ctx context.Context, accountID int64) ([]schema.ConversionRequest, error) {
	var requests []schema.ConversionRequest
	if err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
