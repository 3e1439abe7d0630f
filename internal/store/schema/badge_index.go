package schema

import "time"

// Badge reconciliation states. A row exists once the local commitment is
// recorded; TxHash/TokenID fill in once the external mint succeeds.
const (
	// BadgeStateUnclaimed - committed off-chain, no mint attempted or mint pending
	BadgeStateUnclaimed = "unclaimed"
	// BadgeStateMinted - the external ledger holds the badge token
	BadgeStateMinted = "minted"
	// BadgeStateMintFailed - the mint was attempted and definitively failed;
	// operator intervention is required, the engine never retries on its own
	BadgeStateMintFailed = "mint_failed"
)

// BadgeRecord represents the badge_index table - the local index of
// achievement badges, one row per (account, event, achievement type). The row
// is the durable record that the achievement was committed, regardless of
// whether the external mint ever lands.
type BadgeRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AccountID keys deduplication; an account earns a given achievement
	// for a given event at most once, even if its wallet changes later
	AccountID int64 `gorm:"column:account_id;uniqueIndex:idx_badge_account_event_type;not null"`
	// EventID of the event this achievement belongs to
	EventID int64 `gorm:"column:event_id;uniqueIndex:idx_badge_account_event_type;not null"`
	// AchievementType is one of the domain.AchievementType values
	AchievementType string `gorm:"column:achievement_type;uniqueIndex:idx_badge_account_event_type;not null"`
	// SubjectAddress is a snapshot of the account's wallet address at
	// commitment time, or empty when no wallet was linked
	SubjectAddress string `gorm:"column:subject_address;type:text"`
	// EventName and EventDate are denormalized for badge listings
	EventName string `gorm:"column:event_name;type:text"`
	EventDate string `gorm:"column:event_date;type:text"`
	// State is one of the BadgeState constants above
	State string `gorm:"column:state;not null;default:unclaimed"`
	// TokenID is the ledger-assigned token id; nil until minted
	TokenID *int64 `gorm:"column:token_id"`
	// MetadataURI is the token metadata location reported by the ledger
	MetadataURI string `gorm:"column:metadata_uri;type:text"`
	// TxHash of the successful mint transaction
	TxHash string `gorm:"column:tx_hash;type:text"`
	// Network label of the ledger the badge was minted on
	Network string `gorm:"column:network;type:text"`
	// MintedBy is the verifier or admin account that confirmed the
	// achievement; nil for self-service achievements
	MintedBy  *int64    `gorm:"column:minted_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the BadgeRecord model
func (BadgeRecord) TableName() string {
	return "badge_index"
}
