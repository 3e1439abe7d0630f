package schema

import (
	"time"

	"github.com/sundevilsync/sds-backend/internal/domain"
)

// Account represents the accounts table - a registered user of the platform
type Account struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Username is the unique display handle
	Username string `gorm:"column:username;not null;uniqueIndex;type:text"`
	// Email is the unique contact address
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// PasswordHash is the bcrypt hash of the account password
	PasswordHash string `gorm:"column:password_hash;not null;type:text"`
	// Role is the authorization level (student, verifier, admin)
	Role domain.Role `gorm:"column:role;not null;default:student;type:text"`
	// RewardBalance is the cached off-chain reward balance in whole tokens.
	// Authoritative only when the external ledger is mocked or unreachable.
	RewardBalance int64 `gorm:"column:reward_balance;not null;default:100"`
	// WalletAddress is the linked external ledger address, nil until linked
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
