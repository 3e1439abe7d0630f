package schema

import "time"

// ConversionRequest represents the conversion_requests table - an append-only
// log of balance conversion and external claim attempts. Rows are never
// deleted; every attempt, including failures, stays in history.
type ConversionRequest struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Reference is a ULID assigned at creation, used as the external
	// correlation id for the request
	Reference string `gorm:"column:reference;uniqueIndex;not null"`
	// AccountID is the requesting account
	AccountID int64 `gorm:"column:account_id;index;not null"`
	// Kind is domain.ConversionKind - "conversion" for internal balance
	// movement, "claim" for an external ledger payout
	Kind string `gorm:"column:kind;not null"`
	// Status is domain.ConversionStatus - pending, processing, completed
	// or failed
	Status string `gorm:"column:status;not null;default:pending"`
	// SDCAmount is the off-chain balance amount being converted
	SDCAmount int64 `gorm:"column:sdc_amount;not null"`
	// ExternalAmount is the amount delivered externally, in whole tokens
	ExternalAmount int64 `gorm:"column:external_amount"`
	// DestinationAddress is the wallet the claim pays out to; empty for
	// internal conversions
	DestinationAddress string `gorm:"column:destination_address;type:text"`
	// TxHash of the external transfer once completed
	TxHash string `gorm:"column:tx_hash;type:text"`
	// FailureReason records why a failed request failed
	FailureReason string    `gorm:"column:failure_reason;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the ConversionRequest model
func (ConversionRequest) TableName() string {
	return "conversion_requests"
}
