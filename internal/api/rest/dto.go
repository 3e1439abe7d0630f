package rest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sundevilsync/sds-backend/internal/reconcile"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

const maxBatchRecipients = 100

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// Validate validates the request body
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return errors.New("a valid email is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

// LinkWalletRequest is the request body for linking an external wallet
type LinkWalletRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// Validate validates the request body
func (r *LinkWalletRequest) Validate() error {
	if strings.TrimSpace(r.WalletAddress) == "" {
		return errors.New("wallet_address is required")
	}
	return nil
}

// AttendanceRequest is the request body for confirming attendance
type AttendanceRequest struct {
	// TokenID identifies the enrollment badge scanned at the door
	TokenID int64 `json:"token_id"`
}

// Validate validates the request body
func (r *AttendanceRequest) Validate() error {
	if r.TokenID <= 0 {
		return errors.New("token_id is required")
	}
	return nil
}

// ConversionRequest is the request body for converting cached balance
type ConversionRequest struct {
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

// Validate validates the request body
func (r *ConversionRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if strings.TrimSpace(r.Destination) == "" {
		return errors.New("destination is required")
	}
	return nil
}

// ClaimRequest is the request body for claiming cached balance to the linked
// wallet
type ClaimRequest struct {
	Amount int64 `json:"amount"`
}

// Validate validates the request body
func (r *ClaimRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// BatchDistributeRequest is the request body for batch reward distribution
type BatchDistributeRequest struct {
	Items []reconcile.DistributionItem `json:"items"`
}

// Validate validates the request body
func (r *BatchDistributeRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("items is required")
	}
	if len(r.Items) > maxBatchRecipients {
		return fmt.Errorf("maximum %d recipients allowed", maxBatchRecipients)
	}
	return nil
}

// MintBadgeRequest is the request body for an admin manual badge mint
type MintBadgeRequest struct {
	AccountID       int64  `json:"account_id"`
	EventID         int64  `json:"event_id"`
	AchievementType string `json:"achievement_type"`
}

// Validate validates the request body
func (r *MintBadgeRequest) Validate() error {
	if r.AccountID <= 0 {
		return errors.New("account_id is required")
	}
	if r.EventID <= 0 {
		return errors.New("event_id is required")
	}
	if strings.TrimSpace(r.AchievementType) == "" {
		return errors.New("achievement_type is required")
	}
	return nil
}

// UpdateRoleRequest is the request body for changing an account role
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate validates the request body
func (r *UpdateRoleRequest) Validate() error {
	switch r.Role {
	case "student", "verifier", "admin":
		return nil
	default:
		return fmt.Errorf("unknown role: %s", r.Role)
	}
}

// AccountResponse is the public view of an account
type AccountResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	RewardBalance int64     `json:"reward_balance"`
	WalletAddress *string   `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

func toAccountResponse(account *schema.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID,
		Username:      account.Username,
		Email:         account.Email,
		Role:          string(account.Role),
		RewardBalance: account.RewardBalance,
		WalletAddress: account.WalletAddress,
		CreatedAt:     account.CreatedAt,
	}
}
