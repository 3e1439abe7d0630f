package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/sundevilsync/sds-backend/internal/api/middleware"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/reconcile"
	"github.com/sundevilsync/sds-backend/internal/store"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Register creates an account and returns a signed token
	// POST /api/v1/auth/register
	Register(c *gin.Context)

	// Login authenticates an account and returns a signed token
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// GetProfile returns the authenticated account
	// GET /api/v1/me
	GetProfile(c *gin.Context)

	// LinkWallet attaches an external ledger address to the account
	// POST /api/v1/me/wallet
	LinkWallet(c *gin.Context)

	// GetBalance returns the cached balance and a best-effort on-chain read
	// GET /api/v1/me/balance
	GetBalance(c *gin.Context)

	// ListEvents returns all events with their live seat counters
	// GET /api/v1/events
	ListEvents(c *gin.Context)

	// GetEvent returns a single event
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// ToggleEnrollment enrolls the account in the event, or cancels the
	// existing enrollment when called again
	// POST /api/v1/events/:id/enrollment
	ToggleEnrollment(c *gin.Context)

	// CancelEnrollment cancels an enrollment and releases the seat
	// DELETE /api/v1/events/:id/enrollment
	CancelEnrollment(c *gin.Context)

	// ListEnrollments returns the account's live enrollments
	// GET /api/v1/me/enrollments
	ListEnrollments(c *gin.Context)

	// ListGroups returns all student groups
	// GET /api/v1/groups
	ListGroups(c *gin.Context)

	// GetGroup returns a single group
	// GET /api/v1/groups/:id
	GetGroup(c *gin.Context)

	// ToggleMembership joins or leaves a group
	// POST /api/v1/groups/:id/membership
	ToggleMembership(c *gin.Context)

	// ListMemberships returns the group ids the account belongs to
	// GET /api/v1/me/memberships
	ListMemberships(c *gin.Context)

	// ConfirmAttendance verifies a scanned enrollment badge and mints the
	// attended badge (verifier or admin only)
	// POST /api/v1/attendance
	ConfirmAttendance(c *gin.Context)

	// ListMyBadges returns the account's badge index rows
	// GET /api/v1/me/badges
	ListMyBadges(c *gin.Context)

	// ListIssuedBadges returns the badges the caller confirmed as verifier
	// GET /api/v1/me/badges/issued
	ListIssuedBadges(c *gin.Context)

	// ListBadges returns the most recently committed badges across all
	// accounts, optionally filtered by event or achievement type
	// GET /api/v1/badges
	ListBadges(c *gin.Context)

	// GetBadge returns a badge by its ledger token id
	// GET /api/v1/badges/:token_id
	GetBadge(c *gin.Context)

	// CreateConversion converts cached balance to external currency
	// POST /api/v1/conversions
	CreateConversion(c *gin.Context)

	// ListConversions returns the account's conversion history
	// GET /api/v1/conversions
	ListConversions(c *gin.Context)

	// ClaimReward mints cached balance to the account's linked wallet
	// POST /api/v1/claims
	ClaimReward(c *gin.Context)

	// MintBadge grants an achievement badge directly (admin only)
	// POST /api/v1/admin/badges
	MintBadge(c *gin.Context)

	// DistributeReward sends reward tokens to one wallet (admin only)
	// POST /api/v1/admin/rewards
	DistributeReward(c *gin.Context)

	// BatchDistributeRewards sends reward tokens to many wallets (admin only)
	// POST /api/v1/admin/rewards/batch
	BatchDistributeRewards(c *gin.Context)

	// UpdateAccountRole changes an account's role (admin only)
	// PUT /api/v1/admin/accounts/:id/role
	UpdateAccountRole(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// LedgerStatus describes the ledger gateway in use
	// GET /api/v1/ledger/status
	LedgerStatus(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine  *reconcile.Engine
	store   store.Store
	authCfg middleware.AuthConfig
}

// NewHandler creates a new REST API handler
func NewHandler(engine *reconcile.Engine, s store.Store, authCfg middleware.AuthConfig) Handler {
	return &handler{
		engine:  engine,
		store:   s,
		authCfg: authCfg,
	}
}

// Register creates an account and returns a signed token
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetAccountByUsername(ctx, req.Username); err == nil {
		respondWithError(c, http.StatusConflict, errCodeConflict, "username already taken")
		return
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		respondDomainError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	account := &schema.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
	}
	if req.WalletAddress != "" {
		account.WalletAddress = &req.WalletAddress
	}
	if err := h.store.CreateAccount(ctx, account); err != nil {
		respondDomainError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, account)
}

// Login authenticates an account and returns a signed token
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	account, err := h.store.GetAccountByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// the same response for unknown users and bad passwords
		respondUnauthorized(c, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		respondUnauthorized(c, "invalid credentials")
		return
	}

	h.respondWithToken(c, http.StatusOK, account)
}

func (h *handler) respondWithToken(c *gin.Context, status int, account *schema.Account) {
	token, err := middleware.IssueToken(h.authCfg, account, time.Now())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(status, AuthResponse{
		Token:   token,
		Account: toAccountResponse(account),
	})
}

// GetProfile returns the authenticated account
func (h *handler) GetProfile(c *gin.Context) {
	account, err := h.store.GetAccount(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// LinkWallet attaches an external ledger address to the account
func (h *handler) LinkWallet(c *gin.Context) {
	var req LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	ctx := c.Request.Context()
	accountID := middleware.AccountID(c)
	if err := h.store.LinkWallet(ctx, accountID, req.WalletAddress); err != nil {
		respondDomainError(c, err)
		return
	}
	account, err := h.store.GetAccount(ctx, accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// GetBalance returns the cached balance and a best-effort on-chain read
func (h *handler) GetBalance(c *gin.Context) {
	result, err := h.engine.GetBalance(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListEvents returns all events with their live seat counters
func (h *handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent returns a single event
func (h *handler) GetEvent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	event, err := h.store.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ToggleEnrollment enrolls the account in the event, or cancels the existing
// enrollment when called again
func (h *handler) ToggleEnrollment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	result, err := h.engine.Enroll(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelEnrollment cancels an enrollment and releases the seat
func (h *handler) CancelEnrollment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	result, err := h.engine.CancelEnrollment(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListEnrollments returns the account's live enrollments
func (h *handler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.store.ListEnrollments(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

// ListGroups returns all student groups
func (h *handler) ListGroups(c *gin.Context) {
	groups, err := h.store.ListGroups(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroup returns a single group
func (h *handler) GetGroup(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group, err := h.store.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// ToggleMembership joins or leaves a group
func (h *handler) ToggleMembership(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	member, err := h.store.ToggleMembership(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group_id": id, "member": member})
}

// ListMemberships returns the group ids the account belongs to
func (h *handler) ListMemberships(c *gin.Context) {
	groupIDs, err := h.store.ListMemberships(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group_ids": groupIDs})
}

// ConfirmAttendance verifies a scanned enrollment badge and mints the
// attended badge
func (h *handler) ConfirmAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	result, err := h.engine.ConfirmAttendance(c.Request.Context(), middleware.AccountID(c), req.TokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMyBadges returns the account's badge index rows
func (h *handler) ListMyBadges(c *gin.Context) {
	badges, err := h.engine.AccountBadges(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// ListIssuedBadges returns the badges the caller confirmed as verifier
func (h *handler) ListIssuedBadges(c *gin.Context) {
	badges, err := h.engine.BadgesIssuedBy(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

const (
	defaultBadgeListLimit = 50
	maxBadgeListLimit     = 200
)

// ListBadges returns the most recently committed badges across all accounts
func (h *handler) ListBadges(c *gin.Context) {
	filter := store.BadgeFilter{Limit: defaultBadgeListLimit}
	if v := c.Query("event_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			respondBadRequest(c, "Invalid event_id")
			return
		}
		filter.EventID = id
	}
	if v := c.Query("type"); v != "" {
		filter.AchievementType = v
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxBadgeListLimit {
			respondBadRequest(c, "Invalid limit")
			return
		}
		filter.Limit = n
	}

	badges, err := h.engine.ListBadges(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetBadge returns a badge by its ledger token id
func (h *handler) GetBadge(c *gin.Context) {
	tokenID, ok := paramID(c, "token_id")
	if !ok {
		return
	}
	badge, err := h.engine.BadgeByToken(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, badge)
}

// CreateConversion converts cached balance to external currency
func (h *handler) CreateConversion(c *gin.Context) {
	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	result, err := h.engine.RequestConversion(c.Request.Context(), middleware.AccountID(c), req.Amount, req.Destination)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListConversions returns the account's conversion history
func (h *handler) ListConversions(c *gin.Context) {
	history, err := h.engine.ConversionHistory(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversions": history})
}

// ClaimReward mints cached balance to the account's linked wallet
func (h *handler) ClaimReward(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	result, err := h.engine.ClaimReward(c.Request.Context(), middleware.AccountID(c), req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// MintBadge grants an achievement badge directly
func (h *handler) MintBadge(c *gin.Context) {
	var req MintBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	result, err := h.engine.MintBadge(c.Request.Context(), middleware.AccountID(c), reconcile.ManualMintInput{
		AccountID:       req.AccountID,
		EventID:         req.EventID,
		AchievementType: domain.AchievementType(req.AchievementType),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DistributeReward sends reward tokens to one wallet
func (h *handler) DistributeReward(c *gin.Context) {
	var item reconcile.DistributionItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.engine.DistributeReward(c.Request.Context(), middleware.AccountID(c), item)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchDistributeRewards sends reward tokens to many wallets
func (h *handler) BatchDistributeRewards(c *gin.Context) {
	var req BatchDistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	results, err := h.engine.BatchDistributeRewards(c.Request.Context(), middleware.AccountID(c), req.Items)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// UpdateAccountRole changes an account's role
func (h *handler) UpdateAccountRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
		return
	}

	if err := h.store.UpdateAccountRole(c.Request.Context(), id, domain.Role(req.Role)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": id, "role": req.Role})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// LedgerStatus describes the ledger gateway in use
func (h *handler) LedgerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.GatewayStatus())
}

// paramID parses a positive integer path parameter, responding with a 400 on
// failure
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
