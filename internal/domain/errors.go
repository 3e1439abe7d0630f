package domain

import "errors"

var (
	// ErrAccountNotFound is returned when an account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrEventNotFound is returned when an event does not exist
	ErrEventNotFound = errors.New("event not found")

	// ErrGroupNotFound is returned when a group does not exist
	ErrGroupNotFound = errors.New("group not found")

	// ErrEnrollmentNotFound is returned when no enrollment (or enrollment
	// badge) exists for the requested account/event pair
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrBadgeNotFound is returned when a badge token id is unknown to the ledger
	ErrBadgeNotFound = errors.New("badge not found")

	// ErrConversionNotFound is returned when a conversion request id is unknown
	ErrConversionNotFound = errors.New("conversion request not found")

	// ErrEventFull is returned when no seats remain for an event
	ErrEventFull = errors.New("event is full")

	// ErrAlreadyMinted is returned when a badge already exists for the
	// (account, event, achievement type) tuple
	ErrAlreadyMinted = errors.New("badge already minted")

	// ErrWalletRequired is returned when an operation needs a linked wallet
	// address and the account has none
	ErrWalletRequired = errors.New("wallet address not linked")

	// ErrInsufficientBalance is returned when the cached off-chain balance
	// cannot cover the requested amount
	ErrInsufficientBalance = errors.New("insufficient off-chain balance")

	// ErrInvalidAddress is returned for malformed external ledger addresses
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrInvalidAmount is returned for zero or negative amounts
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrLedgerUnavailable wraps transport and confirmation failures from
	// the external ledger
	ErrLedgerUnavailable = errors.New("external ledger unavailable")

	// ErrForbidden is returned when the acting account's role does not allow
	// the operation
	ErrForbidden = errors.New("operation not allowed for this role")

	// ErrUnknownAchievement indicates a policy lookup for an achievement type
	// that has no reward entry; this is a programming defect and aborts the
	// request, never the process
	ErrUnknownAchievement = errors.New("unknown achievement type")
)

// IsNotFound reports whether err is a missing-entity error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound) ||
		errors.Is(err, ErrBadgeNotFound) ||
		errors.Is(err, ErrConversionNotFound)
}

// IsConflict reports whether err indicates a state conflict (event full,
// duplicate badge).
func IsConflict(err error) bool {
	return errors.Is(err, ErrEventFull) || errors.Is(err, ErrAlreadyMinted)
}

// IsPrecondition reports whether err is a failed precondition detected before
// any mutation.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrWalletRequired) || errors.Is(err, ErrInsufficientBalance)
}

// IsForbidden reports whether err is a role authorization failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidation reports whether err indicates malformed input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAddress) || errors.Is(err, ErrInvalidAmount)
}

// IsLedger reports whether err came from the external ledger gateway.
func IsLedger(err error) bool {
	return errors.Is(err, ErrLedgerUnavailable)
}

// IsPolicy reports whether err is a reward policy defect.
func IsPolicy(err error) bool {
	return errors.Is(err, ErrUnknownAchievement)
}
