package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWalletAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{"valid lowercase", "0x1234567890abcdef1234567890abcdef12345678", true},
		{"valid checksummed", "0x52908400098527886E0F7030069857D2E4169EE7", true},
		{"missing prefix", "1234567890abcdef1234567890abcdef12345678", false},
		{"too short", "0x1234", false},
		{"too long", "0x1234567890abcdef1234567890abcdef123456789", false},
		{"non-hex characters", "0xzzzz567890abcdef1234567890abcdef12345678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidWalletAddress(tt.address))
		})
	}
}

func TestBaseUnitScaling(t *testing.T) {
	t.Run("scales whole tokens by decimals", func(t *testing.T) {
		v := ToBaseUnits(50, 18)
		expected, _ := new(big.Int).SetString("50000000000000000000", 10)
		assert.Zero(t, v.Cmp(expected))
	})

	t.Run("round trips", func(t *testing.T) {
		assert.Equal(t, int64(100), FromBaseUnits(ToBaseUnits(100, 18), 18))
		assert.Equal(t, int64(0), FromBaseUnits(ToBaseUnits(0, 18), 18))
	})

	t.Run("truncates sub-token dust", func(t *testing.T) {
		v := ToBaseUnits(1, 18)
		v.Add(v, big.NewInt(999))
		assert.Equal(t, int64(1), FromBaseUnits(v, 18))
	})

	t.Run("nil is zero", func(t *testing.T) {
		assert.Equal(t, int64(0), FromBaseUnits(nil, 18))
	})
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFound(ErrEventNotFound))
	assert.True(t, IsNotFound(ErrEnrollmentNotFound))
	assert.True(t, IsConflict(ErrEventFull))
	assert.True(t, IsConflict(ErrAlreadyMinted))
	assert.True(t, IsPrecondition(ErrWalletRequired))
	assert.True(t, IsPrecondition(ErrInsufficientBalance))
	assert.True(t, IsValidation(ErrInvalidAddress))
	assert.True(t, IsLedger(ErrLedgerUnavailable))
	assert.True(t, IsPolicy(ErrUnknownAchievement))

	assert.False(t, IsConflict(ErrEventNotFound))
	assert.False(t, IsNotFound(ErrEventFull))
}
