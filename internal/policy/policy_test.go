package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundevilsync/sds-backend/internal/domain"
)

func TestFor(t *testing.T) {
	t.Run("enrolled pays 50 by transfer", func(t *testing.T) {
		r, err := For(domain.AchievementEnrolled)
		require.NoError(t, err)
		assert.Equal(t, int64(50), r.Amount)
		assert.Equal(t, "enrolled", r.BadgeLabel)
		assert.Equal(t, FundTransfer, r.Funding)
	})

	t.Run("attended pays 100 by transfer", func(t *testing.T) {
		r, err := For(domain.AchievementAttended)
		require.NoError(t, err)
		assert.Equal(t, int64(100), r.Amount)
		assert.Equal(t, "attended", r.BadgeLabel)
		assert.Equal(t, FundTransfer, r.Funding)
	})

	t.Run("claims mint new supply", func(t *testing.T) {
		r, err := For(domain.AchievementClaim)
		require.NoError(t, err)
		assert.Equal(t, FundMint, r.Funding)
	})

	t.Run("unknown achievement is a policy error", func(t *testing.T) {
		_, err := For(domain.AchievementType("volunteered"))
		assert.ErrorIs(t, err, domain.ErrUnknownAchievement)
		assert.True(t, domain.IsPolicy(err))
	})
}
