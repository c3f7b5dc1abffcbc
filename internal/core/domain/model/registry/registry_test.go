package registry_test

import (
	"testing"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/registry"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerAddr   = kernel.MustAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	partnerAddr = kernel.MustAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

func TestNewRoleRegistry(t *testing.T) {
	t.Run("should create registry with owner and no partners", func(t *testing.T) {
		r, err := registry.NewRoleRegistry(ownerAddr)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsOwner(ownerAddr))
		assert.False(t, r.IsPartner(ownerAddr))
		assert.Empty(t, r.Partners())
	})

	t.Run("should reject zero owner address", func(t *testing.T) {
		var zero kernel.Address

		r, err := registry.NewRoleRegistry(zero)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("zero value registry fails validation", func(t *testing.T) {
		var r registry.RoleRegistry

		assert.Equal(t, registry.ErrRegistryIsNotConstructed, r.Validate())
	})
}

func TestRoleRegistry_AddPartner(t *testing.T) {
	t.Run("registered partner passes membership check", func(t *testing.T) {
		r, _ := registry.NewRoleRegistry(ownerAddr)

		require.NoError(t, r.AddPartner(partnerAddr))

		assert.True(t, r.IsPartner(partnerAddr))
		assert.Len(t, r.Partners(), 1)
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		r, _ := registry.NewRoleRegistry(ownerAddr)

		require.NoError(t, r.AddPartner(partnerAddr))
		require.NoError(t, r.AddPartner(partnerAddr))

		assert.Len(t, r.Partners(), 1)
	})

	t.Run("zero address is rejected", func(t *testing.T) {
		r, _ := registry.NewRoleRegistry(ownerAddr)
		var zero kernel.Address

		require.Error(t, r.AddPartner(zero))
	})
}

func TestRestoreRoleRegistry(t *testing.T) {
	r, err := registry.RestoreRoleRegistry(ownerAddr, []kernel.Address{partnerAddr})

	require.NoError(t, err)
	assert.True(t, r.IsPartner(partnerAddr))
}

func TestSettlementBalance(t *testing.T) {
	t.Run("credits accumulate", func(t *testing.T) {
		s, err := registry.RestoreSettlementBalance(0)
		require.NoError(t, err)

		require.NoError(t, s.Credit(100))
		require.NoError(t, s.Credit(50))

		assert.Equal(t, kernel.Amount(150), s.Balance())
	})

	t.Run("withdraw empties the balance atomically", func(t *testing.T) {
		s, _ := registry.RestoreSettlementBalance(130)

		amount, err := s.Withdraw()

		require.NoError(t, err)
		assert.Equal(t, kernel.Amount(130), amount)
		assert.Equal(t, kernel.Amount(0), s.Balance())
	})

	t.Run("withdrawing a zero balance is rejected", func(t *testing.T) {
		s, _ := registry.RestoreSettlementBalance(0)

		_, err := s.Withdraw()

		assert.ErrorIs(t, err, errs.ErrNothingToWithdraw)
	})

	t.Run("crediting zero is rejected", func(t *testing.T) {
		s, _ := registry.RestoreSettlementBalance(0)

		require.Error(t, s.Credit(0))
	})

	t.Run("negative restored balance is rejected", func(t *testing.T) {
		_, err := registry.RestoreSettlementBalance(-1)

		require.Error(t, err)
	})
}
