package kernel_test

import (
	"strings"
	"testing"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromString(t *testing.T) {
	t.Run("should parse valid 0x-prefixed address", func(t *testing.T) {
		a, err := kernel.AddressFromString("0x00000000000000000000000000000000000000aa")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "0x00000000000000000000000000000000000000aa", a.String())
	})

	t.Run("should normalize case", func(t *testing.T) {
		a, err := kernel.AddressFromString("0x00000000000000000000000000000000000000AA")

		require.NoError(t, err)
		assert.Equal(t, "0x00000000000000000000000000000000000000aa", a.String())
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.AddressFromString("0xabcd")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-hex input", func(t *testing.T) {
		_, err := kernel.AddressFromString("0x" + strings.Repeat("zz", 20))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the zero address", func(t *testing.T) {
		_, err := kernel.AddressFromString("0x" + strings.Repeat("00", 20))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var a kernel.Address

		require.Error(t, a.Validate())
		assert.True(t, a.IsZero())
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		a := kernel.MustAddress("0x1111111111111111111111111111111111111111")

		require.NoError(t, a.Validate())
		assert.False(t, a.IsZero())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a := kernel.MustAddress("0x1111111111111111111111111111111111111111")
	b := kernel.MustAddress("0x1111111111111111111111111111111111111111")
	c := kernel.MustAddress("0x2222222222222222222222222222222222222222")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_Bytes_RoundTrip(t *testing.T) {
	a := kernel.MustAddress("0x1234567890123456789012345678901234567890")

	restored, err := kernel.AddressFromBytes(a.Bytes())

	require.NoError(t, err)
	assert.True(t, a.IsEqual(restored))
}
