package services_test

import (
	"testing"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDGenerator_Generate(t *testing.T) {
	creator := kernel.MustAddress("0x1234567890123456789012345678901234567890")
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("produces a valid 256-bit identifier", func(t *testing.T) {
		g := services.NewOrderIDGenerator()

		id := g.Generate(creator, at)

		require.NoError(t, id.Validate())
		assert.Len(t, id.Bytes(), kernel.OrderIDLength)
	})

	t.Run("same caller at the same instant yields distinct ids", func(t *testing.T) {
		g := services.NewOrderIDGenerator()

		first := g.Generate(creator, at)
		second := g.Generate(creator, at)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("deterministic given identical inputs", func(t *testing.T) {
		// Two fresh generators walk the same nonce sequence.
		a := services.NewOrderIDGenerator()
		b := services.NewOrderIDGenerator()

		assert.True(t, a.Generate(creator, at).IsEqual(b.Generate(creator, at)))
	})

	t.Run("different creators yield distinct ids", func(t *testing.T) {
		other := kernel.MustAddress("0x0987654321098765432109876543210987654321")
		a := services.NewOrderIDGenerator()
		b := services.NewOrderIDGenerator()

		assert.False(t, a.Generate(creator, at).IsEqual(b.Generate(other, at)))
	})

	t.Run("different timestamps yield distinct ids", func(t *testing.T) {
		a := services.NewOrderIDGenerator()
		b := services.NewOrderIDGenerator()

		assert.False(t, a.Generate(creator, at).IsEqual(b.Generate(creator, at.Add(time.Second))))
	})
}
