package referral

import (
	"math"
	"math/big"
	"testing"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerPage(t *testing.T) {
	parent := common.BigToAddress(big.NewInt(1))
	l := NewLedger()
	for i := uint64(0); i < 7; i++ {
		l.Append(parent, pkg.Record{Addr: common.BigToAddress(new(big.Int).SetUint64(100 + i)), BindTime: i})
	}

	times := func(items []pkg.Record) []uint64 {
		out := make([]uint64, 0, len(items))
		for _, item := range items {
			out = append(out, item.BindTime)
		}
		return out
	}

	t.Run("Full first page", func(t *testing.T) {
		total, items, err := l.Page(parent, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), total)
		assert.Equal(t, []uint64{6, 5, 4}, times(items))
	})

	t.Run("Short last page", func(t *testing.T) {
		total, items, err := l.Page(parent, 3, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), total)
		assert.Equal(t, []uint64{0}, times(items))
	})

	t.Run("Page far past the end", func(t *testing.T) {
		total, items, err := l.Page(parent, 1000, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), total)
		assert.Empty(t, items)
	})

	t.Run("Zero page size yields nothing", func(t *testing.T) {
		total, items, err := l.Page(parent, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), total)
		assert.Empty(t, items)
	})

	t.Run("Page size larger than the ledger", func(t *testing.T) {
		_, items, err := l.Page(parent, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, []uint64{6, 5, 4, 3, 2, 1, 0}, times(items))
	})

	t.Run("Page zero is invalid", func(t *testing.T) {
		_, _, err := l.Page(parent, 0, 3)
		require.ErrorIs(t, err, pkg.ErrInvalidPage)
	})

	t.Run("Window arithmetic that overflows is refused", func(t *testing.T) {
		_, _, err := l.Page(parent, math.MaxUint64, 2)
		require.ErrorIs(t, err, pkg.ErrOverflow)
	})

	t.Run("Pages do not alias the ledger", func(t *testing.T) {
		_, items, err := l.Page(parent, 1, 1)
		require.NoError(t, err)
		items[0].BindTime = 999

		_, again, err := l.Page(parent, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), again[0].BindTime)
	})
}
