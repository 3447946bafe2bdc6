package pkg_test

import (
	"testing"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	t.Run("Mixed case and padding are accepted", func(t *testing.T) {
		a, err := pkg.ParseAddress("  0x00000000000000000000000000000000000A11CE ")
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xa11ce"), a)
	})

	t.Run("The zero address parses to None", func(t *testing.T) {
		a, err := pkg.ParseAddress("0x0000000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.Equal(t, pkg.None, a)
	})

	t.Run("Garbage is an invalid identity", func(t *testing.T) {
		for _, s := range []string{"", "alice", "0x1234", "0xzz00000000000000000000000000000000000000"} {
			_, err := pkg.ParseAddress(s)
			assert.ErrorIs(t, err, pkg.ErrInvalidIdentity, s)
		}
	})
}

func TestIsRejection(t *testing.T) {
	assert.True(t, pkg.IsRejection(errors.Wrap(pkg.ErrCycleDetected, "grandparent")))
	assert.True(t, pkg.IsRejection(pkg.ErrInvalidPage))
	assert.False(t, pkg.IsRejection(pkg.ErrOverflow))
	assert.False(t, pkg.IsRejection(errors.New("connection reset")))
	assert.False(t, pkg.IsRejection(nil))
}

func TestRecordKeysSortBySequence(t *testing.T) {
	parent := common.HexToAddress("0xa11ce")
	assert.Less(t, string(pkg.RecordKey(parent, 9)), string(pkg.RecordKey(parent, 10)))
	assert.Less(t, string(pkg.RecordKey(parent, 255)), string(pkg.RecordKey(parent, 256)))
	assert.True(t, len(pkg.RecordKey(parent, 0)) == len(pkg.RecordPrefix(parent))+8)
}
