package access

import (
	"context"
	"math/big"
	"testing"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(n int64) common.Address {
	return common.BigToAddress(big.NewInt(n))
}

func TestRoles(t *testing.T) {
	ctx := context.Background()
	owner, op, stranger := addr(1), addr(2), addr(3)

	t.Run("Owner only actions belong to the owner", func(t *testing.T) {
		r := NewRoles(owner)
		for action := range ownerOnly {
			assert.True(t, r.IsAuthorized(owner, action), action)
			assert.False(t, r.IsAuthorized(stranger, action), action)
			assert.False(t, r.IsAuthorized(pkg.None, action), action)
		}
		assert.False(t, r.IsAuthorized(owner, Action("unknown")))
	})

	t.Run("Operators may operate but not administer", func(t *testing.T) {
		r := NewRoles(owner)
		require.NoError(t, r.GrantOperator(ctx, owner, op))

		assert.True(t, r.IsAuthorized(op, Operate))
		assert.True(t, r.IsAuthorized(owner, Operate))
		assert.False(t, r.IsAuthorized(stranger, Operate))
		assert.False(t, r.IsAuthorized(op, GrantOperator))

		require.NoError(t, r.RevokeOperator(ctx, owner, op))
		assert.False(t, r.IsAuthorized(op, Operate))
	})

	t.Run("Granting twice keeps one entry", func(t *testing.T) {
		r := NewRoles(owner)
		require.NoError(t, r.GrantOperator(ctx, owner, op))
		require.NoError(t, r.GrantOperator(ctx, owner, op))
		assert.Equal(t, []common.Address{op}, r.Snapshot().Operators)
	})

	t.Run("Strangers cannot change roles", func(t *testing.T) {
		r := NewRoles(owner)

		assert.ErrorIs(t, r.GrantOperator(ctx, stranger, stranger), pkg.ErrUnauthorized)
		assert.ErrorIs(t, r.TransferOwnership(ctx, stranger, stranger), pkg.ErrUnauthorized)
		assert.ErrorIs(t, r.RenounceOwnership(ctx, stranger), pkg.ErrUnauthorized)
		assert.Equal(t, owner, r.Owner())
	})

	t.Run("Ownership moves to the new owner", func(t *testing.T) {
		r := NewRoles(owner)
		require.NoError(t, r.TransferOwnership(ctx, owner, stranger))

		assert.Equal(t, stranger, r.Owner())
		assert.False(t, r.IsAuthorized(owner, GrantOperator))
		assert.True(t, r.IsAuthorized(stranger, GrantOperator))
	})

	t.Run("Ownership cannot move to nobody", func(t *testing.T) {
		r := NewRoles(owner)
		assert.ErrorIs(t, r.TransferOwnership(ctx, owner, pkg.None), pkg.ErrInvalidIdentity)
		assert.ErrorIs(t, r.GrantOperator(ctx, owner, pkg.None), pkg.ErrInvalidIdentity)
	})

	t.Run("Renouncing leaves nobody in charge", func(t *testing.T) {
		r := NewRoles(owner)
		require.NoError(t, r.RenounceOwnership(ctx, owner))

		assert.Equal(t, pkg.None, r.Owner())
		for action := range ownerOnly {
			assert.False(t, r.IsAuthorized(owner, action))
			assert.False(t, r.IsAuthorized(pkg.None, action))
		}
	})

	t.Run("A rejected persist leaves roles unchanged", func(t *testing.T) {
		r := NewRoles(owner)
		r.persist = func(context.Context, pkg.Roles) error {
			return errors.New("redis unavailable")
		}

		require.Error(t, r.GrantOperator(ctx, owner, op))
		assert.False(t, r.IsAuthorized(op, Operate))
		require.Error(t, r.TransferOwnership(ctx, owner, stranger))
		assert.Equal(t, owner, r.Owner())
	})

	t.Run("Snapshot and restore round trip", func(t *testing.T) {
		r := NewRoles(owner)
		require.NoError(t, r.GrantOperator(ctx, owner, addr(9)))
		require.NoError(t, r.GrantOperator(ctx, owner, addr(4)))

		snapshot := r.Snapshot()
		assert.Equal(t, []common.Address{addr(4), addr(9)}, snapshot.Operators)

		other := NewRoles(pkg.None)
		other.Restore(snapshot)
		assert.Equal(t, snapshot, other.Snapshot())
		assert.True(t, other.IsAuthorized(owner, GrantOperator))
	})
}
