package storage_test

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/storage"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	lvlstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol = common.HexToAddress("0x00000000000000000000000000000000000ca401")
	dave  = common.HexToAddress("0x0000000000000000000000000000000000000da7")
)

func TestStorage(t *testing.T) {
	testBackend(t, "memory", func(t *testing.T) pkg.Storage {
		return storage.NewMemory()
	})

	testBackend(t, "leveldb", func(t *testing.T) pkg.Storage {
		db, err := leveldb.Open(lvlstorage.NewMemStorage(), nil)
		require.NoError(t, err)
		return storage.NewLevelDBFromDB(db)
	})
}

// testBackend runs the behaviour every pkg.Storage must share. newStorage must return an
// empty backend on every call.
func testBackend(t *testing.T, name string, newStorage func(t *testing.T) pkg.Storage) {
	t.Run(name, func(t *testing.T) {
		t.Run("Empty storage loads an empty state", func(t *testing.T) {
			s := newStorage(t)
			defer s.Close()

			state, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, state.Users)
			assert.Empty(t, state.Records)

			u, err := s.User(context.Background(), alice)
			require.NoError(t, err)
			assert.Equal(t, pkg.User{Addr: alice}, u)

			records, err := s.Records(context.Background(), alice)
			require.NoError(t, err)
			assert.Empty(t, records)
		})

		t.Run("Saved binds load back in order", func(t *testing.T) {
			testSavedBindsLoadBack(t, newStorage(t))
		})

		t.Run("Stored state decides whether a bind is allowed", func(t *testing.T) {
			testSaveChecksStoredState(t, newStorage(t))
		})

		t.Run("Concurrent saves of one caller store a single parent", func(t *testing.T) {
			testConcurrentSavesOfOneCaller(t, newStorage(t))
		})
	})
}

func testSavedBindsLoadBack(t *testing.T, s pkg.Storage) {
	defer s.Close()
	ctx := context.Background()

	// bob -> alice
	bind, err := s.Save(ctx, bob, alice, 10)
	require.NoError(t, err)
	assert.Equal(t, pkg.Bind{
		Child:  pkg.User{Addr: bob, Parent: alice, BindTime: 10},
		Parent: pkg.User{Addr: alice, FirstNum: 1},
		Seq:    0,
		Record: pkg.Record{Addr: bob, BindTime: 10},
	}, bind)

	// carol -> bob, alice gets second level credit
	bind, err = s.Save(ctx, carol, bob, 20)
	require.NoError(t, err)
	require.NotNil(t, bind.Grandparent)
	assert.Equal(t, pkg.User{Addr: alice, FirstNum: 1, SecondNum: 1}, *bind.Grandparent)

	// dave -> alice lands behind bob
	bind, err = s.Save(ctx, dave, alice, 30)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bind.Seq)

	state, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, pkg.User{Addr: alice, FirstNum: 2, SecondNum: 1}, state.Users[alice])
	assert.Equal(t, pkg.User{Addr: bob, Parent: alice, FirstNum: 1, BindTime: 10}, state.Users[bob])
	assert.Equal(t, pkg.User{Addr: carol, Parent: bob, BindTime: 20}, state.Users[carol])

	assert.Equal(t, []pkg.Record{{Addr: bob, BindTime: 10}, {Addr: dave, BindTime: 30}}, state.Records[alice])
	assert.Equal(t, []pkg.Record{{Addr: carol, BindTime: 20}}, state.Records[bob])
	assert.Empty(t, state.Records[carol])

	records, err := s.Records(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, state.Records[alice], records)

	u, err := s.User(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, state.Users[bob], u)
}

func testSaveChecksStoredState(t *testing.T, s pkg.Storage) {
	defer s.Close()
	ctx := context.Background()

	_, err := s.Save(ctx, bob, alice, 10)
	require.NoError(t, err)
	_, err = s.Save(ctx, carol, bob, 20)
	require.NoError(t, err)

	_, err = s.Save(ctx, bob, dave, 30)
	assert.ErrorIs(t, err, pkg.ErrAlreadyBound)

	_, err = s.Save(ctx, alice, bob, 30)
	assert.ErrorIs(t, err, pkg.ErrCycleDetected)

	_, err = s.Save(ctx, alice, carol, 30)
	assert.ErrorIs(t, err, pkg.ErrCycleDetected)

	_, err = s.Save(ctx, dave, dave, 30)
	assert.ErrorIs(t, err, pkg.ErrSelfReference)

	// nothing above may have left a trace
	state, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, state.Users[bob].Parent)
	assert.False(t, state.Users[alice].Bound())
	assert.Zero(t, state.Users[dave].FirstNum)
	assert.Equal(t, uint64(1), state.Users[alice].FirstNum)
	assert.Equal(t, uint64(1), state.Users[bob].FirstNum)
	assert.Empty(t, state.Records[dave])
}

func testConcurrentSavesOfOneCaller(t *testing.T, s pkg.Storage) {
	defer s.Close()
	ctx := context.Background()

	parents := []common.Address{alice, bob, carol, dave}
	errs := make([]error, len(parents))

	var wg sync.WaitGroup
	for i, parent := range parents {
		wg.Add(1)
		go func(i int, parent common.Address) {
			defer wg.Done()
			_, errs[i] = s.Save(ctx, common.HexToAddress("0x1"), parent, uint64(i))
		}(i, parent)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, pkg.ErrAlreadyBound)
	}
	assert.Equal(t, 1, accepted)

	state, err := s.Load(ctx)
	require.NoError(t, err)

	var firstNums uint64
	var records int
	for _, parent := range parents {
		firstNums += state.Users[parent].FirstNum
		records += len(state.Records[parent])
	}
	assert.Equal(t, uint64(1), firstNums)
	assert.Equal(t, 1, records)
}

func TestLevelDBKeepsAppendOrderPastTenRecords(t *testing.T) {
	db, err := leveldb.Open(lvlstorage.NewMemStorage(), nil)
	require.NoError(t, err)
	s := storage.NewLevelDBFromDB(db)
	defer s.Close()

	ctx := context.Background()
	for seq := uint64(0); seq < 300; seq++ {
		child := common.BigToAddress(new(big.Int).SetUint64(1000 + seq))
		bind, err := s.Save(ctx, child, alice, seq)
		require.NoError(t, err)
		require.Equal(t, seq, bind.Seq)
	}

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Records[alice], 300)
	for i, r := range state.Records[alice] {
		assert.Equal(t, uint64(i), r.BindTime)
	}
	assert.Equal(t, uint64(300), state.Users[alice].FirstNum)

	records, err := s.Records(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, state.Records[alice], records)
}
