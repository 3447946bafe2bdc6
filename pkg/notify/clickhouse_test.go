package notify

import (
	"context"
	"math/big"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]pkg.BindEvent
	flushed chan struct{}
}

func (r *recorder) insert(_ context.Context, batch []pkg.BindEvent) error {
	r.mu.Lock()
	r.batches = append(r.batches, append([]pkg.BindEvent(nil), batch...))
	r.mu.Unlock()
	r.flushed <- struct{}{}
	return nil
}

func event(n int64) pkg.BindEvent {
	return pkg.BindEvent{
		Child:    common.BigToAddress(big.NewInt(n)),
		Parent:   common.BigToAddress(big.NewInt(1000)),
		BindTime: uint64(n),
	}
}

func TestClickHouseBatching(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("A full batch is flushed without waiting for the ticker", func(t *testing.T) {
		c := newClickHouse(nil, 3, logger)
		rec := &recorder{flushed: make(chan struct{}, 10)}
		c.insert = rec.insert

		closing := make(chan os.Signal)
		defer close(closing)
		go c.run(closing, time.Hour)

		for i := int64(1); i <= 3; i++ {
			require.NoError(t, c.Notify(context.Background(), event(i)))
		}

		select {
		case <-rec.flushed:
		case <-time.After(5 * time.Second):
			t.Fatal("batch was not flushed")
		}

		rec.mu.Lock()
		defer rec.mu.Unlock()
		require.Len(t, rec.batches, 1)
		assert.Equal(t, []pkg.BindEvent{event(1), event(2), event(3)}, rec.batches[0])
	})

	t.Run("Pending events are flushed on shutdown", func(t *testing.T) {
		c := newClickHouse(nil, 100, logger)
		rec := &recorder{flushed: make(chan struct{}, 10)}
		c.insert = rec.insert

		require.NoError(t, c.Notify(context.Background(), event(1)))
		require.NoError(t, c.Notify(context.Background(), event(2)))

		closing := make(chan os.Signal)
		close(closing)
		c.run(closing, time.Hour)

		require.Len(t, rec.batches, 1)
		assert.Equal(t, []pkg.BindEvent{event(1), event(2)}, rec.batches[0])
	})

	t.Run("A full queue rejects instead of blocking", func(t *testing.T) {
		c := newClickHouse(nil, 1, logger)

		require.NoError(t, c.Notify(context.Background(), event(1)))
		require.NoError(t, c.Notify(context.Background(), event(2)))
		assert.Error(t, c.Notify(context.Background(), event(3)))
	})
}
