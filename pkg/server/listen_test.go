package server

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/metrics"
	"github.com/coinsurf-com/invite/pkg/referral"
	"github.com/coinsurf-com/invite/pkg/storage"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func TestParseBindMessage(t *testing.T) {
	t.Run("Child and parent are read in order", func(t *testing.T) {
		child, parent, err := parseBindMessage(bob.Hex() + "," + alice.Hex())
		require.NoError(t, err)
		assert.Equal(t, bob, child)
		assert.Equal(t, alice, parent)
	})

	t.Run("Wrong field count", func(t *testing.T) {
		_, _, err := parseBindMessage(bob.Hex())
		assert.Error(t, err)

		_, _, err = parseBindMessage(bob.Hex() + "," + alice.Hex() + ",extra")
		assert.Error(t, err)
	})

	t.Run("Malformed addresses", func(t *testing.T) {
		_, _, err := parseBindMessage("bob," + alice.Hex())
		assert.ErrorIs(t, err, pkg.ErrInvalidIdentity)

		_, _, err = parseBindMessage(bob.Hex() + ",alice")
		assert.ErrorIs(t, err, pkg.ErrInvalidIdentity)
	})
}

func TestListenBinds(t *testing.T) {
	logger, hook := test.NewNullLogger()
	registry, err := referral.New(context.Background(), logger, storage.NewMemory(), nil)
	require.NoError(t, err)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	ch := make(chan *redis.Message, 4)
	ch <- &redis.Message{Payload: bob.Hex() + "," + alice.Hex()}
	ch <- &redis.Message{Payload: alice.Hex() + "," + bob.Hex()}
	ch <- &redis.Message{Payload: "garbage"}
	close(ch)

	done := make(chan error, 1)
	go func() {
		done <- listenBinds(make(chan os.Signal), ch, registry, m, logger)
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listenBinds did not return after the channel closed")
	}

	assert.Equal(t, alice, registry.User(bob).Parent)
	assert.False(t, registry.User(alice).Bound())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Binds.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Binds.WithLabelValues("rejected")))

	levels := make([]logrus.Level, 0)
	for _, entry := range hook.AllEntries() {
		if entry.Level <= logrus.WarnLevel {
			levels = append(levels, entry.Level)
		}
	}
	assert.Equal(t, []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel}, levels)
}
