package referral_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/mocks"
	"github.com/coinsurf-com/invite/pkg/referral"
	"github.com/coinsurf-com/invite/pkg/storage"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Unix(1700000000, 0)

type testRegistry struct {
	*referral.Registry
	notifier *mocks.MockNotifier
	storage  pkg.Storage
}

func addr(n int64) common.Address {
	return common.BigToAddress(big.NewInt(n))
}

func newRegistry(t *testing.T) *testRegistry {
	t.Helper()

	return newRegistryWithStorage(t, storage.NewMemory())
}

func newRegistryWithStorage(t *testing.T, s pkg.Storage) *testRegistry {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Name().Return("mock").AnyTimes()

	logger, _ := test.NewNullLogger()
	r, err := referral.New(context.Background(), logger, s, notifier)
	require.NoError(t, err)
	r.Now = func() time.Time { return now }

	return &testRegistry{Registry: r, notifier: notifier, storage: s}
}

// mustBind binds child to parent and expects exactly one notification for it.
func (tr *testRegistry) mustBind(t *testing.T, child, parent common.Address) {
	t.Helper()

	tr.notifier.EXPECT().
		Notify(gomock.Any(), pkg.BindEvent{Child: child, Parent: parent, BindTime: uint64(now.Unix())}).
		Return(nil).
		Times(1)

	record, err := tr.Bind(context.Background(), child, parent)
	require.NoError(t, err)
	require.Equal(t, pkg.Record{Addr: child, BindTime: uint64(now.Unix())}, record)
}

func (tr *testRegistry) bindFails(t *testing.T, child, parent common.Address, expected error) {
	t.Helper()

	_, err := tr.Bind(context.Background(), child, parent)
	require.Error(t, err)
	require.ErrorIs(t, err, expected)
}
