package referral

import (
	"context"
	"sync"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var _ pkg.Referral = (*Registry)(nil)

// Registry owns every participant's referral record together with the ledger of binds.
// A single RWMutex guards both, so readers never see half of a bind.
type Registry struct {
	mu     sync.RWMutex
	users  map[common.Address]pkg.User
	ledger *Ledger

	storage  pkg.Storage
	notifier pkg.Notifier
	logger   *logrus.Logger

	Now           func() time.Time
	NotifyTimeout time.Duration
}

// New rebuilds the registry from whatever storage already holds.
// notifier may be nil.
func New(ctx context.Context, logger *logrus.Logger, storage pkg.Storage, notifier pkg.Notifier) (*Registry, error) {
	state, err := storage.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", storage.Name())
	}

	r := &Registry{
		users:         state.Users,
		ledger:        NewLedger(),
		storage:       storage,
		notifier:      notifier,
		logger:        logger,
		Now:           time.Now,
		NotifyTimeout: time.Second * 5,
	}

	if r.users == nil {
		r.users = make(map[common.Address]pkg.User)
	}
	for parent, records := range state.Records {
		for _, record := range records {
			r.ledger.Append(parent, record)
		}
	}

	logger.WithFields(logrus.Fields{
		"storage": storage.Name(),
		"users":   len(r.users),
		"parents": len(state.Records),
	}).Info("referral registry loaded")

	return r, nil
}

// user never fails: an identity nobody has touched reads as an empty record.
func (r *Registry) user(addr common.Address) pkg.User {
	u, ok := r.users[addr]
	if !ok {
		u.Addr = addr
	}
	return u
}

func (r *Registry) User(addr common.Address) pkg.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.user(addr)
}

// CheckBind reports whether Bind(caller, parent) would succeed right now.
func (r *Registry) CheckBind(caller, parent common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.validate(caller, parent) == nil
}

func (r *Registry) validate(caller, parent common.Address) error {
	return pkg.CheckBind(r.user, caller, parent)
}

// Bind makes parent the referrer of caller. On success parent's first level count and,
// if parent is itself bound, the grandparent's second level count go up by one.
func (r *Registry) Bind(ctx context.Context, caller, parent common.Address) (pkg.Record, error) {
	r.mu.Lock()
	bind, err := r.bind(ctx, caller, parent)
	r.mu.Unlock()

	if err != nil {
		return pkg.Record{}, err
	}

	r.logger.WithFields(logrus.Fields{
		"child":  caller.Hex(),
		"parent": parent.Hex(),
		"seq":    bind.Seq,
	}).Debug("bound")

	r.notify(ctx, pkg.BindEvent{Child: caller, Parent: parent, BindTime: bind.Record.BindTime})

	return bind.Record, nil
}

// bind must be called with the write lock held.
func (r *Registry) bind(ctx context.Context, caller, parent common.Address) (pkg.Bind, error) {
	now := uint64(r.Now().Unix())

	// the cached view turns away most bad requests without a storage round trip
	if _, err := pkg.PrepareBind(r.user, caller, parent, now); err != nil {
		if errors.Is(err, pkg.ErrOverflow) {
			r.logger.WithField("parent", parent.Hex()).WithError(err).Error("counter overflow")
		}
		return pkg.Bind{}, err
	}

	// storage has the final say: another process sharing it may have bound caller already
	b, err := r.storage.Save(ctx, caller, parent, now)
	if err != nil {
		if pkg.IsRejection(err) {
			r.logger.WithFields(logrus.Fields{
				"child":  caller.Hex(),
				"parent": parent.Hex(),
			}).WithError(err).Warn("storage rejected a bind the cache allowed, refreshing")
			r.refresh(ctx, caller, parent)
		}
		return pkg.Bind{}, errors.Wrapf(err, "save bind to %s", r.storage.Name())
	}

	r.users[b.Child.Addr] = b.Child
	r.users[b.Parent.Addr] = b.Parent
	if b.Grandparent != nil {
		r.users[b.Grandparent.Addr] = *b.Grandparent
	}

	if b.Seq == r.ledger.Len(parent) {
		r.ledger.Append(parent, b.Record)
		return b, nil
	}

	// others appended to this ledger since it was loaded
	records, err := r.storage.Records(ctx, parent)
	if err != nil {
		r.logger.WithField("parent", parent.Hex()).WithError(err).Error("failed to reload records")
		r.ledger.Append(parent, b.Record)
		return b, nil
	}
	r.ledger.Reset(parent, records)

	return b, nil
}

// refresh reloads caller, parent and whoever each of them is bound to from storage.
func (r *Registry) refresh(ctx context.Context, caller, parent common.Address) {
	addrs := []common.Address{caller, parent}
	for i := 0; i < len(addrs); i++ {
		u, err := r.storage.User(ctx, addrs[i])
		if err != nil {
			r.logger.WithField("user", addrs[i].Hex()).WithError(err).Error("failed to refresh user")
			continue
		}
		r.users[u.Addr] = u

		if i < 2 && u.Bound() {
			addrs = append(addrs, u.Parent)
		}
	}
}

func (r *Registry) notify(ctx context.Context, event pkg.BindEvent) {
	if r.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.NotifyTimeout)
	defer cancel()

	if err := r.notifier.Notify(ctx, event); err != nil {
		r.logger.WithFields(logrus.Fields{
			"child":    event.Child.Hex(),
			"parent":   event.Parent.Hex(),
			"notifier": r.notifier.Name(),
		}).WithError(err).Warn("failed to notify bind")
	}
}

func (r *Registry) Page(parent common.Address, page, size uint64) (uint64, []pkg.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ledger.Page(parent, page, size)
}
