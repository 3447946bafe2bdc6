package storage

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB stores users under pkg.UserKey and records under pkg.RecordKey, so iterating the
// record prefix yields every parent's ledger in append order.
type LevelDB struct {
	// mu serializes Save so the read-check-write of one bind cannot interleave with another
	mu sync.Mutex
	db *leveldb.DB
}

// NewLevelDB creates or opens a LevelDB database at path.
func NewLevelDB(path string) (*LevelDB, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("leveldb path required")
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "resolve leveldb path")
	}

	db, err := leveldb.OpenFile(abs, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open leveldb")
	}

	return NewLevelDBFromDB(db), nil
}

func NewLevelDBFromDB(db *leveldb.DB) *LevelDB {
	return &LevelDB{db: db}
}

func (l *LevelDB) Name() string {
	return "leveldb"
}

func (l *LevelDB) Load(ctx context.Context) (*pkg.State, error) {
	state := pkg.NewState()

	users := l.db.NewIterator(util.BytesPrefix(pkg.UserPrefix()), nil)
	for users.Next() {
		var u pkg.User
		if err := easyjson.Unmarshal(users.Value(), &u); err != nil {
			users.Release()
			return nil, errors.Wrapf(err, "decode user %s", users.Key())
		}
		state.Users[u.Addr] = u
	}
	err := users.Error()
	users.Release()
	if err != nil {
		return nil, errors.Wrap(err, "iterate users")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := pkg.RecordsPrefix()
	records := l.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer records.Release()
	for records.Next() {
		key := records.Key()
		if len(key) < len(prefix)+2+common.AddressLength*2 {
			return nil, errors.Errorf("malformed record key %q", key)
		}
		parent := common.HexToAddress(string(key[len(prefix) : len(prefix)+2+common.AddressLength*2]))

		var r pkg.Record
		if err := easyjson.Unmarshal(records.Value(), &r); err != nil {
			return nil, errors.Wrapf(err, "decode record %q", key)
		}
		state.Records[parent] = append(state.Records[parent], r)
	}

	return state, errors.Wrap(records.Error(), "iterate records")
}

func (l *LevelDB) get(addr common.Address) (pkg.User, error) {
	value, err := l.db.Get(pkg.UserKey(addr), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return pkg.User{Addr: addr}, nil
	}
	if err != nil {
		return pkg.User{Addr: addr}, errors.Wrapf(err, "get user %s", addr.Hex())
	}

	var u pkg.User
	if err = easyjson.Unmarshal(value, &u); err != nil {
		return pkg.User{Addr: addr}, errors.Wrapf(err, "decode user %s", addr.Hex())
	}
	return u, nil
}

func (l *LevelDB) Save(_ context.Context, caller, parent common.Address, bindTime uint64) (pkg.Bind, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var readErr error
	lookup := func(addr common.Address) pkg.User {
		u, err := l.get(addr)
		if err != nil && readErr == nil {
			readErr = err
		}
		return u
	}

	bind, err := pkg.PrepareBind(lookup, caller, parent, bindTime)
	if readErr != nil {
		return pkg.Bind{}, readErr
	}
	if err != nil {
		return pkg.Bind{}, err
	}

	batch := new(leveldb.Batch)

	users := []pkg.User{bind.Child, bind.Parent}
	if bind.Grandparent != nil {
		users = append(users, *bind.Grandparent)
	}
	for _, u := range users {
		value, err := easyjson.Marshal(u)
		if err != nil {
			return pkg.Bind{}, errors.Wrapf(err, "encode user %s", u.Addr.Hex())
		}
		batch.Put(pkg.UserKey(u.Addr), value)
	}

	value, err := easyjson.Marshal(bind.Record)
	if err != nil {
		return pkg.Bind{}, errors.Wrap(err, "encode record")
	}
	batch.Put(pkg.RecordKey(parent, bind.Seq), value)

	if err = l.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return pkg.Bind{}, errors.Wrap(err, "write batch")
	}

	return bind, nil
}

func (l *LevelDB) User(_ context.Context, addr common.Address) (pkg.User, error) {
	return l.get(addr)
}

func (l *LevelDB) Records(_ context.Context, parent common.Address) ([]pkg.Record, error) {
	iter := l.db.NewIterator(util.BytesPrefix(pkg.RecordPrefix(parent)), nil)
	defer iter.Release()

	records := []pkg.Record{}
	for iter.Next() {
		var r pkg.Record
		if err := easyjson.Unmarshal(iter.Value(), &r); err != nil {
			return nil, errors.Wrapf(err, "decode record %q", iter.Key())
		}
		records = append(records, r)
	}

	return records, errors.Wrap(iter.Error(), "iterate records")
}

// Close releases the underlying LevelDB resources.
func (l *LevelDB) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
