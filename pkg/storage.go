package pkg

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Storage interface {
	Name() string
	Load(ctx context.Context) (*State, error)
	// Save checks caller -> parent against what the backend itself holds and, if it passes,
	// stores the whole write-set atomically. Binds are serialized per backend, so processes
	// sharing one cannot both bind the same caller. The returned Bind is what was stored.
	Save(ctx context.Context, caller, parent common.Address, bindTime uint64) (Bind, error)
	// User returns the stored record of addr, or an empty one.
	User(ctx context.Context, addr common.Address) (User, error)
	// Records returns parent's ledger, oldest first.
	Records(ctx context.Context, parent common.Address) ([]Record, error)
	Close() error
}
