// Package access decides which callers may run administrative actions.
// Binding and reading referral data never go through here.
package access

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type Action string

const (
	TransferOwnership Action = "transfer_ownership"
	RenounceOwnership Action = "renounce_ownership"
	GrantOperator     Action = "grant_operator"
	RevokeOperator    Action = "revoke_operator"
	// Operate covers operator level actions. The owner may always operate.
	Operate Action = "operate"
)

var ownerOnly = map[Action]bool{
	TransferOwnership: true,
	RenounceOwnership: true,
	GrantOperator:     true,
	RevokeOperator:    true,
}

type Authorizer interface {
	IsAuthorized(caller common.Address, action Action) bool
}

// Roles holds one owner and any number of operators.
type Roles struct {
	mu        sync.RWMutex
	owner     common.Address
	operators map[common.Address]struct{}

	// persist, when set, must accept the new roles before they take effect.
	persist func(ctx context.Context, roles pkg.Roles) error
}

func NewRoles(owner common.Address) *Roles {
	return &Roles{owner: owner, operators: make(map[common.Address]struct{})}
}

func (r *Roles) IsAuthorized(caller common.Address, action Action) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.authorized(caller, action)
}

func (r *Roles) authorized(caller common.Address, action Action) bool {
	if caller == pkg.None {
		return false
	}

	if ownerOnly[action] {
		return caller == r.owner
	}

	if action == Operate {
		_, ok := r.operators[caller]
		return ok || caller == r.owner
	}

	return false
}

func (r *Roles) Owner() common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owner
}

// Snapshot lists operators in ascending address order.
func (r *Roles) Snapshot() pkg.Roles {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot()
}

func (r *Roles) snapshot() pkg.Roles {
	operators := make([]common.Address, 0, len(r.operators))
	for op := range r.operators {
		operators = append(operators, op)
	}
	sort.Slice(operators, func(i, j int) bool {
		return bytes.Compare(operators[i][:], operators[j][:]) < 0
	})

	return pkg.Roles{Owner: r.owner, Operators: operators}
}

func (r *Roles) Restore(roles pkg.Roles) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.restore(roles)
}

func (r *Roles) restore(roles pkg.Roles) {
	r.owner = roles.Owner
	r.operators = make(map[common.Address]struct{}, len(roles.Operators))
	for _, op := range roles.Operators {
		r.operators[op] = struct{}{}
	}
}

func (r *Roles) update(ctx context.Context, caller common.Address, action Action, change func(next *pkg.Roles)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.authorized(caller, action) {
		return errors.Wrapf(pkg.ErrUnauthorized, "%s by %s", action, caller.Hex())
	}

	next := r.snapshot()
	change(&next)

	if r.persist != nil {
		if err := r.persist(ctx, next); err != nil {
			return errors.Wrap(err, "persist roles")
		}
	}

	r.restore(next)
	return nil
}

func (r *Roles) TransferOwnership(ctx context.Context, caller, owner common.Address) error {
	if owner == pkg.None {
		return errors.Wrap(pkg.ErrInvalidIdentity, "new owner")
	}

	return r.update(ctx, caller, TransferOwnership, func(next *pkg.Roles) {
		next.Owner = owner
	})
}

// RenounceOwnership leaves the roles without an owner. Nobody can run owner actions afterwards.
func (r *Roles) RenounceOwnership(ctx context.Context, caller common.Address) error {
	return r.update(ctx, caller, RenounceOwnership, func(next *pkg.Roles) {
		next.Owner = pkg.None
	})
}

func (r *Roles) GrantOperator(ctx context.Context, caller, operator common.Address) error {
	if operator == pkg.None {
		return errors.Wrap(pkg.ErrInvalidIdentity, "operator")
	}

	return r.update(ctx, caller, GrantOperator, func(next *pkg.Roles) {
		for _, op := range next.Operators {
			if op == operator {
				return
			}
		}
		next.Operators = append(next.Operators, operator)
	})
}

func (r *Roles) RevokeOperator(ctx context.Context, caller, operator common.Address) error {
	if operator == pkg.None {
		return errors.Wrap(pkg.ErrInvalidIdentity, "operator")
	}

	return r.update(ctx, caller, RevokeOperator, func(next *pkg.Roles) {
		kept := next.Operators[:0]
		for _, op := range next.Operators {
			if op != operator {
				kept = append(kept, op)
			}
		}
		next.Operators = kept
	})
}
