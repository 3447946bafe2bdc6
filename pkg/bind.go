package pkg

import (
	"github.com/coinsurf-com/invite/pkg/safemath"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Lookup returns the record held for addr, or an empty one carrying only Addr.
type Lookup func(addr common.Address) User

// CheckBind reports why caller may not bind to parent given the records behind lookup.
// It only ever looks two links up from parent: a parent link is written once and never
// changes, so the parent and grandparent slots are the only places a cycle can close.
func CheckBind(lookup Lookup, caller, parent common.Address) error {
	if caller == None || parent == None {
		return ErrInvalidIdentity
	}

	if caller == parent {
		return ErrSelfReference
	}

	if lookup(caller).Bound() {
		return ErrAlreadyBound
	}

	up := lookup(parent).Parent
	if up == caller {
		return errors.Wrap(ErrCycleDetected, "parent is bound to caller")
	}

	if up != None && lookup(up).Parent == caller {
		return errors.Wrap(ErrCycleDetected, "grandparent is bound to caller")
	}

	return nil
}

// PrepareBind checks caller -> parent against lookup and computes the resulting write-set.
// The record lands at the parent's current first level count, which always equals the
// length of its ledger.
func PrepareBind(lookup Lookup, caller, parent common.Address, bindTime uint64) (Bind, error) {
	if err := CheckBind(lookup, caller, parent); err != nil {
		return Bind{}, err
	}

	b := Bind{
		Child:  lookup(caller),
		Parent: lookup(parent),
		Record: Record{Addr: caller, BindTime: bindTime},
	}
	b.Child.Parent = parent
	b.Child.BindTime = bindTime
	b.Seq = b.Parent.FirstNum

	var err error
	if b.Parent.FirstNum, err = safemath.Inc(b.Parent.FirstNum); err != nil {
		return Bind{}, errors.Wrapf(err, "first level count of %s", parent.Hex())
	}

	if b.Parent.Bound() {
		grandparent := lookup(b.Parent.Parent)
		if grandparent.SecondNum, err = safemath.Inc(grandparent.SecondNum); err != nil {
			return Bind{}, errors.Wrapf(err, "second level count of %s", grandparent.Addr.Hex())
		}
		b.Grandparent = &grandparent
	}

	return b, nil
}
