package referral

import (
	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/safemath"
	"github.com/ethereum/go-ethereum/common"
)

// Ledger keeps, per parent, the records of every child that bound to it in bind order.
// It does no locking of its own; the Registry guards it.
type Ledger struct {
	records map[common.Address][]pkg.Record
}

func NewLedger() *Ledger {
	return &Ledger{records: make(map[common.Address][]pkg.Record)}
}

func (l *Ledger) Append(parent common.Address, record pkg.Record) {
	l.records[parent] = append(l.records[parent], record)
}

// Reset replaces everything held for parent with records, oldest first.
func (l *Ledger) Reset(parent common.Address, records []pkg.Record) {
	l.records[parent] = append([]pkg.Record(nil), records...)
}

func (l *Ledger) Len(parent common.Address) uint64 {
	return uint64(len(l.records[parent]))
}

// Page returns the total number of records under parent and the page-th window of
// size records, most recent first. Pages are numbered from 1.
func (l *Ledger) Page(parent common.Address, page, size uint64) (uint64, []pkg.Record, error) {
	if page < 1 {
		return 0, nil, pkg.ErrInvalidPage
	}

	records := l.records[parent]
	total := uint64(len(records))

	end, err := safemath.Mul(page, size)
	if err != nil {
		return total, nil, err
	}

	upper := safemath.Min(end, total)
	if upper == 0 {
		return total, []pkg.Record{}, nil
	}

	// page*size did not overflow, so neither can this
	lower := (page - 1) * size
	if lower >= upper {
		return total, []pkg.Record{}, nil
	}

	items := make([]pkg.Record, 0, upper-lower)
	for i := lower; i < upper; i++ {
		items = append(items, records[total-1-i])
	}

	return total, items, nil
}
