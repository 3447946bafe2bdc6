package pkg

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Referral interface {
	User(addr common.Address) User
	CheckBind(caller, parent common.Address) bool
	Bind(ctx context.Context, caller, parent common.Address) (Record, error)
	Page(parent common.Address, page, size uint64) (total uint64, items []Record, err error)
}
