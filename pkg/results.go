package pkg

import (
	"github.com/ethereum/go-ethereum/common"
	_ "github.com/mailru/easyjson/gen"
)

//easyjson:json
type BindEvent struct {
	Child    common.Address `json:"child"`
	Parent   common.Address `json:"parent"`
	BindTime uint64         `json:"bind_time"`
}

//easyjson:json
type Page struct {
	Total uint64   `json:"total"`
	Items []Record `json:"items"`
}

//easyjson:json
type BindRequest struct {
	Parent string `json:"parent"`
}

//easyjson:json
type AddressRequest struct {
	Address string `json:"address"`
}

//easyjson:json
type Eligibility struct {
	Eligible bool `json:"eligible"`
}

//easyjson:json
type ErrorResponse struct {
	Error string `json:"error"`
}

//easyjson:json
type Roles struct {
	Owner     common.Address   `json:"owner"`
	Operators []common.Address `json:"operators"`
}
