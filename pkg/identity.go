package pkg

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// None is the identity of nobody. A user whose parent is None has never bound.
var None = common.Address{}

// ParseAddress converts a hex string into a participant identity. Only malformed strings
// are rejected; the zero address parses to None and is left for the caller to judge.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return None, errors.Wrapf(ErrInvalidIdentity, "%q is not an address", s)
	}

	return common.HexToAddress(s), nil
}
