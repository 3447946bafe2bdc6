package pkg

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

const (
	userPrefix   = ":1:"
	recordPrefix = ":2:"
)

func UserKey(addr common.Address) []byte {
	return []byte(userPrefix + addr.Hex())
}

// RecordKey orders a parent's records by sequence number when keys are sorted bytewise.
func RecordKey(parent common.Address, seq uint64) []byte {
	key := make([]byte, 0, len(recordPrefix)+common.AddressLength*2+2+1+8)
	key = append(key, RecordPrefix(parent)...)
	return binary.BigEndian.AppendUint64(key, seq)
}

func RecordPrefix(parent common.Address) []byte {
	return []byte(recordPrefix + parent.Hex() + ":")
}

func UserPrefix() []byte {
	return []byte(userPrefix)
}

func RecordsPrefix() []byte {
	return []byte(recordPrefix)
}

//easyjson:json
type User struct {
	Addr      common.Address `json:"address"`
	Parent    common.Address `json:"parent"`
	FirstNum  uint64         `json:"first_num"`
	SecondNum uint64         `json:"second_num"`
	BindTime  uint64         `json:"bind_time"`
}

func (u User) Bound() bool {
	return u.Parent != None
}

//easyjson:json
type Record struct {
	Addr     common.Address `json:"addr"`
	BindTime uint64         `json:"bind_time"`
}

// Bind is the complete write-set of one successful bind.
type Bind struct {
	Child  User
	Parent User
	// Grandparent is nil when the parent has no parent of its own.
	Grandparent *User
	// Seq is the position of Record in the parent's ledger, starting at 0.
	Seq    uint64
	Record Record
}

// State is everything a storage backend holds, used to rebuild the registry at start-up.
type State struct {
	Users   map[common.Address]User
	Records map[common.Address][]Record
}

func NewState() *State {
	return &State{
		Users:   make(map[common.Address]User),
		Records: make(map[common.Address][]Record),
	}
}

// Apply merges b into s. Records must arrive in sequence order.
func (s *State) Apply(b Bind) {
	s.Users[b.Child.Addr] = b.Child
	s.Users[b.Parent.Addr] = b.Parent
	if b.Grandparent != nil {
		s.Users[b.Grandparent.Addr] = *b.Grandparent
	}
	s.Records[b.Parent.Addr] = append(s.Records[b.Parent.Addr], b.Record)
}
