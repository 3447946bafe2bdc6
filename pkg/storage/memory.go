package storage

import (
	"context"
	"sync"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
)

// Memory keeps state in the process only. Restarting the process forgets every bind.
type Memory struct {
	mu    sync.Mutex
	state *pkg.State
}

func NewMemory() *Memory {
	return &Memory{state: pkg.NewState()}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Load(_ context.Context) (*pkg.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := pkg.NewState()
	for addr, u := range m.state.Users {
		state.Users[addr] = u
	}
	for parent, records := range m.state.Records {
		state.Records[parent] = append([]pkg.Record(nil), records...)
	}

	return state, nil
}

func (m *Memory) user(addr common.Address) pkg.User {
	u, ok := m.state.Users[addr]
	if !ok {
		u.Addr = addr
	}
	return u
}

func (m *Memory) Save(_ context.Context, caller, parent common.Address, bindTime uint64) (pkg.Bind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bind, err := pkg.PrepareBind(m.user, caller, parent, bindTime)
	if err != nil {
		return pkg.Bind{}, err
	}

	m.state.Apply(bind)
	return bind, nil
}

func (m *Memory) User(_ context.Context, addr common.Address) (pkg.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.user(addr), nil
}

func (m *Memory) Records(_ context.Context, parent common.Address) ([]pkg.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]pkg.Record{}, m.state.Records[parent]...), nil
}

func (m *Memory) Close() error {
	return nil
}
