package pkg

import "context"

//go:generate go run go.uber.org/mock/mockgen -destination mocks/mocks.go -package mocks github.com/coinsurf-com/invite/pkg Notifier,Storage

// Notifier receives one event per successful bind. Delivery is best-effort.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, event BindEvent) error
}
