package pkg

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Broadcast hands every bind event to each configured notifier in turn.
type Broadcast struct {
	UpdateTimeout time.Duration
	StopOnError   bool
	// OnFailure, when set, is told which notifier failed.
	OnFailure func(notifier string)

	logger    *logrus.Logger
	notifiers []Notifier
}

func NewBroadcast(logger *logrus.Logger, notifiers ...Notifier) *Broadcast {
	return &Broadcast{
		UpdateTimeout: time.Second * 5,
		StopOnError:   false,
		logger:        logger,
		notifiers:     notifiers,
	}
}

func (b *Broadcast) Name() string {
	return "broadcast"
}

func (b *Broadcast) Notify(ctx context.Context, event BindEvent) error {
	for _, notifier := range b.notifiers {
		nctx, cancel := context.WithTimeout(ctx, b.UpdateTimeout)
		err := notifier.Notify(nctx, event)
		cancel()
		if err == nil {
			continue
		}

		if b.OnFailure != nil {
			b.OnFailure(notifier.Name())
		}

		if b.StopOnError {
			return errors.Wrap(err, notifier.Name())
		}

		b.logger.WithFields(logrus.Fields{
			"child":    event.Child.Hex(),
			"parent":   event.Parent.Hex(),
			"notifier": notifier.Name(),
		}).WithError(err).Error("failed to deliver bind event")
	}

	return nil
}
