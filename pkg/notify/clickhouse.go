package notify

import (
	"context"
	"os"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// insert bind events in ClickHouse
const chInsertBinds = `INSERT INTO binds(child, parent, bind_time, date)
						   VALUES (?, ?, ?, ?)`

// ClickHouse queues bind events and writes them in batches, either every flush period
// or as soon as batchSize events are waiting.
type ClickHouse struct {
	ch        *sqlx.DB
	events    chan pkg.BindEvent
	batchSize int
	logger    *logrus.Logger
	done      chan struct{}

	insert func(ctx context.Context, batch []pkg.BindEvent) error
}

func NewClickHouse(closing <-chan os.Signal, ch *sqlx.DB, batchSize int, flush time.Duration, logger *logrus.Logger) *ClickHouse {
	c := newClickHouse(ch, batchSize, logger)
	go c.run(closing, flush)
	return c
}

func newClickHouse(ch *sqlx.DB, batchSize int, logger *logrus.Logger) *ClickHouse {
	if batchSize < 1 {
		batchSize = 1
	}

	c := &ClickHouse{
		ch:        ch,
		events:    make(chan pkg.BindEvent, batchSize*2),
		batchSize: batchSize,
		logger:    logger,
		done:      make(chan struct{}),
	}
	c.insert = c.insertBatch
	return c
}

func (c *ClickHouse) Name() string {
	return "clickhouse"
}

// Notify never blocks; a full queue drops the event and reports it.
func (c *ClickHouse) Notify(_ context.Context, event pkg.BindEvent) error {
	select {
	case c.events <- event:
		return nil
	default:
		return errors.New("clickhouse queue is full")
	}
}

// Done is closed once the events still queued at shutdown have been written.
func (c *ClickHouse) Done() <-chan struct{} {
	return c.done
}

func (c *ClickHouse) run(closing <-chan os.Signal, period time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	batch := make([]pkg.BindEvent, 0, c.batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), period)
		err := c.insert(ctx, batch)
		cancel()
		if err != nil {
			c.logger.WithField("events", len(batch)).WithError(err).Error("failed to insert bind events")
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-closing:
			for {
				select {
				case event := <-c.events:
					batch = append(batch, event)
				default:
					flush()
					return
				}
			}
		case <-ticker.C:
			flush()
		case event := <-c.events:
			batch = append(batch, event)
			if len(batch) >= c.batchSize {
				flush()
			}
		}
	}
}

func (c *ClickHouse) insertBatch(ctx context.Context, batch []pkg.BindEvent) error {
	tx, err := c.ch.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "BeginTx")
	}

	stmt, err := tx.Prepare(chInsertBinds)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "Prepare")
	}
	defer stmt.Close()

	for _, event := range batch {
		at := time.Unix(int64(event.BindTime), 0).UTC()
		if _, err := stmt.Exec(event.Child.Hex(), event.Parent.Hex(), at, at); err != nil {
			c.logger.WithField("child", event.Child.Hex()).Error("stmt.Exec error " + err.Error())
			tx.Rollback()
			return errors.Wrap(err, "Exec")
		}
	}

	return tx.Commit()
}
