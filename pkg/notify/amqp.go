package notify

import (
	"context"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AMQP struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func NewAMQP(url, exchange, routingKey string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}

	if err = ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, errors.Wrap(err, "declare exchange")
	}

	return &AMQP{conn: conn, channel: ch, exchange: exchange, routingKey: routingKey}, nil
}

func (a *AMQP) Name() string {
	return "amqp"
}

func (a *AMQP) Notify(ctx context.Context, event pkg.BindEvent) error {
	body, err := easyjson.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	return a.channel.PublishWithContext(ctx,
		a.exchange,
		a.routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Unix(int64(event.BindTime), 0),
			DeliveryMode: amqp.Persistent,
		},
	)
}

func (a *AMQP) Close() {
	a.channel.Close()
	a.conn.Close()
}
