package notify

import (
	"context"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/go-redis/redis/v8"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
)

// Redis publishes each bind event as JSON on a pub/sub channel.
type Redis struct {
	rd      *redis.Client
	channel string
}

func NewRedis(rd *redis.Client, channel string) *Redis {
	return &Redis{rd: rd, channel: channel}
}

func (r *Redis) Name() string {
	return "redis"
}

func (r *Redis) Notify(ctx context.Context, event pkg.BindEvent) error {
	payload, err := easyjson.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	_, err = r.rd.Publish(ctx, r.channel, payload).Result()
	return errors.Wrap(err, "publish to channel")
}
