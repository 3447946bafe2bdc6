package access

import (
	"context"
	"os"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const redisTimeout = time.Second * 5

// Redis keeps Roles in a Redis key so every instance shares the same owner and operators.
// Changes are announced on updateCh and other instances reload when they see one.
type Redis struct {
	*Roles

	rd       *redis.Client
	key      string
	updateCh string
}

func getRoles(ctx context.Context, rd *redis.Client, key string) (pkg.Roles, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	var roles pkg.Roles
	payload, err := rd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return roles, false, nil
	}
	if err != nil {
		return roles, false, errors.Wrap(err, "get roles")
	}

	if err = easyjson.Unmarshal(payload, &roles); err != nil {
		return roles, false, errors.Wrap(err, "decode roles")
	}

	return roles, true, nil
}

// NewRedis loads the roles stored under key. When nothing is stored yet, owner becomes the
// first owner and is written back.
func NewRedis(logger *logrus.Logger, closing <-chan os.Signal, rd *redis.Client, key, updateCh string, owner common.Address) (*Redis, error) {
	r := &Redis{Roles: NewRoles(owner), rd: rd, key: key, updateCh: updateCh}

	roles, found, err := getRoles(context.Background(), rd, key)
	if err != nil {
		return nil, err
	}

	if found {
		r.Restore(roles)
	} else if err = r.save(context.Background(), r.Snapshot()); err != nil {
		return nil, err
	}
	r.Roles.persist = r.save

	logger.WithField("owner", r.Owner().Hex()).Info("loaded roles")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-closing
		cancel()
	}()

	go func() {
		sub := rd.Subscribe(ctx, updateCh)
		defer sub.Unsubscribe(context.Background(), updateCh)
		defer sub.Close()

		for {
			select {
			case <-sub.Channel():
				roles, found, err := getRoles(ctx, rd, key)
				if err != nil || !found {
					logger.WithField("key", key).WithError(err).Error("failed to reload roles")
					continue
				}

				r.Restore(roles)
				logger.WithField("owner", roles.Owner.Hex()).Info("updated roles")
			case <-ctx.Done():
				return
			}
		}
	}()

	return r, nil
}

func (r *Redis) save(ctx context.Context, roles pkg.Roles) error {
	payload, err := easyjson.Marshal(roles)
	if err != nil {
		return errors.Wrap(err, "encode roles")
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	if err = r.rd.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return errors.Wrap(err, "set roles")
	}

	return errors.Wrap(r.rd.Publish(ctx, r.updateCh, "roles").Err(), "publish roles update")
}
