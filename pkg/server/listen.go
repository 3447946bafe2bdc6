package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/access"
	"github.com/coinsurf-com/invite/pkg/api"
	"github.com/coinsurf-com/invite/pkg/metrics"
	"github.com/coinsurf-com/invite/pkg/notify"
	"github.com/coinsurf-com/invite/pkg/referral"
	"github.com/coinsurf-com/invite/pkg/storage"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Debug          bool   `long:"debug" env:"DEBUG"`
	PrometheusPort int    `long:"prometheus" env:"PROMETHEUS_PORT" default:"3000" description:""`
	Listen         string `long:"listen" env:"LISTEN" default:":8080" description:"HTTP API address"`

	Storage  string `long:"storage" env:"STORAGE" default:"postgres" choice:"memory" choice:"postgres" choice:"leveldb"`
	Postgres string `long:"postgres" env:"POSTGRES" default:""`
	LevelDB  string `long:"leveldb" env:"LEVELDB" default:"data/invite" description:"leveldb directory"`

	Redis string `long:"redis" env:"REDIS" default:"" description:"empty disables ingest, redis notifications and shared roles"`

	RedisChannelBind  string `long:"redis-ch-bind" env:"REDIS_CH_BIND" default:"invite.bind" description:"incoming child,parent pairs"`
	RedisChannelBound string `long:"redis-ch-bound" env:"REDIS_CH_BOUND" default:"invite.bound" description:"outgoing bind events"`

	RedisRolesKey           string `long:"redis-roles-key" env:"REDIS_ROLES_KEY" default:":5:roles"`
	RedisChannelRolesUpdate string `long:"redis-ch-roles-update" env:"REDIS_CH_ROLES_UPDATE" default:"roles"`
	Owner                   string `long:"owner" env:"OWNER" default:"" description:"owner used when no roles are stored yet"`

	ClickHouse          string        `long:"clickhouse" env:"CLICKHOUSE" default:""`
	ClickHouseBatchSize int           `long:"clickhouse-batch-size" env:"CLICKHOUSE_BATCH_SIZE" default:"500"`
	ClickHouseFlush     time.Duration `long:"clickhouse-flush-period" env:"CLICKHOUSE_FLUSH_PERIOD" default:"15s"`

	AMQP           string `long:"amqp" env:"AMQP" default:""`
	AMQPExchange   string `long:"amqp-exchange" env:"AMQP_EXCHANGE" default:"invite"`
	AMQPRoutingKey string `long:"amqp-routing-key" env:"AMQP_ROUTING_KEY" default:"bound"`

	NotifyTimeout time.Duration `long:"notify-timeout" env:"NOTIFY_TIMEOUT" default:"5s" description:"per notifier"`
	MaxPageSize   uint64        `long:"max-page-size" env:"MAX_PAGE_SIZE" default:"100"`
}

func Listen(closing <-chan os.Signal, config *Config, logger *log.Logger) error {
	m := metrics.New()

	store, err := newStorage(config, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var rd *redis.Client
	if config.Redis != "" {
		rd = newRedis(config.Redis)
		logger.Debugf("Redis: connected to %s", config.Redis)
		defer rd.Close()
	}

	var notifiers []pkg.Notifier
	var analytics *notify.ClickHouse
	if rd != nil {
		notifiers = append(notifiers, notify.NewRedis(rd, config.RedisChannelBound))
	}

	if config.ClickHouse != "" {
		ch := newClickHouse(config.ClickHouse)
		logger.Debugf("ClickHouse: connected to %s", config.ClickHouse)
		defer ch.Close()

		analytics = notify.NewClickHouse(closing, ch, config.ClickHouseBatchSize, config.ClickHouseFlush, logger)
		notifiers = append(notifiers, analytics)
	}

	if config.AMQP != "" {
		mq, err := notify.NewAMQP(config.AMQP, config.AMQPExchange, config.AMQPRoutingKey)
		if err != nil {
			return errors.Wrap(err, "amqp")
		}
		logger.Debugf("AMQP: publishing to exchange %s", config.AMQPExchange)
		defer mq.Close()

		notifiers = append(notifiers, mq)
	}

	broadcast := pkg.NewBroadcast(logger, notifiers...)
	broadcast.UpdateTimeout = config.NotifyTimeout
	broadcast.OnFailure = m.IncrementNotifyFailure

	registry, err := referral.New(context.Background(), logger, store, broadcast)
	if err != nil {
		return err
	}
	registry.NotifyTimeout = config.NotifyTimeout * time.Duration(len(notifiers)+1)

	owner := pkg.None
	if config.Owner != "" {
		if owner, err = pkg.ParseAddress(config.Owner); err != nil {
			return errors.Wrap(err, "owner")
		}
	}

	var admin api.Admin
	if rd != nil {
		admin, err = access.NewRedis(logger, closing, rd, config.RedisRolesKey, config.RedisChannelRolesUpdate, owner)
		if err != nil {
			return err
		}
	} else {
		admin = access.NewRoles(owner)
	}

	handler := api.NewHandler(logger, registry, admin, m)
	handler.MaxPageSize = config.MaxPageSize

	apiServer := &http.Server{Addr: config.Listen, Handler: handler.Router(), ReadHeaderTimeout: 10 * time.Second}
	metricsServer := &http.Server{Addr: net.JoinHostPort("", strconv.Itoa(config.PrometheusPort)), Handler: promhttp.Handler()}

	for _, srv := range []*http.Server{apiServer, metricsServer} {
		go func(srv *http.Server) {
			logger.Infof("listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithField("addr", srv.Addr).WithError(err).Error("http server stopped")
			}
		}(srv)
	}

	if rd != nil {
		bindSub := rd.Subscribe(context.Background(), config.RedisChannelBind)
		defer bindSub.Unsubscribe(context.Background(), config.RedisChannelBind)
		defer bindSub.Close()

		//pub sub bind ingest
		go listenBinds(closing, bindSub.Channel(), registry, m, logger)
	}

	<-closing

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	for _, srv := range []*http.Server{apiServer, metricsServer} {
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithField("addr", srv.Addr).WithError(err).Warn("failed to shut down http server")
		}
	}

	if analytics != nil {
		select {
		case <-analytics.Done():
		case <-ctx.Done():
			logger.Warn("gave up waiting for clickhouse flush")
		}
	}

	return nil
}

func newStorage(config *Config, logger *log.Logger) (pkg.Storage, error) {
	switch config.Storage {
	case "memory":
		logger.Warn("memory storage: binds are lost on restart")
		return storage.NewMemory(), nil
	case "leveldb":
		return storage.NewLevelDB(config.LevelDB)
	default:
		pg := newPostgres(config.Postgres)
		logger.Debugf("Postgres: connected to %s", config.Postgres)

		s := storage.NewPostgres(pg)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := s.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return s, nil
	}
}

func parseBindMessage(payload string) (child, parent common.Address, err error) {
	parts := strings.Split(payload, ",")
	if len(parts) != 2 {
		return pkg.None, pkg.None, errors.Errorf("expected child,parent got %d fields", len(parts))
	}

	if child, err = pkg.ParseAddress(parts[0]); err != nil {
		return pkg.None, pkg.None, errors.Wrap(err, "child")
	}
	if parent, err = pkg.ParseAddress(parts[1]); err != nil {
		return pkg.None, pkg.None, errors.Wrap(err, "parent")
	}

	return child, parent, nil
}

func listenBinds(closing <-chan os.Signal, ch <-chan *redis.Message, referrals pkg.Referral, m *metrics.Metrics, logger *log.Logger) error {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return errors.New("bind subscription closed")
			}

			child, parent, err := parseBindMessage(msg.Payload)
			if err != nil {
				logger.WithField("payload", msg.Payload).WithError(err).Error("failed to parse bind message")
				continue
			}

			start := time.Now()
			_, err = referrals.Bind(context.Background(), child, parent)
			m.ObserveBind(start, err)
			if err != nil {
				entry := logger.WithFields(map[string]interface{}{
					"child":  child.Hex(),
					"parent": parent.Hex(),
				}).WithError(err)

				if pkg.IsRejection(err) {
					entry.Warn("bind rejected")
				} else {
					entry.Error("failed to bind")
				}
			}
		case <-closing:
			return errors.New("close received")
		}
	}
}

func newRedis(dsn string) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	options, err := redis.ParseURL(dsn)
	if err != nil {
		panic(err)
	}

	rdb := redis.NewClient(options)

	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		panic(err)
	}

	return rdb
}

func newClickHouse(dsn string) *sqlx.DB {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "clickhouse", dsn)
	if err != nil {
		panic(err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		panic(err)
	}

	return db
}

func newPostgres(dsn string) *sqlx.DB {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		panic(err)
	}

	err = db.Ping()
	if err != nil {
		panic(err)
	}

	return db
}
