package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const createTablesSQL = `CREATE TABLE IF NOT EXISTS invite_users (
							addr       CHAR(42) PRIMARY KEY,
							parent     CHAR(42) NOT NULL,
							first_num  BIGINT   NOT NULL DEFAULT 0,
							second_num BIGINT   NOT NULL DEFAULT 0,
							bind_time  BIGINT   NOT NULL DEFAULT 0);
						 CREATE TABLE IF NOT EXISTS invite_records (
							parent    CHAR(42) NOT NULL,
							seq       BIGINT   NOT NULL,
							addr      CHAR(42) NOT NULL,
							bind_time BIGINT   NOT NULL,
							PRIMARY KEY (parent, seq))`

// binds from every process sharing the database queue on this key, one transaction at a time
const (
	bindLockKey  int64 = 0x696e76697465
	lockBindsSQL       = `SELECT pg_advisory_xact_lock($1)`
)

// noParent is pkg.None as stored in a CHAR(42) column.
const noParent = "0x0000000000000000000000000000000000000000"

// the child row only changes while it has no parent yet
const bindChildSQL = `INSERT INTO invite_users (addr, parent, first_num, second_num, bind_time)
					  VALUES (:addr, :parent, :first_num, :second_num, :bind_time)
					  ON CONFLICT (addr)
					  DO UPDATE SET parent = EXCLUDED.parent,
									bind_time = EXCLUDED.bind_time
					  WHERE invite_users.parent = '` + noParent + `'`

const creditParentSQL = `INSERT INTO invite_users (addr, parent, first_num, second_num, bind_time)
						 VALUES (:addr, :parent, :first_num, :second_num, :bind_time)
						 ON CONFLICT (addr)
						 DO UPDATE SET first_num = invite_users.first_num + 1`

const creditGrandparentSQL = `INSERT INTO invite_users (addr, parent, first_num, second_num, bind_time)
							  VALUES (:addr, :parent, :first_num, :second_num, :bind_time)
							  ON CONFLICT (addr)
							  DO UPDATE SET second_num = invite_users.second_num + 1`

const insertRecordSQL = `INSERT INTO invite_records (parent, seq, addr, bind_time)
						 VALUES (:parent, :seq, :addr, :bind_time)`

const (
	selectUsersSQL   = `SELECT addr, parent, first_num, second_num, bind_time FROM invite_users`
	selectRecordsSQL = `SELECT parent, seq, addr, bind_time FROM invite_records ORDER BY parent, seq`

	selectUserSQL          = selectUsersSQL + ` WHERE addr = $1`
	selectParentRecordsSQL = `SELECT parent, seq, addr, bind_time FROM invite_records WHERE parent = $1 ORDER BY seq`
)

type userRow struct {
	Addr      string `db:"addr"`
	Parent    string `db:"parent"`
	FirstNum  int64  `db:"first_num"`
	SecondNum int64  `db:"second_num"`
	BindTime  int64  `db:"bind_time"`
}

type recordRow struct {
	Parent   string `db:"parent"`
	Seq      int64  `db:"seq"`
	Addr     string `db:"addr"`
	BindTime int64  `db:"bind_time"`
}

func toUserRow(u pkg.User) userRow {
	return userRow{
		Addr:      u.Addr.Hex(),
		Parent:    u.Parent.Hex(),
		FirstNum:  int64(u.FirstNum),
		SecondNum: int64(u.SecondNum),
		BindTime:  int64(u.BindTime),
	}
}

func (r userRow) user() pkg.User {
	return pkg.User{
		Addr:      toAddress(r.Addr),
		Parent:    toAddress(r.Parent),
		FirstNum:  uint64(r.FirstNum),
		SecondNum: uint64(r.SecondNum),
		BindTime:  uint64(r.BindTime),
	}
}

func toRecordRow(b pkg.Bind) recordRow {
	return recordRow{
		Parent:   b.Parent.Addr.Hex(),
		Seq:      int64(b.Seq),
		Addr:     b.Record.Addr.Hex(),
		BindTime: int64(b.Record.BindTime),
	}
}

func (r recordRow) record() pkg.Record {
	return pkg.Record{
		Addr:     toAddress(r.Addr),
		BindTime: uint64(r.BindTime),
	}
}

func toAddress(s string) common.Address {
	return common.HexToAddress(strings.TrimSpace(s))
}

type Postgres struct {
	pg *sqlx.DB
}

func NewPostgres(pg *sqlx.DB) *Postgres {
	return &Postgres{pg: pg}
}

func (p *Postgres) Name() string {
	return "postgres"
}

func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.pg.ExecContext(ctx, createTablesSQL)
	return errors.Wrap(err, "create tables")
}

func (p *Postgres) Load(ctx context.Context) (*pkg.State, error) {
	var users []userRow
	if err := p.pg.SelectContext(ctx, &users, selectUsersSQL); err != nil {
		return nil, errors.Wrap(err, "select users")
	}

	var records []recordRow
	if err := p.pg.SelectContext(ctx, &records, selectRecordsSQL); err != nil {
		return nil, errors.Wrap(err, "select records")
	}

	state := pkg.NewState()
	for _, row := range users {
		u := row.user()
		state.Users[u.Addr] = u
	}
	for _, row := range records {
		parent := toAddress(row.Parent)
		state.Records[parent] = append(state.Records[parent], row.record())
	}

	return state, nil
}

func getUser(ctx context.Context, q sqlx.QueryerContext, addr common.Address) (pkg.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, q, &row, selectUserSQL, addr.Hex())
	if errors.Is(err, sql.ErrNoRows) {
		return pkg.User{Addr: addr}, nil
	}
	if err != nil {
		return pkg.User{Addr: addr}, errors.Wrapf(err, "select user %s", addr.Hex())
	}
	return row.user(), nil
}

func (p *Postgres) Save(ctx context.Context, caller, parent common.Address, bindTime uint64) (pkg.Bind, error) {
	tx, err := p.pg.BeginTxx(ctx, nil)
	if err != nil {
		return pkg.Bind{}, errors.Wrap(err, "BeginTxx")
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockBindsSQL, bindLockKey); err != nil {
		return pkg.Bind{}, errors.Wrap(err, "lock binds")
	}

	var readErr error
	read := make(map[common.Address]pkg.User)
	lookup := func(addr common.Address) pkg.User {
		if u, ok := read[addr]; ok {
			return u
		}
		u, err := getUser(ctx, tx, addr)
		if err != nil {
			if readErr == nil {
				readErr = err
			}
			return u
		}
		read[addr] = u
		return u
	}

	bind, err := pkg.PrepareBind(lookup, caller, parent, bindTime)
	if readErr != nil {
		return pkg.Bind{}, readErr
	}
	if err != nil {
		return pkg.Bind{}, err
	}

	res, err := tx.NamedExecContext(ctx, bindChildSQL, toUserRow(bind.Child))
	if err != nil {
		return pkg.Bind{}, errors.Wrapf(err, "bind user %s", caller.Hex())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return pkg.Bind{}, errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return pkg.Bind{}, errors.Wrapf(pkg.ErrAlreadyBound, "stored user %s", caller.Hex())
	}

	if _, err = tx.NamedExecContext(ctx, creditParentSQL, toUserRow(bind.Parent)); err != nil {
		return pkg.Bind{}, errors.Wrapf(err, "credit parent %s", parent.Hex())
	}

	if bind.Grandparent != nil {
		if _, err = tx.NamedExecContext(ctx, creditGrandparentSQL, toUserRow(*bind.Grandparent)); err != nil {
			return pkg.Bind{}, errors.Wrapf(err, "credit grandparent %s", bind.Grandparent.Addr.Hex())
		}
	}

	if _, err = tx.NamedExecContext(ctx, insertRecordSQL, toRecordRow(bind)); err != nil {
		return pkg.Bind{}, errors.Wrap(err, "insert record")
	}

	if err = tx.Commit(); err != nil {
		return pkg.Bind{}, errors.Wrap(err, "Commit")
	}

	return bind, nil
}

func (p *Postgres) User(ctx context.Context, addr common.Address) (pkg.User, error) {
	return getUser(ctx, p.pg, addr)
}

func (p *Postgres) Records(ctx context.Context, parent common.Address) ([]pkg.Record, error) {
	var rows []recordRow
	if err := p.pg.SelectContext(ctx, &rows, selectParentRecordsSQL, parent.Hex()); err != nil {
		return nil, errors.Wrapf(err, "select records of %s", parent.Hex())
	}

	records := make([]pkg.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (p *Postgres) Close() error {
	return p.pg.Close()
}
