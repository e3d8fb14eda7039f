package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"
	"math/rand"

	"github.com/jmoiron/sqlx"
)

type ConnectConfig interface {
	FormatDSN() string
}

// SqlExecutor is the subset of sqlx used by the stores. Both *sqlx.DB
// and *sqlx.Tx satisfy it, which is how Transaction routes statements
// through an open tx.
type SqlExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}

type SqlProvider struct {
	master   *sqlx.DB
	replicas []*sqlx.DB
}

func MustSetupProvider(m ConnectConfig, s ...ConnectConfig) *SqlProvider {
	p := &SqlProvider{
		master: sqlx.MustConnect("postgres", m.FormatDSN()),
	}
	for _, cfg := range s {
		p.replicas = append(p.replicas, sqlx.MustConnect("postgres", cfg.FormatDSN()))
	}
	return p
}

func (p *SqlProvider) GetMaster() *sqlx.DB {
	return p.master
}

func (p *SqlProvider) GetReplica() *sqlx.DB {
	if len(p.replicas) == 0 {
		return p.master
	}
	return p.replicas[rand.Intn(len(p.replicas))]
}

type txKey struct{}

// Transaction runs fn with a tx bound to ctx. Store calls that receive
// this ctx execute inside the tx; nested calls reuse it.
func (p *SqlProvider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if TxFromCtx(ctx) != nil {
		return fn(ctx)
	}

	tx, err := p.master.Beginx()
	if err != nil {
		return err
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
		return err
	}
	return tx.Commit()
}

func TxFromCtx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
