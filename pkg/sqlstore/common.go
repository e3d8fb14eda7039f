package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

// SqlProviderAchieve is satisfied by *SqlProvider and by any store
// provider embedding it.
type SqlProviderAchieve interface {
	GetMaster() *sqlx.DB
	GetReplica() *sqlx.DB
}

// CommonFields is embedded by every table store. It carries the
// provider handle, the table name and the column list used to build
// select statements.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      types.TableName
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(t types.TableName) {
	c.table = t
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table.Name()
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

// GetMaster returns the tx bound to ctx when present, otherwise the
// master connection.
func (c *CommonFields) GetMaster(ctx context.Context) SqlExecutor {
	if tx := TxFromCtx(ctx); tx != nil {
		return tx
	}
	return c.provider.GetMaster()
}

func (c *CommonFields) GetReplica(ctx context.Context) SqlExecutor {
	if tx := TxFromCtx(ctx); tx != nil {
		return tx
	}
	return c.provider.GetReplica()
}
