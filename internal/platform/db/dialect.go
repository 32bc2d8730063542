package db

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

type Dialect struct {
	Name       string // goqu の方言名
	DriverName string // database/sql に登録された driver 名
	// INSERT ... RETURNING で採番IDを受け取る（lib/pq は LastInsertId 非対応）
	Returning bool
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return Dialect{Name: DialectMySQL, DriverName: "mysql"}, nil
	case "postgres":
		return Dialect{Name: DialectPostgres, DriverName: "postgres", Returning: true}, nil
	case "pgx":
		return Dialect{Name: DialectPostgres, DriverName: "pgx", Returning: true}, nil
	case "sqlite":
		return Dialect{Name: DialectSQLite, DriverName: "sqlite"}, nil
	}
	return Dialect{}, fmt.Errorf("未対応の driver: %q", driver)
}

// Builder は goqu のクエリビルダ（プレースホルダは方言に合わせて生成される）
func (d Dialect) Builder() goqu.DialectWrapper {
	return goqu.Dialect(d.Name)
}
