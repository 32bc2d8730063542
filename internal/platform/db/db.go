package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"library-backend/internal/platform/config"
)

func init() {
	// modernc の driver 名 "sqlite" は sqlx の既定リストに無いので明示
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Conn は接続プールと方言をまとめたもの
type Conn struct {
	*sqlx.DB
	Dialect Dialect
}

func Connect(c config.DatabaseConfig) (*Conn, error) {
	dialect, err := DialectFor(c.Driver)
	if err != nil {
		return nil, err
	}
	dsn, err := buildDSN(c)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("接続準備に失敗: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("DB接続に失敗: %w", err)
	}

	if dialect.Name == DialectSQLite {
		// SQLite は書き込み1本
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		// 接続プール（合算がDBの max_connections を超えないよう配分する）
		db.SetMaxOpenConns(orDefault(c.MaxOpenConns, 80))
		db.SetMaxIdleConns(orDefault(c.MaxIdleConns, 20))
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	return &Conn{DB: db, Dialect: dialect}, nil
}

func buildDSN(c config.DatabaseConfig) (string, error) {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&tls=false&timeout=3s&readTimeout=5s&writeTimeout=5s&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.DBName), nil
	case "postgres", "pgx":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.Username, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=disable&connect_timeout=3",
		}
		return u.String(), nil
	case "sqlite":
		if c.Path == "" {
			return "", fmt.Errorf("sqlite の path が未設定")
		}
		// pragma は接続ごとに適用される
		return "file:" + c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite", nil
	}
	return "", fmt.Errorf("未対応の driver: %q", c.Driver)
}

func orDefault(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}
