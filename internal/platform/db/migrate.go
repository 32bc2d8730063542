package db

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

func schemaFile(d Dialect) string {
	switch d.Name {
	case DialectMySQL:
		return "schema/mysql.sql"
	case DialectPostgres:
		return "schema/postgres.sql"
	default:
		return "schema/sqlite.sql"
	}
}

// Migrate はスキーマを適用する（CREATE ... IF NOT EXISTS なので何度実行してもよい）
func Migrate(ctx context.Context, conn *Conn) error {
	buf, err := schemaFS.ReadFile(schemaFile(conn.Dialect))
	if err != nil {
		return fmt.Errorf("スキーマ読み込み失敗: %w", err)
	}
	// mysql driver は multiStatements 無しだと複文を受け付けないので1文ずつ流す
	for _, stmt := range strings.Split(string(buf), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("スキーマ適用失敗: %w", err)
		}
	}
	return nil
}
