package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-backend/internal/platform/db"
)

type Store struct{ conn *db.Conn }

func NewStore(conn *db.Conn) *Store { return &Store{conn: conn} }

var bookColumns = []any{"isbn", "title", "author", "quantity", "shelf_location", "created_at", "updated_at"}

func (s *Store) Create(ctx context.Context, b Book) error {
	const q = `
	INSERT INTO books (isbn, title, author, quantity, shelf_location, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.conn.ExecContext(ctx, s.conn.Rebind(q),
		string(b.ISBN), b.Title, b.Author, b.Quantity, b.ShelfLocation, b.CreatedAt, b.UpdatedAt)
	return err
}

// FindByISBN: 見つからなければ (nil, nil)
func (s *Store) FindByISBN(ctx context.Context, isbn ISBN) (*Book, error) {
	return FindByISBNTx(ctx, s.conn, isbn)
}

func FindByISBNTx(ctx context.Context, tx db.DBTX, isbn ISBN) (*Book, error) {
	const q = `
	SELECT isbn, title, author, quantity, shelf_location, created_at, updated_at
	FROM books WHERE isbn = ?`
	var b Book
	if err := sqlx.GetContext(ctx, tx, &b, tx.Rebind(q), string(isbn)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Update は指定フィールドだけ SET する
func (s *Store) Update(ctx context.Context, isbn ISBN, p Patch, now time.Time) error {
	rec := goqu.Record{"updated_at": now}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Author != nil {
		rec["author"] = *p.Author
	}
	if p.Quantity != nil {
		rec["quantity"] = *p.Quantity
	}
	if p.ShelfLocation != nil {
		rec["shelf_location"] = *p.ShelfLocation
	}
	q, args, err := s.conn.Dialect.Builder().
		Update("books").
		Prepared(true).
		Set(rec).
		Where(goqu.C("isbn").Eq(string(isbn))).
		ToSQL()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, q, args...)
	return err
}

// Delete: 削除できたら true
func (s *Store) Delete(ctx context.Context, isbn ISBN) (bool, error) {
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(`DELETE FROM books WHERE isbn = ?`), string(isbn))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Search は条件の OR（AND ではない）。条件なしなら全件
func (s *Store) Search(ctx context.Context, f Filter) ([]Book, error) {
	ds := s.conn.Dialect.Builder().
		From("books").
		Prepared(true).
		Select(bookColumns...).
		Order(goqu.C("isbn").Asc())

	if !f.Empty() {
		var conds []goqu.Expression
		if f.ISBN != nil {
			conds = append(conds, goqu.C("isbn").Eq(string(*f.ISBN)))
		}
		if f.Title != nil {
			conds = append(conds, goqu.C("title").Eq(*f.Title))
		}
		if f.Author != nil {
			conds = append(conds, goqu.C("author").Eq(*f.Author))
		}
		ds = ds.Where(goqu.Or(conds...))
	}

	q, args, err := ds.ToSQL()
	if err != nil {
		return nil, err
	}
	out := []Book{}
	if err := s.conn.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// ---------- 貸出処理から Tx 内で呼ぶもの ----------

// TakeCopyTx: 在庫が1以上のときだけ1冊減らす。減らせたら true
func TakeCopyTx(ctx context.Context, tx db.DBTX, isbn ISBN, now time.Time) (bool, error) {
	const q = `UPDATE books SET quantity = quantity - 1, updated_at = ? WHERE isbn = ? AND quantity > 0`
	return execAffected(ctx, tx, tx.Rebind(q), now, string(isbn))
}

// PutBackCopyTx: 返却で1冊戻す。対象の本が無ければ false
func PutBackCopyTx(ctx context.Context, tx db.DBTX, isbn ISBN, now time.Time) (bool, error) {
	const q = `UPDATE books SET quantity = quantity + 1, updated_at = ? WHERE isbn = ?`
	return execAffected(ctx, tx, tx.Rebind(q), now, string(isbn))
}

func execAffected(ctx context.Context, tx db.DBTX, q string, args ...any) (bool, error) {
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
