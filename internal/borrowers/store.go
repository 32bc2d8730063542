package borrowers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/platform/db"
)

type Store struct{ conn *db.Conn }

func NewStore(conn *db.Conn) *Store { return &Store{conn: conn} }

// Create は採番された id を返す
func (s *Store) Create(ctx context.Context, b Borrower) (int64, error) {
	const q = `
	INSERT INTO borrowers (name, email, registered_at, updated_at)
	VALUES (?, ?, ?, ?)`
	args := []any{b.Name, b.Email, b.RegisteredAt, b.UpdatedAt}

	// lib/pq は LastInsertId 非対応なので RETURNING で受け取る
	if s.conn.Dialect.Returning {
		var id int64
		if err := s.conn.QueryRowxContext(ctx, s.conn.Rebind(q+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const selectBorrower = `SELECT id, name, email, registered_at, updated_at FROM borrowers`

// FindByID: 見つからなければ (nil, nil)
func (s *Store) FindByID(ctx context.Context, id int64) (*Borrower, error) {
	return s.findOne(ctx, selectBorrower+` WHERE id = ?`, id)
}

// FindByEmail: 見つからなければ (nil, nil)
func (s *Store) FindByEmail(ctx context.Context, email string) (*Borrower, error) {
	return s.findOne(ctx, selectBorrower+` WHERE email = ?`, email)
}

func (s *Store) findOne(ctx context.Context, q string, args ...any) (*Borrower, error) {
	var b Borrower
	if err := s.conn.GetContext(ctx, &b, s.conn.Rebind(q), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := s.conn.GetContext(ctx, &n, s.conn.Rebind(`SELECT COUNT(*) FROM borrowers WHERE id = ?`), id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateNameByEmail: 更新できたら true
func (s *Store) UpdateNameByEmail(ctx context.Context, email, name string, now time.Time) (bool, error) {
	const q = `UPDATE borrowers SET name = ?, updated_at = ? WHERE email = ?`
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(q), name, now, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(`DELETE FROM borrowers WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) List(ctx context.Context) ([]Borrower, error) {
	out := []Borrower{}
	if err := s.conn.SelectContext(ctx, &out, selectBorrower+` ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}
