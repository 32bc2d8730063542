package lending

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-backend/internal/catalog"
	"library-backend/internal/platform/db"
)

// Store は Ledger の SQL 実装
type Store struct {
	conn *db.Conn
	now  func() time.Time
}

func NewStore(conn *db.Conn) *Store {
	return &Store{conn: conn, now: func() time.Time { return time.Now().UTC() }}
}

var loanColumns = []any{"borrower_id", "book_isbn", "due_date", "borrowed_at"}

func (s *Store) Exists(ctx context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error) {
	const q = `SELECT COUNT(*) FROM loans WHERE borrower_id = ? AND book_isbn = ?`
	var n int
	if err := s.conn.GetContext(ctx, &n, s.conn.Rebind(q), borrowerID, string(isbn)); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) FindByBorrower(ctx context.Context, borrowerID int64) ([]Loan, error) {
	q, args, err := s.conn.Dialect.Builder().
		From("loans").
		Prepared(true).
		Select(loanColumns...).
		Where(goqu.C("borrower_id").Eq(borrowerID)).
		Order(goqu.C("borrowed_at").Asc(), goqu.C("book_isbn").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}
	out := []Loan{}
	if err := s.conn.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) FindOverdue(ctx context.Context, asOf time.Time) ([]Loan, error) {
	q, args, err := s.conn.Dialect.Builder().
		From("loans").
		Prepared(true).
		Select(loanColumns...).
		Where(goqu.C("due_date").Lt(asOf.UTC())).
		Order(goqu.C("due_date").Asc(), goqu.C("borrower_id").Asc(), goqu.C("book_isbn").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}
	out := []Loan{}
	if err := s.conn.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByBook / CountByBorrower は削除可否の判定用
func (s *Store) CountByBook(ctx context.Context, isbn catalog.ISBN) (int, error) {
	var n int
	err := s.conn.GetContext(ctx, &n, s.conn.Rebind(`SELECT COUNT(*) FROM loans WHERE book_isbn = ?`), string(isbn))
	return n, err
}

func (s *Store) CountByBorrower(ctx context.Context, borrowerID int64) (int, error) {
	var n int
	err := s.conn.GetContext(ctx, &n, s.conn.Rebind(`SELECT COUNT(*) FROM loans WHERE borrower_id = ?`), borrowerID)
	return n, err
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return db.RunInTx(ctx, s.conn, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &sqlTx{tx: tx, now: s.now()})
	})
}

type sqlTx struct {
	tx  *sqlx.Tx
	now time.Time
}

func (t *sqlTx) TakeCopy(ctx context.Context, isbn catalog.ISBN) (bool, error) {
	return catalog.TakeCopyTx(ctx, t.tx, isbn, t.now)
}

func (t *sqlTx) PutBackCopy(ctx context.Context, isbn catalog.ISBN) (bool, error) {
	return catalog.PutBackCopyTx(ctx, t.tx, isbn, t.now)
}

func (t *sqlTx) CreateLoan(ctx context.Context, l Loan) error {
	const q = `INSERT INTO loans (borrower_id, book_isbn, due_date, borrowed_at) VALUES (?, ?, ?, ?)`
	_, err := t.tx.ExecContext(ctx, t.tx.Rebind(q), l.BorrowerID, string(l.ISBN), l.DueDate.UTC(), l.BorrowedAt.UTC())
	if db.IsDuplicateKey(err) {
		return ErrLoanExists
	}
	return err
}

func (t *sqlTx) DestroyLoan(ctx context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error) {
	const q = `DELETE FROM loans WHERE borrower_id = ? AND book_isbn = ?`
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(q), borrowerID, string(isbn))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
