package lending

import (
	"context"
	"sort"
	"sync"
	"time"

	"library-backend/internal/catalog"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type memBorrowers map[int64]bool

func (m memBorrowers) Exists(_ context.Context, id int64) (bool, error) { return m[id], nil }

type loanKey struct {
	borrowerID int64
	isbn       catalog.ISBN
}

// memLibrary は本と台帳のインメモリ実装。InTx は状態を複製して、成功時だけ差し替える
type memLibrary struct {
	mu    sync.Mutex
	books map[catalog.ISBN]catalog.Book
	loans map[loanKey]Loan

	failCreateLoan error
}

func newMemLibrary() *memLibrary {
	return &memLibrary{
		books: map[catalog.ISBN]catalog.Book{},
		loans: map[loanKey]Loan{},
	}
}

func (m *memLibrary) addBook(isbn catalog.ISBN, qty int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[isbn] = catalog.Book{ISBN: isbn, Title: "T", Author: "A", Quantity: qty}
}

func (m *memLibrary) quantity(isbn catalog.ISBN) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.books[isbn].Quantity
}

func (m *memLibrary) loanCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loans)
}

func (m *memLibrary) FindByISBN(_ context.Context, isbn catalog.ISBN) (*catalog.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[isbn]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *memLibrary) Exists(_ context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.loans[loanKey{borrowerID, isbn}]
	return ok, nil
}

func sortLoans(out []Loan) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		if out[i].BorrowerID != out[j].BorrowerID {
			return out[i].BorrowerID < out[j].BorrowerID
		}
		return out[i].ISBN < out[j].ISBN
	})
}

func (m *memLibrary) FindByBorrower(_ context.Context, borrowerID int64) ([]Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Loan{}
	for k, l := range m.loans {
		if k.borrowerID == borrowerID {
			out = append(out, l)
		}
	}
	sortLoans(out)
	return out, nil
}

func (m *memLibrary) FindOverdue(_ context.Context, asOf time.Time) ([]Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Loan{}
	for _, l := range m.loans {
		if l.DueDate.Before(asOf) {
			out = append(out, l)
		}
	}
	sortLoans(out)
	return out, nil
}

func (m *memLibrary) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		books:          make(map[catalog.ISBN]catalog.Book, len(m.books)),
		loans:          make(map[loanKey]Loan, len(m.loans)),
		failCreateLoan: m.failCreateLoan,
	}
	for k, v := range m.books {
		tx.books[k] = v
	}
	for k, v := range m.loans {
		tx.loans[k] = v
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	m.books, m.loans = tx.books, tx.loans
	return nil
}

type memTx struct {
	books          map[catalog.ISBN]catalog.Book
	loans          map[loanKey]Loan
	failCreateLoan error
}

func (t *memTx) TakeCopy(_ context.Context, isbn catalog.ISBN) (bool, error) {
	b, ok := t.books[isbn]
	if !ok || b.Quantity <= 0 {
		return false, nil
	}
	b.Quantity--
	t.books[isbn] = b
	return true, nil
}

func (t *memTx) PutBackCopy(_ context.Context, isbn catalog.ISBN) (bool, error) {
	b, ok := t.books[isbn]
	if !ok {
		return false, nil
	}
	b.Quantity++
	t.books[isbn] = b
	return true, nil
}

func (t *memTx) CreateLoan(_ context.Context, l Loan) error {
	if t.failCreateLoan != nil {
		return t.failCreateLoan
	}
	k := loanKey{l.BorrowerID, l.ISBN}
	if _, ok := t.loans[k]; ok {
		return ErrLoanExists
	}
	t.loans[k] = l
	return nil
}

func (t *memTx) DestroyLoan(_ context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error) {
	k := loanKey{borrowerID, isbn}
	if _, ok := t.loans[k]; !ok {
		return false, nil
	}
	delete(t.loans, k)
	return true, nil
}
