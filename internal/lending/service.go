package lending

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"library-backend/internal/catalog"
	"library-backend/internal/platform/apperr"
)

// -------------- Clock --------------

type Clock interface{ Now() time.Time }
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// -------------- Service --------------

type Service struct {
	books     BookFinder
	borrowers BorrowerFinder
	ledger    Ledger
	clock     Clock
	loc       *time.Location // 返却期限の暦日を数えるタイムゾーン
}

func NewService(books BookFinder, borrowers BorrowerFinder, ledger Ledger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		books:     books,
		borrowers: borrowers,
		ledger:    ledger,
		clock:     realClock{},
		loc:       loc,
	}
}

// 借用者 → 本 の順で存在確認
func (s *Service) checkParties(ctx context.Context, borrowerID int64, isbn catalog.ISBN) (*catalog.Book, error) {
	ok, err := s.borrowers.Exists(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound(apperr.MsgInvalidBorrower)
	}
	book, err := s.books.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.ErrNotFound(apperr.MsgInvalidISBN)
	}
	return book, nil
}

// POST /borrow
// チェック順: 欠落 → 借用者 → 本 → 期間 → 貸出済み → 在庫
func (s *Service) Borrow(ctx context.Context, borrowerID int64, isbn catalog.ISBN, days int) (Loan, error) {
	if borrowerID == 0 || isbn == "" || days == 0 {
		return Loan{}, apperr.ErrInvalid(apperr.MsgInvalidRequest)
	}
	book, err := s.checkParties(ctx, borrowerID, isbn)
	if err != nil {
		return Loan{}, err
	}
	if !ValidDuration(days) {
		return Loan{}, apperr.ErrInvalid(apperr.MsgInvalidDuration)
	}
	borrowed, err := s.ledger.Exists(ctx, borrowerID, isbn)
	if err != nil {
		return Loan{}, err
	}
	if borrowed {
		return Loan{}, apperr.ErrConflict(apperr.MsgAlreadyBorrowed)
	}
	if book.Quantity == 0 {
		return Loan{}, apperr.ErrOutOfStock(apperr.MsgOutOfStock)
	}

	now := s.clock.Now()
	loan := Loan{
		BorrowerID: borrowerID,
		ISBN:       isbn,
		DueDate:    DueDate(now, days, s.loc),
		BorrowedAt: now,
	}

	// 事前チェックと同時に走った別リクエストはここで弾かれる
	err = s.ledger.InTx(ctx, func(ctx context.Context, tx Tx) error {
		// 先に本の行を更新してロックを取る（INSERT の外部キー確認と順序が逆だとデッドロックしうる）
		ok, err := tx.TakeCopy(ctx, isbn)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrOutOfStock(apperr.MsgOutOfStock)
		}
		if err := tx.CreateLoan(ctx, loan); err != nil {
			if errors.Is(err, ErrLoanExists) {
				return apperr.ErrConflict(apperr.MsgAlreadyBorrowed)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return Loan{}, err
	}

	log.Printf("[INFO] borrowed borrower_id=%d isbn=%s due=%s", borrowerID, isbn, loan.DueDate.Format("2006-01-02"))
	return loan, nil
}

// POST /return
func (s *Service) Return(ctx context.Context, borrowerID int64, isbn catalog.ISBN) error {
	if borrowerID == 0 || isbn == "" {
		return apperr.ErrInvalid(apperr.MsgInvalidRequest)
	}
	if _, err := s.checkParties(ctx, borrowerID, isbn); err != nil {
		return err
	}

	err := s.ledger.InTx(ctx, func(ctx context.Context, tx Tx) error {
		ok, err := tx.DestroyLoan(ctx, borrowerID, isbn)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrConflict(apperr.MsgNotBorrowed)
		}
		ok, err = tx.PutBackCopy(ctx, isbn)
		if err != nil {
			return err
		}
		if !ok {
			// 貸出中の本は FK で削除できないので通常は起きない
			return fmt.Errorf("return: book %s vanished while on loan", isbn)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] returned borrower_id=%d isbn=%s", borrowerID, isbn)
	return nil
}

// GET /borrowed
func (s *Service) ListBorrowed(ctx context.Context, borrowerID int64) ([]Loan, error) {
	if borrowerID == 0 {
		return nil, apperr.ErrInvalid(apperr.MsgInvalidRequest)
	}
	ok, err := s.borrowers.Exists(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound(apperr.MsgInvalidBorrower)
	}
	return s.ledger.FindByBorrower(ctx, borrowerID)
}

// GET /overdue
// 全借用者が対象（管理用）。asOf がゼロなら現在時刻
func (s *Service) ListOverdue(ctx context.Context, asOf time.Time) ([]Loan, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	return s.ledger.FindOverdue(ctx, asOf)
}
