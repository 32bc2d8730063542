package borrowers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/db"
)

var validate = validator.New()

// LoanCounter は借用者ごとの貸出中件数（削除可否の判定用）
type LoanCounter interface {
	CountByBorrower(ctx context.Context, borrowerID int64) (int, error)
}

type Service struct {
	store *Store
	loans LoanCounter
	now   func() time.Time
}

func NewService(store *Store, loans LoanCounter) *Service {
	return &Service{
		store: store,
		loans: loans,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// メールは大文字小文字を区別せず一意（小文字で保存・検索）
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// 入力チェック: 欠落 → メール形式 → 名前の長さ の順
func checkNameEmail(name, email string) error {
	if name == "" || email == "" {
		return apperr.ErrInvalid(apperr.MsgMissingParams)
	}
	if !db.FitsText(email) || !validEmail(email) {
		return apperr.ErrInvalid(apperr.MsgInvalidEmail)
	}
	if !db.FitsText(name) {
		return apperr.ErrInvalid(apperr.MsgInvalidParams)
	}
	return nil
}

// POST /borrowers
func (s *Service) CreateBorrower(ctx context.Context, in CreateBorrowerRequest) (BorrowerResponse, error) {
	name, email := strings.TrimSpace(in.Name), normalizeEmail(in.Email)
	if err := checkNameEmail(name, email); err != nil {
		return BorrowerResponse{}, err
	}

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return BorrowerResponse{}, err
	}
	if existing != nil {
		return BorrowerResponse{}, apperr.ErrDuplicate(apperr.MsgEmailExists)
	}

	now := s.now()
	b := Borrower{Name: name, Email: email, RegisteredAt: now, UpdatedAt: now}
	id, err := s.store.Create(ctx, b)
	if err != nil {
		// UNIQUE 制約が最後の砦
		if db.IsDuplicateKey(err) {
			return BorrowerResponse{}, apperr.ErrDuplicate(apperr.MsgEmailExists)
		}
		return BorrowerResponse{}, err
	}
	b.ID = id
	log.Printf("[INFO] borrower created id=%d", id)
	return toBorrowerResponse(b), nil
}

// PATCH /borrowers
func (s *Service) UpdateBorrower(ctx context.Context, in UpdateBorrowerRequest) (BorrowerResponse, error) {
	name, email := strings.TrimSpace(in.Name), normalizeEmail(in.Email)
	if err := checkNameEmail(name, email); err != nil {
		return BorrowerResponse{}, err
	}

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return BorrowerResponse{}, err
	}
	if existing == nil {
		return BorrowerResponse{}, apperr.ErrNotFound(apperr.MsgEmailNotFound)
	}

	// MySQL は値が同じだと affected=0 を返すので件数では判定しない
	if _, err := s.store.UpdateNameByEmail(ctx, email, name, s.now()); err != nil {
		return BorrowerResponse{}, err
	}
	b, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return BorrowerResponse{}, err
	}
	if b == nil {
		return BorrowerResponse{}, apperr.ErrNotFound(apperr.MsgEmailNotFound)
	}
	return toBorrowerResponse(*b), nil
}

// DELETE /borrowers
// 貸出中の借用者は消さない
func (s *Service) DeleteBorrower(ctx context.Context, id *int64) error {
	if id == nil || *id <= 0 {
		return apperr.ErrInvalid(apperr.MsgInvalidBorrower)
	}
	exists, err := s.store.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrNotFound(apperr.MsgBorrowerNotFound)
	}

	n, err := s.loans.CountByBorrower(ctx, *id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.ErrConflict(apperr.MsgBorrowerHasLoans)
	}

	ok, err := s.store.Delete(ctx, *id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.ErrConflict(apperr.MsgBorrowerHasLoans)
		}
		return err
	}
	if !ok {
		return apperr.ErrNotFound(apperr.MsgBorrowerNotFound)
	}
	log.Printf("[INFO] borrower deleted id=%d", *id)
	return nil
}

// GET /borrowers
func (s *Service) ListBorrowers(ctx context.Context) ([]BorrowerResponse, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBorrowerResponse(b))
	}
	return out, nil
}

// Exists は貸出処理向け
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Exists(ctx, id)
}
