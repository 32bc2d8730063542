package catalog

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/db"
)

// LoanCounter は貸出中の件数を返す（削除可否の判定用）
type LoanCounter interface {
	CountByBook(ctx context.Context, isbn ISBN) (int, error)
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

// title/author 欄に数値だけが入っているのは、取り違えとみなして弾く
var numericRx = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func validText(s string) bool {
	return s != "" && db.FitsText(s) && !numericRx.MatchString(s)
}

func validQuantity(q int) bool {
	return q >= 0 && q <= db.MaxQuantity
}

// POST /books
func (s *Service) CreateBook(ctx context.Context, in CreateBookRequest) (BookResponse, error) {
	isbn, err := in.ISBN.Parse()
	if err != nil {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidParams)
	}
	title, author := normalizeText(in.Title), normalizeText(in.Author)
	if !validText(title) || !validText(author) {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidParams)
	}
	if in.Quantity == nil || !validQuantity(*in.Quantity) {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidParams)
	}
	shelf := strings.TrimSpace(in.ShelfLocation)
	if !db.FitsText(shelf) {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidParams)
	}

	existing, err := s.store.FindByISBN(ctx, isbn)
	if err != nil {
		return BookResponse{}, err
	}
	if existing != nil {
		return BookResponse{}, apperr.ErrDuplicate(apperr.MsgBookExists)
	}

	now := s.now()
	b := Book{
		ISBN:          isbn,
		Title:         title,
		Author:        author,
		Quantity:      *in.Quantity,
		ShelfLocation: shelf,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		// 同時登録で先を越された場合
		if db.IsDuplicateKey(err) {
			return BookResponse{}, apperr.ErrDuplicate(apperr.MsgBookExists)
		}
		return BookResponse{}, err
	}
	log.Printf("[INFO] book created isbn=%s quantity=%d", b.ISBN, b.Quantity)
	return toBookResponse(b), nil
}

// PATCH /books
func (s *Service) UpdateBook(ctx context.Context, in UpdateBookRequest) (BookResponse, error) {
	if in.ISBN.Empty() {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidISBN)
	}
	isbn, err := in.ISBN.Parse()
	if err != nil {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidISBN)
	}
	existing, err := s.store.FindByISBN(ctx, isbn)
	if err != nil {
		return BookResponse{}, err
	}
	if existing == nil {
		return BookResponse{}, apperr.ErrNotFound(apperr.MsgISBNNotFound)
	}

	p := Patch{Quantity: in.Quantity}
	if in.Title != nil {
		v := normalizeText(*in.Title)
		p.Title = &v
	}
	if in.Author != nil {
		v := normalizeText(*in.Author)
		p.Author = &v
	}
	if in.ShelfLocation != nil {
		v := strings.TrimSpace(*in.ShelfLocation)
		p.ShelfLocation = &v
	}
	if p.Empty() {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgNoFields)
	}
	if (p.Title != nil && !validText(*p.Title)) ||
		(p.Author != nil && !validText(*p.Author)) ||
		(p.Quantity != nil && !validQuantity(*p.Quantity)) ||
		(p.ShelfLocation != nil && !db.FitsText(*p.ShelfLocation)) {
		return BookResponse{}, apperr.ErrInvalid(apperr.MsgInvalidParams)
	}

	if err := s.store.Update(ctx, isbn, p, s.now()); err != nil {
		return BookResponse{}, err
	}
	updated, err := s.store.FindByISBN(ctx, isbn)
	if err != nil {
		return BookResponse{}, err
	}
	if updated == nil {
		// 更新直後に削除された
		return BookResponse{}, apperr.ErrNotFound(apperr.MsgISBNNotFound)
	}
	return toBookResponse(*updated), nil
}

// DELETE /books
// 貸出中の本は消さない（FK の RESTRICT でも止まる）
func (s *Service) DeleteBook(ctx context.Context, raw RawISBN) error {
	if raw.Empty() {
		return apperr.ErrInvalid(apperr.MsgInvalidISBN)
	}
	isbn, err := raw.Parse()
	if err != nil {
		return apperr.ErrInvalid(apperr.MsgInvalidISBN)
	}
	existing, err := s.store.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrNotFound(apperr.MsgISBNNotFound)
	}

	n, err := s.loans.CountByBook(ctx, isbn)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.ErrConflict(apperr.MsgBookHasLoans)
	}

	ok, err := s.store.Delete(ctx, isbn)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.ErrConflict(apperr.MsgBookHasLoans)
		}
		return err
	}
	if !ok {
		return apperr.ErrNotFound(apperr.MsgISBNNotFound)
	}
	log.Printf("[INFO] book deleted isbn=%s", isbn)
	return nil
}

// GET /books
// ISBN が解釈できない場合、その条件には何も一致しない
func (s *Service) SearchBooks(ctx context.Context, in SearchBooksRequest) ([]BookResponse, error) {
	var f Filter
	badISBN := false
	if !in.ISBN.Empty() {
		if isbn, err := in.ISBN.Parse(); err == nil {
			f.ISBN = &isbn
		} else {
			badISBN = true
		}
	}
	if v := normalizeText(in.Title); v != "" {
		f.Title = &v
	}
	if v := normalizeText(in.Author); v != "" {
		f.Author = &v
	}
	if badISBN && f.Empty() {
		return []BookResponse{}, nil
	}

	books, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out, nil
}

// FindByISBN は貸出処理向け。見つからなければ (nil, nil)
func (s *Service) FindByISBN(ctx context.Context, isbn ISBN) (*Book, error) {
	return s.store.FindByISBN(ctx, isbn)
}
