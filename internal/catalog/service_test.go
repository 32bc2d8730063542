package catalog

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/db"
	"library-backend/internal/platform/db/dbtest"
)

type fakeLoans map[ISBN]int

func (f fakeLoans) CountByBook(_ context.Context, isbn ISBN) (int, error) { return f[isbn], nil }

func newTestService(t *testing.T, loans fakeLoans) (*Service, *db.Conn) {
	t.Helper()
	conn := dbtest.Open(t)
	svc := NewService(NewStore(conn), loans)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	return svc, conn
}

func intp(v int) *int { return &v }
func strp(v string) *string { return &v }

func addBook(t *testing.T, svc *Service, isbn, title, author string, qty int) BookResponse {
	t.Helper()
	res, err := svc.CreateBook(context.Background(), CreateBookRequest{
		ISBN: RawISBN(isbn), Title: title, Author: author, Quantity: intp(qty), ShelfLocation: "A12",
	})
	require.NoError(t, err)
	return res
}

func TestCreateBook(t *testing.T) {
	svc, _ := newTestService(t, fakeLoans{})
	ctx := context.Background()

	res := addBook(t, svc, "978-3-16-148410-0", "History of hairbrushes", "Afro B. Rusher", 12)
	assert.Equal(t, ISBN("9783161484100"), res.ISBN)
	assert.Equal(t, 12, res.Quantity)

	got, err := svc.FindByISBN(ctx, "9783161484100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A12", got.ShelfLocation)

	_, err = svc.CreateBook(ctx, CreateBookRequest{
		ISBN: "9783161484100", Title: "Other", Author: "Someone", Quantity: intp(1),
	})
	assert.True(t, apperr.Is(err, apperr.CodeDuplicateKey))
}

func TestCreateBook_Invalid(t *testing.T) {
	svc, _ := newTestService(t, fakeLoans{})

	tests := []struct {
		name string
		req  CreateBookRequest
	}{
		{"missing isbn", CreateBookRequest{Title: "T", Author: "A", Quantity: intp(1)}},
		{"bad isbn", CreateBookRequest{ISBN: "abc", Title: "T", Author: "A", Quantity: intp(1)}},
		{"empty title", CreateBookRequest{ISBN: "1", Title: " ", Author: "A", Quantity: intp(1)}},
		{"numeric title", CreateBookRequest{ISBN: "1", Title: "1984", Author: "A", Quantity: intp(1)}},
		{"numeric author", CreateBookRequest{ISBN: "1", Title: "T", Author: "3.5", Quantity: intp(1)}},
		{"missing quantity", CreateBookRequest{ISBN: "1", Title: "T", Author: "A"}},
		{"negative quantity", CreateBookRequest{ISBN: "1", Title: "T", Author: "A", Quantity: intp(-1)}},
		{"quantity overflows column", CreateBookRequest{ISBN: "1", Title: "T", Author: "A", Quantity: intp(3000000000)}},
		{"isbn too long", CreateBookRequest{ISBN: RawISBN(strings.Repeat("9", 45)), Title: "T", Author: "A", Quantity: intp(1)}},
		{"title too long", CreateBookRequest{ISBN: "1", Title: strings.Repeat("t", 300), Author: "A", Quantity: intp(1)}},
		{"author too long", CreateBookRequest{ISBN: "1", Title: "T", Author: strings.Repeat("著", 256), Quantity: intp(1)}},
		{"shelf too long", CreateBookRequest{ISBN: "1", Title: "T", Author: "A", Quantity: intp(1), ShelfLocation: strings.Repeat("s", 256)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBook(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
			assert.Equal(t, "INVALID_INPUT: "+apperr.MsgInvalidParams, err.Error())
		})
	}

	// 数字を含むだけのタイトルは通す
	addBook(t, svc, "2", "12 Rules for Life", "Jordan", 1)

	// 列の上限ちょうどは通す
	addBook(t, svc, strings.Repeat("9", 40), strings.Repeat("題", 255), "A", math.MaxInt32)
}

func TestUpdateBook(t *testing.T) {
	svc, _ := newTestService(t, fakeLoans{})
	ctx := context.Background()
	addBook(t, svc, "978316148420", "Old", "Author", 3)

	res, err := svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978-316148420", Quantity: intp(0), Title: strp("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", res.Title)
	assert.Equal(t, "Author", res.Author)
	assert.Equal(t, 0, res.Quantity)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978316148420"})
	assert.Equal(t, apperr.ErrInvalid(apperr.MsgNoFields), err)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "111", Title: strp("X")})
	assert.Equal(t, apperr.ErrNotFound(apperr.MsgISBNNotFound), err)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{Title: strp("X")})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978316148420", Quantity: intp(-2)})
	assert.Equal(t, apperr.ErrInvalid(apperr.MsgInvalidParams), err)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978316148420", Quantity: intp(math.MaxInt32 + 1)})
	assert.Equal(t, apperr.ErrInvalid(apperr.MsgInvalidParams), err)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978316148420", Title: strp(strings.Repeat("t", 256))})
	assert.Equal(t, apperr.ErrInvalid(apperr.MsgInvalidParams), err)

	_, err = svc.UpdateBook(ctx, UpdateBookRequest{ISBN: "978316148420", ShelfLocation: strp(strings.Repeat("s", 256))})
	assert.Equal(t, apperr.ErrInvalid(apperr.MsgInvalidParams), err)
}

func TestDeleteBook(t *testing.T) {
	loans := fakeLoans{}
	svc, _ := newTestService(t, loans)
	ctx := context.Background()
	addBook(t, svc, "978316148420", "Title", "Author", 1)

	loans["978316148420"] = 1
	err := svc.DeleteBook(ctx, "978316148420")
	assert.Equal(t, apperr.ErrConflict(apperr.MsgBookHasLoans), err)

	loans["978316148420"] = 0
	require.NoError(t, svc.DeleteBook(ctx, "978316148420"))

	err = svc.DeleteBook(ctx, "978316148420")
	assert.Equal(t, apperr.ErrNotFound(apperr.MsgISBNNotFound), err)

	err = svc.DeleteBook(ctx, "")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
}

func TestDeleteBook_ForeignKeyBackstop(t *testing.T) {
	// カウントをすり抜けても FK で止まる
	svc, conn := newTestService(t, fakeLoans{})
	ctx := context.Background()
	addBook(t, svc, "978316148420", "Title", "Author", 1)

	now := time.Now().UTC()
	res, err := conn.ExecContext(ctx,
		`INSERT INTO borrowers (name, email, registered_at, updated_at) VALUES (?, ?, ?, ?)`, "A", "a@example.com", now, now)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx,
		`INSERT INTO loans (borrower_id, book_isbn, due_date, borrowed_at) VALUES (?, ?, ?, ?)`, id, "978316148420", now, now)
	require.NoError(t, err)

	err = svc.DeleteBook(ctx, "978316148420")
	assert.Equal(t, apperr.ErrConflict(apperr.MsgBookHasLoans), err)
}

func TestSearchBooks_OrSemantics(t *testing.T) {
	svc, _ := newTestService(t, fakeLoans{})
	ctx := context.Background()
	addBook(t, svc, "1", "X", "Nobody", 1)
	addBook(t, svc, "2", "Other", "Y", 1)
	addBook(t, svc, "3", "X", "Y", 1)
	addBook(t, svc, "4", "Unrelated", "Unrelated", 1)

	isbns := func(books []BookResponse) []ISBN {
		out := []ISBN{}
		for _, b := range books {
			out = append(out, b.ISBN)
		}
		return out
	}

	all, err := svc.SearchBooks(ctx, SearchBooksRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	got, err := svc.SearchBooks(ctx, SearchBooksRequest{Title: "X", Author: "Y"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []ISBN{"1", "2", "3"}, isbns(got))

	got, err = svc.SearchBooks(ctx, SearchBooksRequest{ISBN: "4", Title: "X"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []ISBN{"1", "3", "4"}, isbns(got))

	got, err = svc.SearchBooks(ctx, SearchBooksRequest{ISBN: "not-a-number"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.SearchBooks(ctx, SearchBooksRequest{ISBN: "not-a-number", Author: "Y"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []ISBN{"2", "3"}, isbns(got))
}

func TestSearchBooks_NormalizesUnicode(t *testing.T) {
	svc, _ := newTestService(t, fakeLoans{})
	// 結合文字で登録して合成済み文字で検索
	addBook(t, svc, "10", "Cafe\u0301", "Author", 1)

	got, err := svc.SearchBooks(context.Background(), SearchBooksRequest{Title: "Caf\u00e9"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ISBN("10"), got[0].ISBN)
}

func TestTakeAndPutBackCopy(t *testing.T) {
	svc, conn := newTestService(t, fakeLoans{})
	ctx := context.Background()
	addBook(t, svc, "5", "Title", "Author", 1)
	now := time.Now().UTC()

	ok, err := TakeCopyTx(ctx, conn, "5", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TakeCopyTx(ctx, conn, "5", now)
	require.NoError(t, err)
	assert.False(t, ok, "在庫0では減らない")

	ok, err = PutBackCopyTx(ctx, conn, "5", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = PutBackCopyTx(ctx, conn, "999", now)
	require.NoError(t, err)
	assert.False(t, ok)

	b, err := svc.FindByISBN(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Quantity)
}
