package lending

import (
	"time"

	"library-backend/internal/catalog"
)

// Loan は (borrower_id, book_isbn) で一意。返却で削除され、更新はしない
type Loan struct {
	BorrowerID int64        `db:"borrower_id"`
	ISBN       catalog.ISBN `db:"book_isbn"`
	DueDate    time.Time    `db:"due_date"`
	BorrowedAt time.Time    `db:"borrowed_at"`
}
