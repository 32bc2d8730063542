package lending

import (
	"time"

	"library-backend/internal/catalog"
)

// ===== Requests =====

type BorrowRequest struct {
	BorrowerID     *int64          `json:"borrowerId"`
	BookISBN       catalog.RawISBN `json:"bookISBN"`
	BorrowDuration *int            `json:"borrowDuration"` // 1 / 7 / 30
}

type ReturnRequest struct {
	BorrowerID *int64          `json:"borrowerId"`
	BookISBN   catalog.RawISBN `json:"bookISBN"`
}

type BorrowedRequest struct {
	BorrowerID *int64 `json:"borrowerId"`
}

// ===== Responses =====

type LoanResponse struct {
	BorrowerID int64        `json:"borrowerId"`
	ISBN       catalog.ISBN `json:"isbn"`
	DueDate    time.Time    `json:"dueDate"`
}

type BorrowedItem struct {
	ISBN    catalog.ISBN `json:"isbn"`
	DueDate time.Time    `json:"dueDate"`
}

type BorrowResponse struct {
	Message string       `json:"message"`
	Loan    LoanResponse `json:"loan"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toLoanResponse(l Loan, loc *time.Location) LoanResponse {
	return LoanResponse{BorrowerID: l.BorrowerID, ISBN: l.ISBN, DueDate: l.DueDate.In(loc)}
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
