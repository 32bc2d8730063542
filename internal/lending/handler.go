package lending

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/catalog"
	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/borrow", h.Borrow)
	r.POST("/return", h.Return)
	r.GET("/borrowed", h.ListBorrowed)
	r.GET("/overdue", h.ListOverdue)
}

// ISBN の欠落はサービス側で判定するので空のまま渡す
func parseISBN(raw catalog.RawISBN) (catalog.ISBN, error) {
	if raw.Empty() {
		return "", nil
	}
	isbn, err := raw.Parse()
	if err != nil {
		return "", apperr.ErrInvalid(apperr.MsgInvalidISBN)
	}
	return isbn, nil
}

// Borrow godoc
// @Summary  Borrow a book
// @Tags     Lending
// @Param    body body     BorrowRequest true "borrowerId, bookISBN, borrowDuration"
// @Success  200  {object} BorrowResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /borrow [post]
func (h *Handler) Borrow(c *gin.Context) {
	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
		return
	}
	isbn, err := parseISBN(req.BookISBN)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	loan, err := h.svc.Borrow(c.Request.Context(), derefInt64(req.BorrowerID), isbn, derefInt(req.BorrowDuration))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, BorrowResponse{
		Message: "Book borrowed successfully",
		Loan:    toLoanResponse(loan, h.svc.loc),
	})
}

// Return godoc
// @Summary  Return a borrowed book
// @Tags     Lending
// @Param    body body     ReturnRequest true "borrowerId, bookISBN"
// @Success  200  {object} MessageResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /return [post]
func (h *Handler) Return(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
		return
	}
	isbn, err := parseISBN(req.BookISBN)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := h.svc.Return(c.Request.Context(), derefInt64(req.BorrowerID), isbn); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Book returned successfully"})
}

// ListBorrowed godoc
// @Summary  List the books a borrower currently holds
// @Tags     Lending
// @Param    borrowerId query    int false "borrower id (or JSON body)"
// @Success  200        {array}  BorrowedItem
// @Failure  400        {object} apperr.ErrorBody
// @Router   /borrowed [get]
func (h *Handler) ListBorrowed(c *gin.Context) {
	var req BorrowedRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
		return
	}
	if id, ok, err := httpx.QueryInt64(c, "borrowerId"); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
		return
	} else if ok {
		req.BorrowerID = &id
	}

	loans, err := h.svc.ListBorrowed(c.Request.Context(), derefInt64(req.BorrowerID))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	out := make([]BorrowedItem, 0, len(loans))
	for _, l := range loans {
		out = append(out, BorrowedItem{ISBN: l.ISBN, DueDate: l.DueDate.In(h.svc.loc)})
	}
	c.JSON(http.StatusOK, out)
}

// ListOverdue godoc
// @Summary  List every loan past its due date
// @Tags     Lending
// @Param    asOf query    string false "reference instant (RFC3339), defaults to now"
// @Success  200  {array}  LoanResponse
// @Router   /overdue [get]
func (h *Handler) ListOverdue(c *gin.Context) {
	var asOf time.Time
	if v := c.Query("asOf"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
			return
		}
		asOf = t
	}
	loans, err := h.svc.ListOverdue(c.Request.Context(), asOf)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	out := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l, h.svc.loc))
	}
	c.JSON(http.StatusOK, out)
}
