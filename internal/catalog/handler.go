package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/books", h.CreateBook)
	r.PATCH("/books", h.UpdateBook)
	r.DELETE("/books", h.DeleteBook)
	r.GET("/books", h.SearchBooks)
}

// CreateBook godoc
// @Summary  Create a new book
// @Tags     Books
// @Accept   json
// @Produce  json
// @Param    body body     CreateBookRequest true "book"
// @Success  201  {object} BookResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidParams))
		return
	}
	res, err := h.svc.CreateBook(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateBook godoc
// @Summary  Update a book's data
// @Tags     Books
// @Param    body body     UpdateBookRequest true "isbn and fields to change"
// @Success  200  {object} BookResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /books [patch]
func (h *Handler) UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidParams))
		return
	}
	res, err := h.svc.UpdateBook(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary  Delete a book
// @Tags     Books
// @Param    body body     DeleteBookRequest true "isbn"
// @Success  200  {object} MessageResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /books [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	var req DeleteBookRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidISBN))
		return
	}
	if req.ISBN.Empty() {
		req.ISBN = RawISBN(c.Query("isbn"))
	}
	if err := h.svc.DeleteBook(c.Request.Context(), req.ISBN); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
}

// SearchBooks godoc
// @Summary  Get all books or those matching any of the given fields
// @Tags     Books
// @Param    isbn   query    string false "ISBN"
// @Param    title  query    string false "title"
// @Param    author query    string false "author"
// @Success  200    {array}  BookResponse
// @Router   /books [get]
func (h *Handler) SearchBooks(c *gin.Context) {
	var req SearchBooksRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidRequest))
		return
	}
	// クエリ文字列が優先
	if v := c.Query("isbn"); v != "" {
		req.ISBN = RawISBN(v)
	}
	if v := c.Query("title"); v != "" {
		req.Title = v
	}
	if v := c.Query("author"); v != "" {
		req.Author = v
	}
	res, err := h.svc.SearchBooks(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
