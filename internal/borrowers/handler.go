package borrowers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/borrowers", h.CreateBorrower)
	r.PATCH("/borrowers", h.UpdateBorrower)
	r.DELETE("/borrowers", h.DeleteBorrower)
	r.GET("/borrowers", h.ListBorrowers)
}

// CreateBorrower godoc
// @Summary  Register a borrower
// @Tags     Borrowers
// @Param    body body     CreateBorrowerRequest true "name and email"
// @Success  201  {object} BorrowerResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /borrowers [post]
func (h *Handler) CreateBorrower(c *gin.Context) {
	var req CreateBorrowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgMissingParams))
		return
	}
	res, err := h.svc.CreateBorrower(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateBorrower godoc
// @Summary  Change a borrower's name, looked up by email
// @Tags     Borrowers
// @Param    body body     UpdateBorrowerRequest true "name and email"
// @Success  200  {object} BorrowerResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /borrowers [patch]
func (h *Handler) UpdateBorrower(c *gin.Context) {
	var req UpdateBorrowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgMissingParams))
		return
	}
	res, err := h.svc.UpdateBorrower(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBorrower godoc
// @Summary  Delete a borrower by id
// @Tags     Borrowers
// @Param    body body     DeleteBorrowerRequest true "borrowerId"
// @Success  200  {object} MessageResponse
// @Failure  400  {object} apperr.ErrorBody
// @Router   /borrowers [delete]
func (h *Handler) DeleteBorrower(c *gin.Context) {
	var req DeleteBorrowerRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidBorrower))
		return
	}
	if req.BorrowerID == nil {
		id, ok, err := httpx.QueryInt64(c, "borrowerId")
		if err != nil {
			apperr.Respond(c, apperr.ErrInvalid(apperr.MsgInvalidBorrower))
			return
		}
		if ok {
			req.BorrowerID = &id
		}
	}
	if err := h.svc.DeleteBorrower(c.Request.Context(), req.BorrowerID); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Borrower deleted successfully"})
}

// ListBorrowers godoc
// @Summary  List all borrowers
// @Tags     Borrowers
// @Success  200 {array} BorrowerResponse
// @Router   /borrowers [get]
func (h *Handler) ListBorrowers(c *gin.Context) {
	res, err := h.svc.ListBorrowers(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
