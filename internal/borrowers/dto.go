package borrowers

import "time"

// ===== Requests =====

type CreateBorrowerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateBorrowerRequest: email で対象を探して name を変える
type UpdateBorrowerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DeleteBorrowerRequest struct {
	BorrowerID *int64 `json:"borrowerId"`
}

// ===== Responses =====

type BorrowerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toBorrowerResponse(b Borrower) BorrowerResponse {
	return BorrowerResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		RegisteredAt: b.RegisteredAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
