package catalog

import "time"

// ===== Requests =====

type CreateBookRequest struct {
	ISBN          RawISBN `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Quantity      *int    `json:"quantity"`
	ShelfLocation string  `json:"shelfLocation"`
}

type UpdateBookRequest struct {
	ISBN          RawISBN `json:"isbn"`
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	ShelfLocation *string `json:"shelfLocation,omitempty"`
}

type DeleteBookRequest struct {
	ISBN RawISBN `json:"isbn"`
}

type SearchBooksRequest struct {
	ISBN   RawISBN `json:"isbn"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
}

// ===== Responses =====

type BookResponse struct {
	ISBN          ISBN      `json:"isbn"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Quantity      int       `json:"quantity"`
	ShelfLocation string    `json:"shelfLocation"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toBookResponse(b Book) BookResponse {
	return BookResponse{
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Quantity:      b.Quantity,
		ShelfLocation: b.ShelfLocation,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
