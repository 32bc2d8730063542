package borrowers

import "time"

type Borrower struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	RegisteredAt time.Time `db:"registered_at"` // 作成後は変更しない
	UpdatedAt    time.Time `db:"updated_at"`
}
