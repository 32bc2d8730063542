package catalog

import "time"

type Book struct {
	ISBN          ISBN      `db:"isbn"`
	Title         string    `db:"title"`
	Author        string    `db:"author"`
	Quantity      int       `db:"quantity"` // 貸出可能な冊数（貸出中は含まない）
	ShelfLocation string    `db:"shelf_location"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Patch: nil のフィールドは変更しない
type Patch struct {
	Title         *string
	Author        *string
	Quantity      *int
	ShelfLocation *string
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Quantity == nil && p.ShelfLocation == nil
}

// Filter: 指定された条件の OR で検索する。全部 nil なら全件
type Filter struct {
	ISBN   *ISBN
	Title  *string
	Author *string
}

func (f Filter) Empty() bool { return f.ISBN == nil && f.Title == nil && f.Author == nil }
