package db

import (
	"math"
	"unicode/utf8"
)

// スキーマの列サイズ。超える値はドライバエラーになるのでサービス側で先に弾く
const (
	MaxKeyLen   = 40            // books.isbn / loans.book_isbn の VARCHAR(40)
	MaxTextLen  = 255           // VARCHAR(255)（MySQL / Postgres とも文字数）
	MaxQuantity = math.MaxInt32 // INT / INTEGER
)

// FitsText: VARCHAR(255) の列に入るか
func FitsText(s string) bool {
	return utf8.RuneCountInString(s) <= MaxTextLen
}
