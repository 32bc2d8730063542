package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/text/width"

	"library-backend/internal/platform/db"
)

var ErrInvalidISBN = errors.New("invalid isbn")

// ISBN は正規化済み（ハイフン除去・先頭ゼロ除去）の10進表記。
// 任意精度整数として解釈するが、格納できるのは db.MaxKeyLen 桁まで
type ISBN string

// ParseISBN: "978-3-16-148410-0" や全角数字も受け付ける。正の整数でなければエラー。
// 列に入らない桁数もここで弾く
func ParseISBN(s string) (ISBN, error) {
	s = width.Narrow.String(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return "", ErrInvalidISBN
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() <= 0 {
		return "", ErrInvalidISBN
	}
	v := n.String()
	if len(v) > db.MaxKeyLen {
		return "", ErrInvalidISBN
	}
	return ISBN(v), nil
}

func (i ISBN) String() string { return string(i) }

// JSON では数値リテラルとして出す（桁あふれしないよう文字列のまま書き出す）
func (i ISBN) MarshalJSON() ([]byte, error) {
	if i == "" {
		return []byte("null"), nil
	}
	return []byte(i), nil
}

func (i *ISBN) UnmarshalJSON(b []byte) error {
	var raw RawISBN
	if err := raw.UnmarshalJSON(b); err != nil {
		return err
	}
	if raw == "" {
		*i = ""
		return nil
	}
	v, err := ParseISBN(string(raw))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// RawISBN はリクエスト中の未検証の ISBN。JSON の数値でも文字列でもよい
type RawISBN string

func (r *RawISBN) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*r = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawISBN(s)
	default:
		// 数値はそのまま（float64 を経由すると13桁超で丸められる）
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return ErrInvalidISBN
		}
		*r = RawISBN(n.String())
	}
	return nil
}

func (r RawISBN) Empty() bool { return strings.TrimSpace(string(r)) == "" }

func (r RawISBN) Parse() (ISBN, error) { return ParseISBN(string(r)) }
