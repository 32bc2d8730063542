package lending

import (
	"context"
	"errors"
	"time"

	"library-backend/internal/catalog"
)

// ErrLoanExists: 同じ (借用者, 本) の貸出が既にある（一意制約違反）
var ErrLoanExists = errors.New("loan already exists")

// BookFinder: 見つからなければ (nil, nil)
type BookFinder interface {
	FindByISBN(ctx context.Context, isbn catalog.ISBN) (*catalog.Book, error)
}

type BorrowerFinder interface {
	Exists(ctx context.Context, borrowerID int64) (bool, error)
}

// Ledger は貸出台帳。外部キーの存在確認はしない（呼び出し側の責務）
type Ledger interface {
	Exists(ctx context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error)
	FindByBorrower(ctx context.Context, borrowerID int64) ([]Loan, error)
	// asOf より前（同時刻は含まない）が期限の貸出
	FindOverdue(ctx context.Context, asOf time.Time) ([]Loan, error)
	// fn がエラーを返したら全部なかったことにする
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx は在庫と台帳を同じトランザクションで動かすための操作
type Tx interface {
	// 在庫 > 0 のときだけ 1 減らす。減らせなかったら false
	TakeCopy(ctx context.Context, isbn catalog.ISBN) (bool, error)
	PutBackCopy(ctx context.Context, isbn catalog.ISBN) (bool, error)
	// 重複時は ErrLoanExists
	CreateLoan(ctx context.Context, l Loan) error
	// 該当行が無ければ false
	DestroyLoan(ctx context.Context, borrowerID int64, isbn catalog.ISBN) (bool, error)
}
