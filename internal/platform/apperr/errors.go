// Package apperr は各機能で共通のエラーモデルと HTTP ステータスへの対応付け
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeDuplicateKey Code = "DUPLICATE_KEY"
	CodeConflict     Code = "CONFLICT"
	CodeOutOfStock   Code = "OUT_OF_STOCK" // Conflict の一種
	CodeRateLimited  Code = "RATE_LIMITED"
	CodeInternal     Code = "INTERNAL"
)

// クライアントに返すメッセージ（既存クライアントが文字列で判定しているので変えない）
const (
	MsgInvalidRequest   = "Invalid request parameters"
	MsgInvalidBorrower  = "Invalid borrower id"
	MsgInvalidISBN      = "Invalid ISBN"
	MsgInvalidDuration  = "Invalid borrow duration"
	MsgAlreadyBorrowed  = "Book already borrowed"
	MsgOutOfStock       = "Book out of stock"
	MsgNotBorrowed      = "Book with the given ISBN is not borrowed"
	MsgInvalidParams    = "Invalid parameters"
	MsgBookExists       = "Book with the same ISBN already exists"
	MsgISBNNotFound     = "ISBN does not exist."
	MsgNoFields         = "No fields given to update"
	MsgMissingParams    = "Missing request parameters"
	MsgInvalidEmail     = "Invalid email"
	MsgEmailExists      = "Email already exists"
	MsgEmailNotFound    = "Email does not exist"
	MsgBorrowerNotFound = "Borrower does not exist"
	MsgBookHasLoans     = "Book has active loans"
	MsgBorrowerHasLoans = "Borrower has active loans"
	MsgEndpointNotFound = "endpoint not found"
	MsgTooManyRequests  = "Too many requests"
	MsgServerError      = "Server error!"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrInvalid(msg string) *APIError    { return &APIError{Code: CodeInvalidInput, Message: msg} }
func ErrNotFound(msg string) *APIError   { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrDuplicate(msg string) *APIError  { return &APIError{Code: CodeDuplicateKey, Message: msg} }
func ErrConflict(msg string) *APIError   { return &APIError{Code: CodeConflict, Message: msg} }
func ErrOutOfStock(msg string) *APIError { return &APIError{Code: CodeOutOfStock, Message: msg} }
func ErrInternal(msg string) *APIError   { return &APIError{Code: CodeInternal, Message: msg} }

// CodeOf は err に含まれる APIError のコード。APIError でなければ INTERNAL
func CodeOf(err error) Code {
	var api *APIError
	if errors.As(err, &api) {
		return api.Code
	}
	return CodeInternal
}

// Is: err が code の APIError か
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// ToHTTPStatus: 想定内のエラーはすべて 400、それ以外は 500
func ToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidInput, CodeNotFound, CodeDuplicateKey, CodeConflict, CodeOutOfStock:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
