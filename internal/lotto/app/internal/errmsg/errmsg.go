// Package errmsg holds the user-facing error catalog of the lotto service.
package errmsg

import (
	"errors"
	"fmt"
	"strings"
)

// Prefix начинает каждое сообщение об ошибке.
const Prefix = "[ERROR] "

type Kind uint8

const (
	KindNotSupport Kind = iota // вместо ошибки
	NullOrEmptyInput
	InputTooLong
	InvalidNumberFormat
	AmountMustBeNonNegative
	AmountOverflow
	InvalidDivisor
	InsufficientBalance
	InvalidPaymentAmount  // %d цена билета
	PurchaseLimitExceeded // %d лимит билетов
)

type entry struct {
	name string
	tmpl string
}

func catalog() [10]entry {
	return [10]entry{
		{"KindNotSupport", "unknown error"},
		{"NullOrEmptyInput", "Please enter a value."},
		{"InputTooLong", "The value is too large."},
		{"InvalidNumberFormat", "Only numbers are allowed."},
		{"AmountMustBeNonNegative", "The amount must be zero or greater."},
		{"AmountOverflow", "The amount exceeds the supported range."},
		{"InvalidDivisor", "The divisor must not be zero."},
		{"InsufficientBalance", "Insufficient balance. No more lotto tickets can be purchased."},
		{"InvalidPaymentAmount", "The amount must be a multiple of the lotto ticket price (%d won)."},
		{"PurchaseLimitExceeded", "At most %d lotto tickets can be purchased at once."},
	}
}

func (k Kind) entry() entry {
	entries := catalog()
	if int(k) >= len(entries) {
		return entries[KindNotSupport]
	}
	return entries[k]
}

func (k Kind) String() string { return k.entry().name }

// Message renders the prefixed message of the kind. Templated kinds
// expect their arguments in order.
func (k Kind) Message(args ...any) string {
	tmpl := k.entry().tmpl
	if len(args) == 0 || !strings.Contains(tmpl, "%") {
		return Prefix + tmpl
	}
	return Prefix + fmt.Sprintf(tmpl, args...)
}

// Error is a validation failure tagged with its kind.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, args ...any) Error {
	return Error{kind: kind, msg: kind.Message(args...)}
}

func (e Error) Kind() Kind    { return e.kind }
func (e Error) Error() string { return e.msg }

// Is matches any Error of the same kind, whatever its arguments.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.kind == e.kind
}

var (
	ErrNullOrEmptyInput        = New(NullOrEmptyInput)
	ErrInputTooLong            = New(InputTooLong)
	ErrInvalidNumberFormat     = New(InvalidNumberFormat)
	ErrAmountMustBeNonNegative = New(AmountMustBeNonNegative)
	ErrAmountOverflow          = New(AmountOverflow)
	ErrInvalidDivisor          = New(InvalidDivisor)
	ErrInsufficientBalance     = New(InsufficientBalance)
	ErrInvalidPaymentAmount    = New(InvalidPaymentAmount)
	ErrPurchaseLimitExceeded   = New(PurchaseLimitExceeded)
)

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e Error
	if !errors.As(err, &e) {
		return KindNotSupport, false
	}
	return e.kind, true
}
