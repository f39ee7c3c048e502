package money

import (
	"math"
	"strconv"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/errmsg"
)

// Money is a non-negative amount. The zero value is a valid zero amount.
type Money struct {
	amount int64
}

var Zero = Money{}

func From(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errmsg.ErrAmountMustBeNonNegative
	}

	return Money{amount: amount}, nil
}

// MustFrom panics on a negative amount.
func MustFrom(amount int64) Money {
	m, err := From(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() int64 { return m.amount }

func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errmsg.ErrAmountOverflow
	}

	return Money{amount: m.amount + other.amount}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	return From(m.amount - other.amount)
}

// Times multiplies the amount by n.
func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, errmsg.ErrAmountMustBeNonNegative
	}

	if n != 0 && m.amount > math.MaxInt64/n {
		return Money{}, errmsg.ErrAmountOverflow
	}

	return Money{amount: m.amount * n}, nil
}

func (m Money) IsDivisibleBy(divisor int64) (bool, error) {
	if divisor == 0 {
		return false, errmsg.ErrInvalidDivisor
	}

	return m.amount%divisor == 0, nil
}

// Equal reports whether other is a Money with the same amount.
func (m Money) Equal(other any) bool {
	switch o := other.(type) {
	case Money:
		return m == o
	case *Money:
		return o != nil && m == *o
	default:
		return false
	}
}

func (m Money) Compare(other Money) int {
	switch {
	case m.amount < other.amount:
		return -1
	case m.amount > other.amount:
		return 1
	default:
		return 0
	}
}

func (m Money) IsZero() bool   { return m.amount == 0 }
func (m Money) String() string { return strconv.FormatInt(m.amount, 10) }

func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.amount, 10), nil
}
