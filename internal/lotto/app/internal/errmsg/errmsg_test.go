package errmsg

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	type testCase struct {
		name string
		kind Kind
		args []any
		msg  string
	}

	tc := []testCase{
		{
			name: "#1 plain message",
			kind: NullOrEmptyInput,
			msg:  "[ERROR] Please enter a value.",
		},

		{
			name: "#2 templated message",
			kind: InvalidPaymentAmount,
			args: []any{int64(1000)},
			msg:  "[ERROR] The amount must be a multiple of the lotto ticket price (1000 won).",
		},

		{
			name: "#3 args ignored for plain message",
			kind: InputTooLong,
			args: []any{42},
			msg:  "[ERROR] The value is too large.",
		},

		{
			name: "#4 unknown kind",
			kind: Kind(200),
			msg:  "[ERROR] unknown error",
		},
	}

	for _, test := range tc {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.msg, New(test.kind, test.args...).Error())
		})
	}
}

func TestPrefix(t *testing.T) {
	for k := KindNotSupport; k <= PurchaseLimitExceeded; k++ {
		assert.True(t, strings.HasPrefix(k.Message(1), Prefix), k.String())
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("Pay: %w", New(InvalidPaymentAmount, 1000))

	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
	assert.NotErrorIs(t, err, ErrInvalidNumberFormat)
	assert.False(t, errors.Is(errors.New(InvalidPaymentAmount.Message(1000)), ErrInvalidPaymentAmount))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", ErrInputTooLong))
	assert.True(t, ok)
	assert.Equal(t, InputTooLong, kind)
	assert.Equal(t, "InputTooLong", kind.String())

	kind, ok = KindOf(errors.New("other"))
	assert.False(t, ok)
	assert.Equal(t, KindNotSupport, kind)
}
