package number

import (
	"strings"
	"testing"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/errmsg"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name  string
		input string
		res   int64
		err   error
	}

	tc := []testCase{
		{name: "#1 digits", input: "123", res: 123},
		{name: "#2 surrounding spaces", input: "  456  ", res: 456},
		{name: "#3 above int32", input: "2147483648", res: 2147483648},
		{name: "#4 zero", input: "0", res: 0},
		{name: "#5 leading zeros", input: "0007", res: 7},
		{name: "#6 max length", input: strings.Repeat("9", MaxLength), res: 999999999999999999},
		{name: "#7 tabs and newline", input: "\t42\n", res: 42},

		{name: "#8 empty", input: "", err: errmsg.ErrNullOrEmptyInput},
		{name: "#9 blank", input: "   ", err: errmsg.ErrNullOrEmptyInput},

		{name: "#10 19 digits", input: "9999999999999999999", err: errmsg.ErrInputTooLong},
		{name: "#11 20 digits", input: "12345678901234567890", err: errmsg.ErrInputTooLong},
		{name: "#12 20 digits pow", input: "10000000000000000000", err: errmsg.ErrInputTooLong},
		{name: "#13 long letters", input: strings.Repeat("a", MaxLength+1), err: errmsg.ErrInputTooLong},
		{name: "#14 long after trim", input: "  " + strings.Repeat("1", MaxLength+1) + "  ", err: errmsg.ErrInputTooLong},

		{name: "#15 letters", input: "abc", err: errmsg.ErrInvalidNumberFormat},
		{name: "#16 decimal", input: "12.34", err: errmsg.ErrInvalidNumberFormat},
		{name: "#17 mixed", input: "1a2b3c", err: errmsg.ErrInvalidNumberFormat},
		{name: "#18 inner space", input: "12 34", err: errmsg.ErrInvalidNumberFormat},
		{name: "#19 minus sign", input: "-1", err: errmsg.ErrInvalidNumberFormat},
		{name: "#20 plus sign", input: "+1", err: errmsg.ErrInvalidNumberFormat},
		{name: "#21 grouping", input: "1,000", err: errmsg.ErrInvalidNumberFormat},
		{name: "#22 non ascii digits", input: "١٢٣", err: errmsg.ErrInvalidNumberFormat},
	}

	for _, test := range tc {
		t.Run(test.name, func(t *testing.T) {
			res, err := Parse(test.input)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Equal(t, test.err.Error(), err.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.res, res)
		})
	}
}

func TestParseRef(t *testing.T) {
	_, err := ParseRef(nil)
	assert.ErrorIs(t, err, errmsg.ErrNullOrEmptyInput)

	empty := ""
	_, err = ParseRef(&empty)
	assert.ErrorIs(t, err, errmsg.ErrNullOrEmptyInput)

	val := " 1000 "
	res, err := ParseRef(&val)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), res)
}
