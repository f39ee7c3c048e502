package number

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/errmsg"
)

// MaxLength is the longest accepted input after trimming. Eighteen digits
// always fit into int64.
const MaxLength = 18

// Parse converts user text into an int64. Checks run in a fixed order:
// presence, length, then format.
func Parse(input string) (int64, error) {
	if input == "" {
		return 0, errmsg.ErrNullOrEmptyInput
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errmsg.ErrNullOrEmptyInput
	}

	if utf8.RuneCountInString(trimmed) > MaxLength {
		return 0, errmsg.ErrInputTooLong
	}

	if !isDigits(trimmed) {
		return 0, errmsg.ErrInvalidNumberFormat
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Parse [%s]: %w", trimmed, err)
	}

	return n, nil
}

// ParseRef treats a nil input like an empty one.
func ParseRef(input *string) (int64, error) {
	if input == nil {
		return 0, errmsg.ErrNullOrEmptyInput
	}

	return Parse(*input)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
