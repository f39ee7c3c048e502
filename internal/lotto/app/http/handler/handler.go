package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/errmsg"
)

// тело запроса с суммой оплаты не длиннее этого
const maxBodySize = 1 << 10

var (
	statusOK         = http.StatusOK                    // 200
	statusBadReq     = http.StatusBadRequest            // 400
	statusPaymentReq = http.StatusPaymentRequired       // 402
	statusTooLarge   = http.StatusRequestEntityTooLarge // 413
	statusUnprocess  = http.StatusUnprocessableEntity   // 422
	statusInternal   = http.StatusInternalServerError   // 500
)

type errKinded interface {
	Kind() errmsg.Kind
	error
}

// statusByKind код ответа для ошибки валидации
func statusByKind(kind errmsg.Kind) int {
	switch kind {
	case errmsg.NullOrEmptyInput,
		errmsg.InputTooLong,
		errmsg.InvalidNumberFormat,
		errmsg.AmountMustBeNonNegative:
		return statusBadReq
	case errmsg.InvalidPaymentAmount,
		errmsg.PurchaseLimitExceeded,
		errmsg.AmountOverflow:
		return statusUnprocess
	case errmsg.InsufficientBalance:
		return statusPaymentReq
	default:
		return statusInternal
	}
}

func parseBodyToString(r io.ReadCloser) (string, error) {
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeJSON(rw http.ResponseWriter, status int, data any) error {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	return json.NewEncoder(rw).Encode(data)
}
