package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/money"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/purchase"
)

type purchaseService interface {
	Purchase(context.Context, string) (purchase.Receipt, error)
	Price() money.Money
	MaxTickets() int64
}

type PurchaseHandler struct {
	service purchaseService
	log     *slog.Logger
}

func NewPurchaseHandler(service purchaseService, log *slog.Logger) PurchaseHandler {
	return PurchaseHandler{service: service, log: log}
}

type receiptResp struct {
	ID      purchase.ID `json:"id"`
	Paid    money.Money `json:"paid"`
	Tickets int64       `json:"tickets"`
	Change  money.Money `json:"change"`
	Date    time.Time   `json:"purchased_at"`
}

// Покупка билетов на введенную сумму
// POST /api/lotto/purchase
func (ph PurchaseHandler) Purchase() http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(rw, req.Body, maxBodySize)

		raw, err := parseBodyToString(req.Body)
		if err != nil {
			var errTooLarge *http.MaxBytesError
			if errors.As(err, &errTooLarge) {
				http.Error(rw, err.Error(), statusTooLarge)
				return
			}

			ph.log.Error("parse Body", "err", err)
			http.Error(rw, err.Error(), statusInternal)
			return
		}

		rec, err := ph.service.Purchase(req.Context(), raw)
		if err != nil {
			var errKind errKinded
			if errors.As(err, &errKind) {
				ph.log.Debug("srv validation", "kind", errKind.Kind().String(), "err", errKind.Error())
				http.Error(rw, errKind.Error(), statusByKind(errKind.Kind()))
				return
			}

			ph.log.Error("srv", "err", err)
			http.Error(rw, err.Error(), statusInternal)
			return
		}

		resp := receiptResp{
			ID:      rec.ID(),
			Paid:    rec.Paid(),
			Tickets: rec.Tickets(),
			Change:  rec.Change(),
			Date:    rec.Date(),
		}

		if err := writeJSON(rw, statusOK, resp); err != nil {
			ph.log.Error("encode resp", "err", err)
		}
	}
}

// Цена билета и лимит покупки
// GET /api/lotto/price
func (ph PurchaseHandler) Price() http.HandlerFunc {
	return func(rw http.ResponseWriter, _ *http.Request) {
		type priceResp struct {
			Price      money.Money `json:"price"`
			MaxTickets int64       `json:"max_tickets"`
		}

		resp := priceResp{
			Price:      ph.service.Price(),
			MaxTickets: ph.service.MaxTickets(),
		}

		if err := writeJSON(rw, statusOK, resp); err != nil {
			ph.log.Error("encode resp", "err", err)
		}
	}
}
