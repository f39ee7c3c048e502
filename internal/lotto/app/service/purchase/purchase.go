package purchase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/errmsg"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/money"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/purchase"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/pkg/number"
)

type Service struct {
	price      money.Money
	maxTickets int64
	log        *slog.Logger
}

func NewService(price money.Money, maxTickets int64, log *slog.Logger) (Service, error) {
	if price.IsZero() {
		return Service{}, fmt.Errorf("NewService price: %w", errmsg.ErrInvalidDivisor)
	}

	if maxTickets <= 0 {
		return Service{}, fmt.Errorf("NewService: max tickets [%d] must be positive", maxTickets)
	}

	// цена всех билетов должна помещаться в int64
	if _, err := price.Times(maxTickets); err != nil {
		return Service{}, fmt.Errorf("NewService: %w", err)
	}

	return Service{
		price:      price,
		maxTickets: maxTickets,
		log:        log,
	}, nil
}

func (srv Service) Price() money.Money { return srv.price }
func (srv Service) MaxTickets() int64  { return srv.maxTickets }

// Pay validates the raw payment text.
func (srv Service) Pay(raw string) (money.Money, error) {
	amount, err := number.Parse(raw)
	if err != nil {
		return money.Zero, err
	}

	paid, err := money.From(amount)
	if err != nil {
		return money.Zero, err
	}

	ok, err := paid.IsDivisibleBy(srv.price.Amount())
	if err != nil {
		return money.Zero, fmt.Errorf("Pay: %w", err)
	}

	if !ok {
		return money.Zero, errmsg.New(errmsg.InvalidPaymentAmount, srv.price.Amount())
	}

	if paid.Amount()/srv.price.Amount() > srv.maxTickets {
		return money.Zero, errmsg.New(errmsg.PurchaseLimitExceeded, srv.maxTickets)
	}

	return paid, nil
}

// Buy takes the price of one ticket from balance.
func (srv Service) Buy(balance money.Money) (money.Money, error) {
	rest, err := balance.Subtract(srv.price)
	if err != nil {
		if errors.Is(err, errmsg.ErrAmountMustBeNonNegative) {
			return balance, errmsg.ErrInsufficientBalance
		}
		return balance, fmt.Errorf("Buy: %w", err)
	}

	return rest, nil
}

// Purchase buys as many tickets as the payment covers.
func (srv Service) Purchase(ctx context.Context, raw string) (purchase.Receipt, error) {
	paid, err := srv.Pay(raw)
	if err != nil {
		kind, _ := errmsg.KindOf(err)
		srv.log.Debug("purchase rejected", "kind", kind.String(), "err", err)
		return purchase.Receipt{}, err
	}

	var tickets int64
	balance := paid
	for {
		if err := ctx.Err(); err != nil {
			return purchase.Receipt{}, fmt.Errorf("Purchase: %w", err)
		}

		rest, err := srv.Buy(balance)
		if err != nil {
			if errors.Is(err, errmsg.ErrInsufficientBalance) {
				break
			}
			return purchase.Receipt{}, err
		}

		balance = rest
		tickets++
	}

	rec := purchase.NewReceipt(purchase.NewID(), paid, tickets, balance)
	srv.log.Info("purchase",
		"id", rec.ID().String(),
		"paid", paid.Amount(),
		"tickets", tickets,
	)

	return rec, nil
}
