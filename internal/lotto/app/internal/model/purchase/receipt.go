package purchase

import (
	"time"

	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/money"
)

// Receipt итог одной покупки билетов
type Receipt struct {
	id      ID
	paid    money.Money
	tickets int64
	change  money.Money
	at      time.Time
}

func NewReceipt(id ID, paid money.Money, tickets int64, change money.Money) Receipt {
	return Receipt{
		id:      id,
		paid:    paid,
		tickets: tickets,
		change:  change,
		at:      time.Now(),
	}
}

func (r Receipt) ID() ID              { return r.id }
func (r Receipt) Paid() money.Money   { return r.paid }
func (r Receipt) Tickets() int64      { return r.tickets }
func (r Receipt) Change() money.Money { return r.change }
func (r Receipt) Date() time.Time     { return r.at }
