package server

import (
	"Tably/handler"
)

type Handlers struct {
	Catalog   *handler.Catalog
	Table     *handler.Table
	Order     *handler.Order
	Voucher   *handler.Voucher
	Cashier   *handler.Cashier
	Equipment *handler.Equipment
	Feedback  *handler.Feedback
}
