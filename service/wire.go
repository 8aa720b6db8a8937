package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(TableService), "*"),
	wire.Bind(new(ITableService), new(*TableService)),

	wire.Struct(new(SessionService), "*"),
	wire.Bind(new(ISessionService), new(*SessionService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(VoucherService), "*"),
	wire.Bind(new(IVoucherService), new(*VoucherService)),

	wire.Struct(new(CashierService), "*"),
	wire.Bind(new(ICashierService), new(*CashierService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(EquipmentService), "*"),
	wire.Bind(new(IEquipmentService), new(*EquipmentService)),

	wire.Struct(new(FeedbackService), "*"),
	wire.Bind(new(IFeedbackService), new(*FeedbackService)),
)
