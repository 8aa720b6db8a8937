//go:build wireinject
// +build wireinject

package main

import (
	"Tably/dao"
	"Tably/dao/cache"
	"Tably/handler"
	"Tably/pkg/client"
	"Tably/pkg/database"
	"Tably/pkg/server"
	"Tably/service"

	"Tably/config"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Table), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Voucher), "*"),
		wire.Struct(new(handler.Cashier), "*"),
		wire.Struct(new(handler.Equipment), "*"),
		wire.Struct(new(handler.Feedback), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
