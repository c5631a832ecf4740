//go:build wireinject
// +build wireinject

package main

import (
	"Tweeter/config"
	"Tweeter/dao"
	"Tweeter/handler"
	"Tweeter/pkg/authz"
	"Tweeter/pkg/client"
	"Tweeter/pkg/database"
	"Tweeter/pkg/lock"
	"Tweeter/pkg/pagination"
	"Tweeter/pkg/server"
	"Tweeter/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		lock.NewLocker,
		authz.NewGuard,
		config.ProvidePaginationConfig,
		pagination.New,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Tweet), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Reaction), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
