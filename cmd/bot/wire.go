//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Jacobbrewer1/artemis/cmd/bot/config"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/google/wire"
	"github.com/gorilla/mux"
)

func InitializeApp(infoPath InfoPath) (*App, error) {
	wire.Build(
		wire.Value(logging.Name(config.AppName)),
		logging.NewConfig,
		logging.CommonLogger,
		mux.NewRouter,
		loadBotInfo,
		NewApp,
	)
	return new(App), nil
}
