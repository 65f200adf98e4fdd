package main

import (
	"github.com/dmitrymomot/renderkit/core/server"
	"github.com/dmitrymomot/renderkit/core/templating"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"renderkit-demo"`

	Templates templating.Config
	Server    server.Config
}
