package engine

import (
	"github.com/spaghettifunk/terravox/engine/config"
)

type Game struct {
	ApplicationConfig *config.ApplicationConfig
	State             interface{}
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Shutdown func() error
