package testbed

import (
	"os"

	"github.com/spaghettifunk/terravox/engine"
	"github.com/spaghettifunk/terravox/engine/config"
	"github.com/spaghettifunk/terravox/engine/core"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	elapsed    float64
	updateTick uint64
}

// NewTestGame builds the demo game. When configPath points to an existing
// TOML file it is loaded; otherwise the defaults apply.
func NewTestGame(configPath string) (*TestGame, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			loaded, err := config.Load(configPath)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State:             &gameState{},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	cfg := g.ApplicationConfig
	core.LogInfo("%s: %d workers, chunk radius %d, seed %d",
		cfg.Name, cfg.Workers, cfg.ChunkRadius, cfg.Seed)
	return nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("testbed initialized")
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.elapsed += deltaTime
	state.updateTick++
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	core.LogInfo("testbed ran %d updates over %.2f s", state.updateTick, state.elapsed)
	return nil
}
