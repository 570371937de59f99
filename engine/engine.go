package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/spaghettifunk/terravox/engine/config"
	"github.com/spaghettifunk/terravox/engine/core"
	"github.com/spaghettifunk/terravox/engine/math"
	"github.com/spaghettifunk/terravox/engine/shader"
	"github.com/spaghettifunk/terravox/engine/systems"
	"github.com/spaghettifunk/terravox/engine/world"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool

	chunkManager  *systems.ChunkManager
	configWatcher *config.Watcher

	mutex         sync.Mutex
	frameUniforms shader.FrameUniforms
	chunks        []*systems.Chunk
	pendingChunks int
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = config.DefaultConfig()
	}
	core.SetLogLevel(g.ApplicationConfig.CoreLogLevel())

	if err := core.MetricsInitialize(); err != nil {
		return nil, err
	}

	cfg := g.ApplicationConfig
	cm, err := systems.NewChunkManager(world.NewTerrainGenerator(cfg.Seed), cfg.Workers, cfg.QueueSize)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		chunkManager: cm,
	}
	engine.frameUniforms = frameUniformsFromConfig(cfg)
	return engine, nil
}

// frameUniformsFromConfig builds the shared per-draw uniform block from
// the configured camera, aimed at the center of the chunk grid.
func frameUniformsFromConfig(cfg *config.ApplicationConfig) shader.FrameUniforms {
	cam := cfg.Camera
	eye := math.NewVec3(cam.Position[0], cam.Position[1], cam.Position[2])
	target := math.NewVec3(float32(world.ChunkSize)/2, 0, float32(world.ChunkSize)/2)

	projection := math.NewMat4Perspective(
		cam.FovDegrees*math.K_DEG2RAD_MULTIPLIER,
		cam.AspectRatio,
		cam.NearClip,
		cam.FarClip,
	)
	view := math.NewMat4LookAt(eye, target, math.NewVec3Up())

	return shader.FrameUniforms{
		ViewPosition: eye,
		ViewProj:     projection.Mul(view),
	}
}

/**
 * @brief Boots the game and dispatches the chunk grid. After Initialize
 * the engine is ready to Run.
 */
func (e *Engine) Initialize() error {
	e.currentStage = EngineStageBooting
	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig

	// One chunk per grid cell around the origin. The chunk location
	// feeds the noise; the world position places the instance.
	radius := cfg.ChunkRadius
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			location := math.NewVec2(
				float32(cx*world.ChunkSize),
				float32(cz*world.ChunkSize),
			)
			position := math.NewVec3(
				float32(cx*world.ChunkSize),
				0,
				float32(cz*world.ChunkSize),
			)
			if _, err := e.chunkManager.Dispatch(position, location); err != nil {
				return err
			}
			e.pendingChunks++
		}
	}
	core.LogInfo("dispatched %d chunk builds", e.pendingChunks)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// WatchConfig hot-reloads the camera settings and log level from the TOML
// file at path while the engine runs.
func (e *Engine) WatchConfig(path string) error {
	w, err := config.NewWatcher(path, func(cfg *config.ApplicationConfig) {
		core.SetLogLevel(cfg.CoreLogLevel())
		e.mutex.Lock()
		e.frameUniforms = frameUniformsFromConfig(cfg)
		e.mutex.Unlock()
	})
	if err != nil {
		return err
	}
	e.configWatcher = w
	return nil
}

/**
 * @brief Runs the draw loop for the configured number of frames: drains
 * finished chunk meshes, then executes the vertex stage for every chunk
 * instance.
 */
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running (stage=%d)", e.currentStage)
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	cfg := e.gameInstance.ApplicationConfig
	lastTime := time.Now()

	for frame := 0; frame < cfg.Frames && e.isRunning; frame++ {
		now := time.Now()
		deltaTime := now.Sub(lastTime).Seconds()
		lastTime = now

		for _, chunk := range e.chunkManager.Update() {
			e.mutex.Lock()
			e.chunks = append(e.chunks, chunk)
			e.mutex.Unlock()
			core.LogDebug("chunk %d ready: %d vertices, %d indices (mesh %s)",
				chunk.ID, len(chunk.Mesh.Vertices), len(chunk.Mesh.Indices), chunk.Mesh.ID)
		}

		e.mutex.Lock()
		uniforms := e.frameUniforms
		chunks := e.chunks
		e.mutex.Unlock()

		for _, chunk := range chunks {
			instances := []shader.InstanceTransform{chunk.InstanceTransform()}
			systems.DrawInstanced(chunk.Mesh.Vertices, instances, &uniforms, cfg.Workers)
		}

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(deltaTime); err != nil {
				return err
			}
		}

		if frame%30 == 29 {
			core.LogInfo("draw avg %.3f ms, %.0f vertices/s over %d draws",
				core.MetricsDrawTimeAvg(), core.MetricsVertexThroughput(), core.MetricsDrawCount())
		}
	}

	return e.Shutdown()
}

// Stop requests the draw loop to exit; Run performs the actual shutdown.
// Safe to call from another goroutine, e.g. a signal handler.
func (e *Engine) Stop() {
	e.isRunning = false
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.configWatcher != nil {
		if err := e.configWatcher.Close(); err != nil {
			core.LogWarn(err.Error())
		}
		e.configWatcher = nil
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.chunkManager != nil {
		if err := e.chunkManager.Shutdown(); err != nil {
			return err
		}
		e.chunkManager = nil
	}
	core.LogInfo("engine shut down")
	return nil
}

/** @brief Returns the chunks whose meshes finished building so far. */
func (e *Engine) Chunks() []*systems.Chunk {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.chunks
}
