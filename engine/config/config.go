package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/terravox/engine/core"
)

/** @brief Camera settings used to build the frame uniforms. */
type CameraConfig struct {
	FovDegrees  float32 `toml:"fov_degrees"`
	AspectRatio float32 `toml:"aspect_ratio"`
	NearClip    float32 `toml:"near_clip"`
	FarClip     float32 `toml:"far_clip"`
	Position    [3]float32
}

/** @brief Application configuration, loaded from a TOML file. */
type ApplicationConfig struct {
	Name     string
	LogLevel string `toml:"log_level"`
	// Number of worker goroutines for chunk generation and draws.
	Workers int
	// Buffered size of the chunk job queue.
	QueueSize int `toml:"queue_size"`
	// Chunks are generated on a (2*ChunkRadius+1)^2 grid around the origin.
	ChunkRadius int `toml:"chunk_radius"`
	// Terrain noise seed.
	Seed int64
	// Number of draws the testbed runs before shutting down.
	Frames int
	Camera CameraConfig
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Terravox",
		LogLevel:    "debug",
		Workers:     4,
		QueueSize:   32,
		ChunkRadius: 1,
		Seed:        1337,
		Frames:      120,
		Camera: CameraConfig{
			FovDegrees:  45.0,
			AspectRatio: 16.0 / 9.0,
			NearClip:    0.1,
			FarClip:     1000.0,
			Position:    [3]float32{0, 48, 0},
		},
	}
}

/**
 * @brief Loads the application configuration from the TOML file at path.
 * Fields absent from the file keep their default values.
 */
func Load(path string) (*ApplicationConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

/** @brief Maps the textual log level to the engine logger's level. */
func (c *ApplicationConfig) CoreLogLevel() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.DebugLevel
	case "info":
		return core.InfoLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}
