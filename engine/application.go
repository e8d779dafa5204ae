package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/filare/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string        `toml:"name"`
	LogLevel core.LogLevel `toml:"log_level"`

	Scene    SceneConfig    `toml:"scene"`
	Controls ControlsConfig `toml:"controls"`
}

// SceneConfig describes the single object on display and how it is
// projected.
type SceneConfig struct {
	MeshPath string `toml:"mesh_path"`
	// ObjectPosition/ObjectRotation place the mesh in the world;
	// rotation is in degrees.
	ObjectPosition [3]float32 `toml:"object_position"`
	ObjectRotation [3]float32 `toml:"object_rotation"`
	ObjectScale    float32    `toml:"object_scale"`
	// FOVDegrees is the vertical field of view.
	FOVDegrees float32    `toml:"fov_degrees"`
	NearClip   float32    `toml:"near_clip"`
	FarClip    float32    `toml:"far_clip"`
	LineColor  [4]float32 `toml:"line_color"`
	LineWidth  float32    `toml:"line_width"`
}

type ControlsConfig struct {
	// MoveSpeed is in world units per second, TurnSpeed in degrees per
	// second.
	MoveSpeed float32 `toml:"move_speed"`
	TurnSpeed float32 `toml:"turn_speed"`
	// MouseLook adds pointer-driven yaw/pitch on top of the keyboard.
	MouseLook        bool    `toml:"mouse_look"`
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1920,
		StartHeight: 1080,
		Name:        "Filare",
		LogLevel:    core.InfoLevel,
		Scene: SceneConfig{
			MeshPath:       "assets/meshes/cube.obj",
			ObjectPosition: [3]float32{0, 0, 100},
			ObjectRotation: [3]float32{0, 0, 0},
			ObjectScale:    1.0,
			FOVDegrees:     45.0,
			NearClip:       1.0,
			FarClip:        10000.0,
			LineColor:      [4]float32{0.0, 0.0, 1.0, 1.0},
			LineWidth:      1.0,
		},
		Controls: ControlsConfig{
			MoveSpeed:        10.0,
			TurnSpeed:        60.0,
			MouseLook:        false,
			MouseSensitivity: 0.1,
		},
	}
}

// LoadApplicationConfig reads a TOML configuration file, applying the
// defaults for every key the file leaves out. A missing file is not an
// error; the defaults are returned as-is.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogInfo("no configuration at %s, using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := config.Scene.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

func (s SceneConfig) validate() error {
	if s.NearClip <= 0 {
		return fmt.Errorf("near_clip (%g) must be greater than 0", s.NearClip)
	}
	if s.FarClip <= s.NearClip {
		return fmt.Errorf("far_clip (%g) must be greater than near_clip (%g)", s.FarClip, s.NearClip)
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees (%g) must be within (0, 180)", s.FOVDegrees)
	}
	return nil
}
