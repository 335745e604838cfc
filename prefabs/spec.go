package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals one yaml tuning file, disk copy first,
// embedded copy as fallback.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes the player ship.
type PlayerSpec struct {
	MoveSpeed     float64     `yaml:"move_speed"`
	ShootCooldown float64     `yaml:"shoot_cooldown"`
	BulletSpeed   float64     `yaml:"bullet_speed"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	Lives         int         `yaml:"lives"`
	HitboxShrink  float64     `yaml:"hitbox_shrink"`
	Audio         []AudioSpec `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemySpec tunes one enemy archetype. Fields that do not apply to a kind
// are left zero in the yaml.
type EnemySpec struct {
	Health        int     `yaml:"health"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Descent       float64 `yaml:"descent"`
	SteerRate     float64 `yaml:"steer_rate"`
	Amplitude     float64 `yaml:"amplitude"`
	Frequency     float64 `yaml:"frequency"`
	StopDistance  float64 `yaml:"stop_distance"`
	FallbackStopY float64 `yaml:"fallback_stop_y"`
	FireCooldown  float64 `yaml:"fire_cooldown"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
}

type EnemiesSpec struct {
	Basic   EnemySpec `yaml:"basic"`
	ZigZag  EnemySpec `yaml:"zigzag"`
	Fast    EnemySpec `yaml:"fast"`
	Shooter EnemySpec `yaml:"shooter"`
}

func LoadEnemiesSpec() (*EnemiesSpec, error) {
	spec, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BossSpec tunes the boss fight. Patterns lists volley names in firing
// order; a "script:" prefix resolves to a tengo script under scripts/.
type BossSpec struct {
	Health   int         `yaml:"health"`
	Width    float64     `yaml:"width"`
	Height   float64     `yaml:"height"`
	StartY   float64     `yaml:"start_y"`
	Descent  float64     `yaml:"descent"`
	Speed    float64     `yaml:"speed"`
	MinX     float64     `yaml:"min_x"`
	MaxX     float64     `yaml:"max_x"`
	Cooldown float64     `yaml:"cooldown"`
	Patterns []string    `yaml:"patterns"`
	Audio    []AudioSpec `yaml:"audio"`
}

func LoadBossSpec() (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SpawnSpec tunes the spawn scheduler and the boss timer.
type SpawnSpec struct {
	Interval         float64 `yaml:"interval"`
	MinInterval      float64 `yaml:"min_interval"`
	DifficultyPeriod float64 `yaml:"difficulty_period"`
	DifficultyFactor float64 `yaml:"difficulty_factor"`
	BossAt           float64 `yaml:"boss_at"`
}

func LoadSpawnSpec() (*SpawnSpec, error) {
	spec, err := LoadSpec[SpawnSpec]("spawn.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// ThemeSpec colors the menu and overlay panels.
type ThemeSpec struct {
	Panel  *YAMLColor `yaml:"panel"`
	Button *YAMLColor `yaml:"button"`
	Text   *YAMLColor `yaml:"text"`
	Accent *YAMLColor `yaml:"accent"`
}

func LoadThemeSpec() (*ThemeSpec, error) {
	spec, err := LoadSpec[ThemeSpec]("ui.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
