package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals one embedded (or disk-overridden) yaml spec.
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

// GameSpec is the top-level run configuration: chunk streaming geometry,
// biome ordering, and pool prewarm plans.
type GameSpec struct {
	Chunk  StreamSpec  `yaml:"chunk"`
	Biomes []BiomeSpec `yaml:"biomes"`
	Pools  PoolsSpec   `yaml:"pools"`
}

// StreamSpec configures chunk placement and the active window.
type StreamSpec struct {
	Length     float64 `yaml:"length"`
	Gap        float64 `yaml:"gap"`
	Ahead      int     `yaml:"ahead"`
	Behind     int     `yaml:"behind"`
	Start      string  `yaml:"start"`
	End        string  `yaml:"end"`
	SetupTicks int     `yaml:"setup_ticks"`
}

// BiomeSpec is one biome's ordered chunk list. Biomes are concatenated in
// file order when the sequence is built.
type BiomeSpec struct {
	Name   string   `yaml:"name"`
	Chunks []string `yaml:"chunks"`
}

// PoolsSpec configures the entity pool and the loading-screen prewarm plan.
type PoolsSpec struct {
	DefaultCapacity int                `yaml:"default_capacity"`
	PerTickBudget   int                `yaml:"per_tick_budget"`
	Categories      []PoolCategorySpec `yaml:"categories"`
}

type PoolCategorySpec struct {
	Name  string         `yaml:"name"`
	Items []PoolItemSpec `yaml:"items"`
}

type PoolItemSpec struct {
	Prototype string `yaml:"prototype"`
	Count     int    `yaml:"count"`
}

// ChunkSpec is one bridge segment prototype: its heading plus the hazards,
// enemies, and coins placed on it (positions relative to the chunk origin).
type ChunkSpec struct {
	Name    string           `yaml:"name"`
	Yaw     float64          `yaml:"yaw"`
	Hazards []HazardSpec     `yaml:"hazards"`
	Enemies []ChunkEnemySpec `yaml:"enemies"`
	Coins   []ChunkCoinSpec  `yaml:"coins"`
}

type HazardSpec struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

type ChunkEnemySpec struct {
	Prototype string  `yaml:"prototype"`
	X         float64 `yaml:"x"`
	Z         float64 `yaml:"z"`
}

type ChunkCoinSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// EnemySpec is one enemy prototype.
type EnemySpec struct {
	Name        string  `yaml:"name"`
	Script      string  `yaml:"script"`
	Health      int     `yaml:"health"`
	MoveSpeed   float64 `yaml:"move_speed"`
	AggroRange  float64 `yaml:"aggro_range"`
	AttackRange float64 `yaml:"attack_range"`
	Damage      int     `yaml:"damage"`
	Radius      float64 `yaml:"radius"`
	CoinDrop    int     `yaml:"coin_drop"`
	DeathVFX    string  `yaml:"death_vfx"`
}

// ProjectileSpec is one projectile prototype, including the status effect it
// applies on hit.
type ProjectileSpec struct {
	Name      string  `yaml:"name"`
	Speed     float64 `yaml:"speed"`
	LifeTicks int     `yaml:"life_ticks"`
	Damage    int     `yaml:"damage"`
	Radius    float64 `yaml:"radius"`
	HitVFX    string  `yaml:"hit_vfx"`

	Effect       string  `yaml:"effect"`
	BurnTicks    int     `yaml:"burn_ticks"`
	BurnInterval int     `yaml:"burn_interval"`
	BurnDamage   int     `yaml:"burn_damage"`
	ChillTicks   int     `yaml:"chill_ticks"`
	ChillFactor  float64 `yaml:"chill_factor"`
}

// CoinSpec is the collectible coin prototype.
type CoinSpec struct {
	Name     string  `yaml:"name"`
	Value    int     `yaml:"value"`
	Radius   float64 `yaml:"radius"`
	TTLTicks int     `yaml:"ttl_ticks"`
}

// VFXSpec is a pooled visual-effect prototype.
type VFXSpec struct {
	Name     string `yaml:"name"`
	TTLTicks int    `yaml:"ttl_ticks"`
}

// PlayerSpec is the runner prototype.
type PlayerSpec struct {
	Name          string  `yaml:"name"`
	RunSpeed      float64 `yaml:"run_speed"`
	SteerSpeed    float64 `yaml:"steer_speed"`
	LaneHalfWidth float64 `yaml:"lane_half_width"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	FireInterval  int     `yaml:"fire_interval"`
	Health        int     `yaml:"health"`
	Radius        float64 `yaml:"radius"`
	Projectile    string  `yaml:"projectile"`
	AimRange      float64 `yaml:"aim_range"`
}

// CameraSpec is the follow camera configuration.
type CameraSpec struct {
	Name       string  `yaml:"name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	LookAhead  float64 `yaml:"look_ahead"`
}
