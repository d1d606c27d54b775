package prefabs

import (
	"fmt"
	"strings"
)

// Prototype kinds as reported by Catalog.Kind.
const (
	KindChunk      = "chunk"
	KindEnemy      = "enemy"
	KindProjectile = "projectile"
	KindCoin       = "coin"
	KindVFX        = "vfx"
)

// Catalog is the loaded prototype set for a session: every spec keyed by its
// stable name. Prototype names are the pool and sequence keys.
type Catalog struct {
	game   GameSpec
	player PlayerSpec
	camera CameraSpec
	coin   CoinSpec

	chunks      map[string]ChunkSpec
	enemies     map[string]EnemySpec
	projectiles map[string]ProjectileSpec
	vfx         map[string]VFXSpec
}

// LoadCatalog loads every embedded spec and cross-checks references. A
// catalog that loads is internally consistent: biome chunk lists point at
// real chunks and chunk enemy placements point at real enemies.
func LoadCatalog() (*Catalog, error) {
	c := &Catalog{
		chunks:      make(map[string]ChunkSpec),
		enemies:     make(map[string]EnemySpec),
		projectiles: make(map[string]ProjectileSpec),
		vfx:         make(map[string]VFXSpec),
	}

	var err error
	if c.game, err = LoadSpec[GameSpec]("game.yaml"); err != nil {
		return nil, err
	}
	if c.player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if c.camera, err = LoadSpec[CameraSpec]("camera.yaml"); err != nil {
		return nil, err
	}
	if c.coin, err = LoadSpec[CoinSpec]("coin.yaml"); err != nil {
		return nil, err
	}

	for _, name := range Names("chunk_") {
		spec, err := LoadSpec[ChunkSpec](name)
		if err != nil {
			return nil, err
		}
		c.chunks[specName(name, spec.Name)] = spec
	}
	for _, name := range Names("enemy_") {
		spec, err := LoadSpec[EnemySpec](name)
		if err != nil {
			return nil, err
		}
		c.enemies[specName(name, spec.Name)] = spec
	}
	for _, name := range Names("projectile_") {
		spec, err := LoadSpec[ProjectileSpec](name)
		if err != nil {
			return nil, err
		}
		c.projectiles[specName(name, spec.Name)] = spec
	}
	for _, name := range Names("vfx_") {
		spec, err := LoadSpec[VFXSpec](name)
		if err != nil {
			return nil, err
		}
		c.vfx[specName(name, spec.Name)] = spec
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// specName prefers the name field inside the spec, falling back to the
// filename without extension.
func specName(filename, inner string) string {
	if inner != "" {
		return inner
	}
	return strings.TrimSuffix(filename, ".yaml")
}

func (c *Catalog) validate() error {
	check := func(name string) error {
		if name == "" {
			return nil
		}
		if _, ok := c.chunks[name]; !ok {
			return fmt.Errorf("prefabs: unknown chunk prototype %q", name)
		}
		return nil
	}
	if err := check(c.game.Chunk.Start); err != nil {
		return err
	}
	if err := check(c.game.Chunk.End); err != nil {
		return err
	}
	for _, b := range c.game.Biomes {
		for _, name := range b.Chunks {
			if err := check(name); err != nil {
				return fmt.Errorf("prefabs: biome %s: %w", b.Name, err)
			}
		}
	}
	for name, spec := range c.chunks {
		for _, e := range spec.Enemies {
			if _, ok := c.enemies[e.Prototype]; !ok {
				return fmt.Errorf("prefabs: chunk %s: unknown enemy prototype %q", name, e.Prototype)
			}
		}
	}
	for name, spec := range c.enemies {
		if spec.DeathVFX != "" {
			if _, ok := c.vfx[spec.DeathVFX]; !ok {
				return fmt.Errorf("prefabs: enemy %s: unknown vfx %q", name, spec.DeathVFX)
			}
		}
	}
	for name, spec := range c.projectiles {
		if spec.HitVFX != "" {
			if _, ok := c.vfx[spec.HitVFX]; !ok {
				return fmt.Errorf("prefabs: projectile %s: unknown vfx %q", name, spec.HitVFX)
			}
		}
	}
	if c.player.Projectile != "" {
		if _, ok := c.projectiles[c.player.Projectile]; !ok {
			return fmt.Errorf("prefabs: player projectile %q not defined", c.player.Projectile)
		}
	}
	return nil
}

func (c *Catalog) Game() GameSpec     { return c.game }
func (c *Catalog) Player() PlayerSpec { return c.player }
func (c *Catalog) Camera() CameraSpec { return c.camera }
func (c *Catalog) Coin() CoinSpec     { return c.coin }

func (c *Catalog) Chunk(name string) (ChunkSpec, bool) {
	s, ok := c.chunks[name]
	return s, ok
}

func (c *Catalog) Enemy(name string) (EnemySpec, bool) {
	s, ok := c.enemies[name]
	return s, ok
}

func (c *Catalog) Projectile(name string) (ProjectileSpec, bool) {
	s, ok := c.projectiles[name]
	return s, ok
}

func (c *Catalog) VFX(name string) (VFXSpec, bool) {
	s, ok := c.vfx[name]
	return s, ok
}

// Kind reports which prototype family a name belongs to, or "" if unknown.
func (c *Catalog) Kind(name string) string {
	if c == nil {
		return ""
	}
	switch {
	case name == "":
		return ""
	case name == specName("coin.yaml", c.coin.Name):
		return KindCoin
	}
	if _, ok := c.chunks[name]; ok {
		return KindChunk
	}
	if _, ok := c.enemies[name]; ok {
		return KindEnemy
	}
	if _, ok := c.projectiles[name]; ok {
		return KindProjectile
	}
	if _, ok := c.vfx[name]; ok {
		return KindVFX
	}
	return ""
}

// CoinName returns the coin prototype's pool key.
func (c *Catalog) CoinName() string {
	return specName("coin.yaml", c.coin.Name)
}
