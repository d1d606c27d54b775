// streamsim runs the chunk streaming pipeline headless: it builds the run's
// chunk sequence from the embedded specs and walks a virtual runner down the
// bridge, printing window changes. Useful for tuning chunk and window specs
// without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/prefabs"
	"github.com/emberworks/pathofember/stream"
)

type printSpawner struct {
	next int
}

func (s *printSpawner) SpawnChunk(prototype string, index int, pos common.Vec3) (int, error) {
	s.next++
	fmt.Printf("  + chunk %2d %-22s z=%.0f\n", index, prototype, pos.Z)
	return s.next, nil
}

func (s *printSpawner) DespawnChunk(h int) {
	fmt.Printf("  - handle %d\n", h)
}

func main() {
	speed := flag.Float64("speed", 0.45, "runner speed in units per tick")
	ticks := flag.Int("ticks", 36000, "max ticks to simulate")
	every := flag.Int("every", 600, "report interval in ticks")
	flag.Parse()

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	game := catalog.Game()

	groups := make([]stream.BiomeGroup, 0, len(game.Biomes))
	for _, b := range game.Biomes {
		groups = append(groups, stream.BiomeGroup{Name: b.Name, Chunks: b.Chunks})
	}
	seq, err := stream.BuildSequence(stream.SequenceConfig{
		Start:  game.Chunk.Start,
		End:    game.Chunk.End,
		Groups: groups,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("sequence: %d chunks, pitch %.0f\n", seq.Len(), game.Chunk.Length+game.Chunk.Gap)

	manager := stream.NewManager[int](seq, stream.Config{
		Length: game.Chunk.Length,
		Gap:    game.Chunk.Gap,
		Ahead:  game.Chunk.Ahead,
		Behind: game.Chunk.Behind,
	}, &printSpawner{})
	manager.Init(0)

	pitch := game.Chunk.Length + game.Chunk.Gap
	endZ := float64(seq.Len()) * pitch

	z := 0.0
	for tick := 0; tick < *ticks; tick++ {
		z += *speed
		manager.Advance(z)
		if tick%*every == 0 {
			fmt.Printf("tick %6d  z=%7.1f  chunk=%d  active=%v\n", tick, z, manager.CurrentIndex(), manager.ActiveIndices())
		}
		if z > endZ {
			fmt.Printf("reached the pyre gate at tick %d\n", tick)
			break
		}
	}
	manager.Teardown()
}
