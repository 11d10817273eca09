package sim

import (
	"math/rand"

	"github.com/antonvlasov/swoop/internal/config"
	"github.com/antonvlasov/swoop/internal/core"
)

// Obstacle is a vertical barrier with a gap the player must pass through.
// GapSize and Speed are frozen at spawn time from the phase that was active
// then; a later phase change never alters a live obstacle.
type Obstacle struct {
	ID         int
	X          float64 // left edge, decreases as the world scrolls
	GapCenterY float64
	GapSize    float64
	Width      float64
	Speed      float64
	Tag        string // theme tag of the spawning phase
	Scored     bool
}

// Right returns the x-coordinate of the obstacle's trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopRect returns the collision rectangle above the gap.
func (o Obstacle) TopRect() core.RectF {
	return core.NewRectF(o.X, 0, o.Width, o.GapCenterY-o.GapSize/2)
}

// BottomRect returns the collision rectangle below the gap.
func (o Obstacle) BottomRect(worldHeight float64) core.RectF {
	top := o.GapCenterY + o.GapSize/2
	return core.NewRectF(o.X, top, o.Width, worldHeight-top)
}

// Field owns the set of live obstacles: spawn timing, motion and despawn.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand

	worldW     float64
	worldH     float64
	width      float64
	minSpacing float64
	gapMargin  float64

	sinceSpawn float64
	nextID     int
}

// NewField creates an empty obstacle field with the given RNG seed.
func NewField(cfg config.Config, seed int64) *Field {
	f := &Field{
		obstacles:  make([]Obstacle, 0, 8),
		worldW:     cfg.World.Width,
		worldH:     cfg.World.Height,
		width:      cfg.Obstacles.Width,
		minSpacing: cfg.Obstacles.MinSpacing,
		gapMargin:  cfg.Obstacles.GapMargin,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.sinceSpawn = 0
}

// SpawnTick accumulates elapsed time and spawns a new obstacle at the right
// world edge once the active phase's spawn interval has passed and the
// minimum spacing to the previous obstacle is respected.
func (f *Field) SpawnTick(dt float64, phase config.PhaseParams) {
	f.sinceSpawn += dt
	if f.sinceSpawn < phase.SpawnInterval {
		return
	}
	if !f.hasRoom() {
		return
	}
	f.spawn(phase)
	f.sinceSpawn = 0
}

// hasRoom reports whether a spawn at the right edge keeps the minimum
// x-spacing to the newest live obstacle.
func (f *Field) hasRoom() bool {
	if len(f.obstacles) == 0 {
		return true
	}
	last := f.obstacles[len(f.obstacles)-1]
	return last.Right()+f.minSpacing <= f.worldW
}

// spawn creates an obstacle with a randomized gap center kept fully
// on-screen, freezing the phase's gap and speed.
func (f *Field) spawn(phase config.PhaseParams) {
	lo := phase.GapSize/2 + f.gapMargin
	hi := f.worldH - phase.GapSize/2 - f.gapMargin
	if hi < lo {
		hi = lo // degenerate config, pin the gap to the top margin
	}

	gapCenter := lo
	if hi > lo {
		gapCenter = lo + f.rng.Float64()*(hi-lo)
	}

	f.obstacles = append(f.obstacles, Obstacle{
		ID:         f.nextID,
		X:          f.worldW,
		GapCenterY: gapCenter,
		GapSize:    phase.GapSize,
		Width:      f.width,
		Speed:      phase.Speed,
		Tag:        phase.Tag,
	})
	f.nextID++
}

// Advance scrolls every obstacle left by its own frozen speed and removes
// obstacles that have fully left the world.
func (f *Field) Advance(dt float64) {
	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= o.Speed * dt
		if o.Right() >= 0 {
			live = append(live, o)
		}
	}
	f.obstacles = live
}

// Obstacles returns a copy of the live obstacle list for observers.
func (f *Field) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
