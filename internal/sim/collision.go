package sim

import "github.com/antonvlasov/swoop/internal/config"

// Hit identifies what the player body collided with, if anything.
type Hit int

const (
	HitNone Hit = iota
	HitObstacleTop
	HitObstacleBottom
	HitGround
	HitCeiling
)

// String returns a human-readable name for the hit.
func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitObstacleTop:
		return "obstacle-top"
	case HitObstacleBottom:
		return "obstacle-bottom"
	case HitGround:
		return "ground"
	case HitCeiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// Obstacle reports whether the hit was against an obstacle section.
func (h Hit) Obstacle() bool {
	return h == HitObstacleTop || h == HitObstacleBottom
}

// Resolver tests the player body against the obstacle field and the world
// bounds. It is a pure function of its inputs and mutates nothing.
type Resolver struct {
	worldH      float64
	groundLevel float64
	buffer      float64
}

// NewResolver creates a resolver for the configured world.
func NewResolver(cfg config.Config) Resolver {
	return Resolver{
		worldH:      cfg.World.Height,
		groundLevel: cfg.World.GroundLevel(),
		buffer:      cfg.Player.ProximityBuffer,
	}
}

// Check returns the first hit found this tick, or HitNone.
//
// Obstacles are pre-filtered by x proximity: only obstacles whose span,
// widened by the buffer, contains the player's x are tested. Everything the
// player has already passed or not yet reached is skipped entirely, so a
// stale obstacle can never produce a ghost hit. Obstacles that have been
// scored are likewise never tested again.
//
// Overlap is strict on both axes (touching edges do not collide), so a body
// skimming a gap boundary does not flap between hit and no-hit.
func (r Resolver) Check(body *Body, field *Field) Hit {
	hitbox := body.Hitbox()

	for i := range field.obstacles {
		o := &field.obstacles[i]
		if o.Scored {
			continue
		}
		if body.X < o.X-r.buffer || body.X > o.Right()+r.buffer {
			continue
		}
		if hitbox.Intersects(o.TopRect()) {
			return HitObstacleTop
		}
		if hitbox.Intersects(o.BottomRect(r.worldH)) {
			return HitObstacleBottom
		}
	}

	half := body.HalfHitbox()
	if body.Y+half > r.groundLevel {
		return HitGround
	}
	if body.Y-half < 0 {
		return HitCeiling
	}

	return HitNone
}
