// pkg/render/null.go
package render

import (
	"context"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// NullScene is a headless implementation of entity.Scene. It hands out
// visuals that draw nothing, which makes it the default scene for tests
// and for runs without a display.
type NullScene struct {
	logger *logging.Logger
}

// NewNullScene creates a new NullScene with structured logging.
func NewNullScene() *NullScene {
	return &NullScene{
		logger: logging.NewLogger(),
	}
}

// CreateShipVisual implements entity.Scene.
func (n *NullScene) CreateShipVisual() entity.Visual {
	ctx := context.Background()
	n.logger.Debug(ctx, "CreateShipVisual called")
	return &nullVisual{kind: "ship", logger: n.logger}
}

// CreateAircraftVisual implements entity.Scene.
func (n *NullScene) CreateAircraftVisual() entity.Visual {
	ctx := context.Background()
	n.logger.Debug(ctx, "CreateAircraftVisual called")
	return &nullVisual{kind: "aircraft", logger: n.logger}
}

// PlaceGoalMarker implements entity.Scene.
func (n *NullScene) PlaceGoalMarker(position physics.Vector2D) {
	ctx := context.Background()
	n.logger.Debug(ctx, "PlaceGoalMarker called",
		"x", position.X,
		"y", position.Y,
	)
}

// ScreenToWorld implements entity.Scene. Without a viewport the mapping
// is the identity.
func (n *NullScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return screen
}

// nullVisual discards placements and logs them at debug level.
type nullVisual struct {
	kind   string
	logger *logging.Logger
}

// Place implements entity.Visual.
func (v *nullVisual) Place(position physics.Vector2D, angle float64) {
	ctx := context.Background()
	v.logger.Debug(ctx, "Place called",
		"kind", v.kind,
		"x", position.X,
		"y", position.Y,
		"angle", angle,
	)
}

// Destroy implements entity.Visual.
func (v *nullVisual) Destroy() {
	ctx := context.Background()
	v.logger.Debug(ctx, "Destroy called",
		"kind", v.kind,
	)
}

// NullSceneInstance is a global instance of NullScene for convenience.
var NullSceneInstance entity.Scene = NewNullScene()
