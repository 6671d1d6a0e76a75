package entity

import "github.com/opd-ai/go-carrier/pkg/physics"

// Visual is a single drawable object owned by an entity. Entities place
// their visual every frame they are visible and destroy it when they
// leave the scene.
type Visual interface {
	Place(position physics.Vector2D, angle float64)
	Destroy()
}

// Scene handles presentation for game entities
type Scene interface {
	CreateShipVisual() Visual
	CreateAircraftVisual() Visual
	PlaceGoalMarker(position physics.Vector2D)
	ScreenToWorld(screen physics.Vector2D) physics.Vector2D
}
