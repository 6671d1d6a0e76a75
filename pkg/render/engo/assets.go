// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"
)

// AssetManager builds and holds the game sprites. The carrier has no
// image files on disk; every sprite is generated from a pixel pattern.
type AssetManager struct {
	carrierSprite  common.Drawable
	aircraftSprite common.Drawable
	markerSprite   common.Drawable
}

// NewAssetManager creates an empty asset manager. Sprites are nil until
// LoadAssets runs.
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets generates all sprites. Requires a live OpenGL context.
func (am *AssetManager) LoadAssets() error {
	carrier := carrierPattern()
	am.carrierSprite = am.createSprite(len(carrier[0]), len(carrier), carrier)

	aircraft := aircraftPattern()
	am.aircraftSprite = am.createSprite(len(aircraft[0]), len(aircraft), aircraft)

	marker := markerPattern()
	am.markerSprite = am.createSprite(len(marker[0]), len(marker), marker)

	return nil
}

// CarrierSprite returns the carrier hull sprite
func (am *AssetManager) CarrierSprite() common.Drawable {
	return am.carrierSprite
}

// AircraftSprite returns the squadron aircraft sprite
func (am *AssetManager) AircraftSprite() common.Drawable {
	return am.aircraftSprite
}

// MarkerSprite returns the goal marker sprite
func (am *AssetManager) MarkerSprite() common.Drawable {
	return am.markerSprite
}

// carrierPattern is the carrier hull seen from above, bow pointing +X.
// Heading zero must face right so sprite rotation matches world angles.
func carrierPattern() [][]int {
	return [][]int{
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	}
}

// aircraftPattern is a plane seen from above, nose pointing +X. Tail
// fins on the left, wings across the middle.
func aircraftPattern() [][]int {
	return [][]int{
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0},
		{1, 0, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
	}
}

// markerPattern is the diagonal cross drawn at the squadron target
func markerPattern() [][]int {
	return [][]int{
		{1, 1, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 1, 1},
	}
}

// createSprite creates a sprite from a 2D pattern
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
// Sprites are drawn white and tinted per entity through the render component.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}
