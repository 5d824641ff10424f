package loaders

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadTexture loads a PNG or JPEG image as a texture sampler
func LoadTexture(filename string) (*material.ImageTexture, error) {
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", filename, err)
	}

	texture := material.NewImageTextureFromImage(img)
	if texture.Width == 0 || texture.Height == 0 {
		return nil, fmt.Errorf("texture %s is empty", filename)
	}
	return texture, nil
}
