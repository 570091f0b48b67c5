// Package snapshot draws a world to an image without a window, for
// headless runs and regression checks.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/world"
)

// Render draws w at the given scale. The world is y-up and images are
// y-down, so every shape is flipped against the arena height.
func Render(w *world.World, scale float64) (image.Image, error) {
	dc, err := draw(w, scale)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders w at scale 1 and encodes it as PNG.
func WritePNG(out io.Writer, w *world.World) error {
	dc, err := draw(w, 1)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(out)
}

// SavePNG renders w at scale 1 into a PNG file.
func SavePNG(path string, w *world.World) error {
	dc, err := draw(w, 1)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func draw(w *world.World, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		scale = 1
	}
	width := int(w.Arena.Width * scale)
	height := int(w.Arena.Height * scale)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: arena %gx%g at scale %g has no pixels", w.Arena.Width, w.Arena.Height, scale)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(cfg.Viewer.Background))
	flipY := func(y, h float64) float64 { return (w.Arena.Height - y - h) * scale }

	dc.SetColor(cfg.Viewer.PlatformFill)
	for _, p := range w.Platforms {
		dc.DrawRectangle(p.Pos.X*scale, flipY(p.Pos.Y, p.Size.Y), p.Size.X*scale, p.Size.Y*scale)
	}
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot platforms: %w", err)
	}

	dc.SetColor(cfg.Viewer.BallFill)
	for _, b := range w.Balls {
		dc.DrawCircle(b.Pos.X*scale, flipY(b.Pos.Y, 0), b.Radius*scale)
	}
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot balls: %w", err)
	}

	p := w.Player
	if p.OnGround {
		dc.SetColor(cfg.Viewer.GroundedFill)
	} else {
		dc.SetColor(cfg.Viewer.PlayerFill)
	}
	dc.DrawRectangle(p.Pos.X*scale, flipY(p.Pos.Y, p.Size.Y), p.Size.X*scale, p.Size.Y*scale)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot player: %w", err)
	}

	return dc, nil
}
