package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/world"
)

func testWorld() *world.World {
	return world.MustNew(world.Spec{
		Arena: world.Arena{Width: 200, Height: 100},
		Player: world.Player{
			Pos:  gamemath.V(20, 20),
			Size: gamemath.V(20, 20),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(0, 0), Size: gamemath.V(200, 20)},
		},
		Balls: []world.Ball{
			{Pos: gamemath.V(150, 60), Radius: 10},
		},
	})
}

func sameRGB(got color.Color, want color.RGBA) bool {
	r, g, b, _ := got.RGBA()
	wr, wg, wb, _ := want.RGBA()
	return r>>8 == wr>>8 && g>>8 == wg>>8 && b>>8 == wb>>8
}

func TestRenderFlipsToImageSpace(t *testing.T) {
	img, err := Render(testWorld(), 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		// The floor sits at world y 0..20, image rows 80..100.
		{"floor", 100, 90, cfg.Viewer.PlatformFill},
		{"sky", 100, 10, cfg.Viewer.Background},
		// Ball center (150,60) maps to image (150,40).
		{"ball", 150, 40, cfg.Viewer.BallFill},
		// Player box covers world y 20..40, image rows 60..80.
		{"player", 30, 70, cfg.Viewer.PlayerFill},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); !sameRGB(got, tt.want) {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderScales(t *testing.T) {
	img, err := Render(testWorld(), 2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("bounds = %v, want 400x200", b)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testWorld()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, testWorld()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty PNG")
	}
}
