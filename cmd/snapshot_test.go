package cmd

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/galactic-visuals/internal/page"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

func TestComposeLayersElements(t *testing.T) {
	bg := color.NRGBA{R: 2, G: 0, B: 36, A: 255}
	box := surface.NewRaster(10, 10)
	box.FillRect(0, 0, 10, 10, color.NRGBA{R: 255, A: 255})

	p := page.New()
	p.Add("box", 5, 5, box)
	p.Add("ignored", 0, 0, surface.NewRecorder(40, 40))

	img := compose(p, 40, 20, bg)
	if got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); got != bg {
		t.Fatalf("expected background at origin, got %v", got)
	}
	if r, _, _, _ := img.At(9, 9).RGBA(); r>>8 != 255 {
		t.Fatalf("expected the box composed at its offset, red=%d", r>>8)
	}
	if r, _, _, _ := img.At(16, 9).RGBA(); r>>8 != 2 {
		t.Fatalf("expected background right of the box, red=%d", r>>8)
	}
}

func TestWritePNG(t *testing.T) {
	p := page.New()
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, compose(p, 8, 4, color.Black)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for range 4 {
		if a.Uint64() != b.Uint64() {
			t.Fatal("same seed must give the same sequence")
		}
	}
}
