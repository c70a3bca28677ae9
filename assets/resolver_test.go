package assets

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"panelgen/common"
)

const svgIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="red"/></svg>`

func pngData(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testFiles(t *testing.T) map[string][]byte {
	t.Helper()
	return map[string][]byte{
		"heroes/hero2.png":      pngData(t, 20, 10, color.NRGBA{255, 0, 0, 255}),
		"heroes/hero10.png":     pngData(t, 30, 10, color.NRGBA{0, 255, 0, 255}),
		"heroes/unknown.png":    pngData(t, 5, 5, color.NRGBA{0, 0, 255, 255}),
		"heroes/dup.svg":        []byte(svgIcon),
		"heroes/dup.png":        pngData(t, 7, 7, color.NRGBA{1, 1, 1, 255}),
		"teams/logo.svg":        []byte(svgIcon),
		"templates/broken.png":  []byte("not really a png"),
		"fonts/regular.ttf":     []byte("font data"),
		"readme.txt":            []byte("text"),
		"templates/basic/a.png": pngData(t, 4, 4, color.NRGBA{9, 9, 9, 255}),
	}
}

func makeDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range testFiles(t) {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func makeZip(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "pack.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for n, data := range testFiles(t) {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

var fallbacks = map[string]string{
	"heroes/": "heroes/unknown",
	"teams/":  "teams/missing",
}

func forEachRoot(t *testing.T, fn func(t *testing.T, r *Resolver)) {
	for name, mk := range map[string]func(*testing.T) string{"dir": makeDir, "zip": makeZip} {
		t.Run(name, func(t *testing.T) {
			r, err := New(mk(t), fallbacks, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			fn(t, r)
		})
	}
}

func TestResolver_Keys(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		want := []string{
			"heroes/dup", "heroes/hero2", "heroes/hero10", "heroes/unknown",
			"teams/logo", "templates/basic/a", "templates/broken",
		}
		if got := r.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
		if !r.Has("teams/logo") || r.Has("readme") {
			t.Error("unexpected Has() result")
		}
	})
}

func TestResolver_Image(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		img, err := r.Image("heroes/hero10")
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 30 {
			t.Errorf("bounds = %v", img.Bounds())
		}
		again, _ := r.Image("heroes/hero10")
		if again != img {
			t.Error("decoded image is not cached")
		}

		// png wins over svg with the same key
		img, err = r.Image("heroes/dup")
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 7 {
			t.Errorf("dup bounds = %v, want png", img.Bounds())
		}
	})
}

func TestResolver_Fallbacks(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		img, err := r.Image("heroes/nobody")
		if err != nil {
			t.Fatalf("expected fallback, got %v", err)
		}
		if img.Bounds().Dx() != 5 {
			t.Errorf("fallback bounds = %v", img.Bounds())
		}

		// fallback target itself is missing
		if _, err := r.Image("teams/nobody"); !errors.Is(err, common.ErrAssetMissing) {
			t.Errorf("error = %v, want ErrAssetMissing", err)
		}
		// no fallback prefix
		if _, err := r.Image("players/nobody"); !errors.Is(err, common.ErrAssetMissing) {
			t.Errorf("error = %v, want ErrAssetMissing", err)
		}
	})
}

func TestResolver_LongestPrefix(t *testing.T) {
	r, err := New(makeDir(t), map[string]string{
		"":                  "heroes/hero2",
		"heroes/":           "heroes/unknown",
		"heroes/strength/":  "heroes/hero10",
		"heroes/strength/x": "missing",
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key   string
		width int
	}{
		{"anything", 20},
		{"heroes/zzz", 5},
		{"heroes/strength/axe", 30},
	}
	for _, tt := range tests {
		img, err := r.Image(tt.key)
		if err != nil {
			t.Fatalf("Image(%s) error = %v", tt.key, err)
		}
		if img.Bounds().Dx() != tt.width {
			t.Errorf("Image(%s) width = %d, want %d", tt.key, img.Bounds().Dx(), tt.width)
		}
	}
	if _, err := r.Image("heroes/strength/xyz"); !errors.Is(err, common.ErrAssetMissing) {
		t.Errorf("error = %v, want ErrAssetMissing", err)
	}
}

func TestResolver_InvalidAsset(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		if _, err := r.Image("templates/broken"); !errors.Is(err, common.ErrInvalidAsset) {
			t.Errorf("error = %v, want ErrInvalidAsset", err)
		}
	})
}

func TestResolver_ImageSized(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		img, err := r.ImageSized("teams/logo", 64, 32)
		if err != nil {
			t.Fatal(err)
		}
		// square icon fitted into 64x32 box
		if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
			t.Errorf("bounds = %v", img.Bounds())
		}
		again, _ := r.ImageSized("teams/logo", 64, 32)
		if again != img {
			t.Error("sized raster is not cached")
		}
		// raster assets are returned as is
		img, err = r.ImageSized("heroes/hero2", 64, 32)
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 20 {
			t.Errorf("raster bounds = %v", img.Bounds())
		}
	})
}

func TestResolver_Bytes(t *testing.T) {
	forEachRoot(t, func(t *testing.T, r *Resolver) {
		data, err := r.Bytes("fonts/regular.ttf")
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "font data" {
			t.Errorf("Bytes() = %q", data)
		}
		if _, err := r.Bytes("fonts/missing.ttf"); !errors.Is(err, common.ErrAssetMissing) {
			t.Errorf("error = %v, want ErrAssetMissing", err)
		}
		if data, err := r.Bytes("teams/logo"); err != nil || string(data) != svgIcon {
			t.Errorf("Bytes(key) = %q, %v", data, err)
		}
	})
}

func TestResolver_Load(t *testing.T) {
	r, err := New(makeDir(t), nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	photo := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(photo, pngData(t, 60, 80, color.NRGBA{10, 10, 10, 255}), 0644); err != nil {
		t.Fatal(err)
	}
	img, err := r.Load(photo)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 60 || img.Bounds().Dy() != 80 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if _, err := r.Load(photo + ".missing"); !errors.Is(err, common.ErrAssetMissing) {
		t.Errorf("error = %v, want ErrAssetMissing", err)
	}
}

func TestResolver_Concurrent(t *testing.T) {
	r, err := New(makeDir(t), fallbacks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	results := make([]image.Image, 16)
	for i := range results {
		wg.Go(func() {
			img, err := r.Image("heroes/nobody")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = img
		})
	}
	wg.Wait()
	for i := range results {
		if results[i] != results[0] {
			t.Fatal("concurrent callers got different images")
		}
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for missing root")
	}
	notZip := filepath.Join(t.TempDir(), "pack.zip")
	if err := os.WriteFile(notZip, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(notZip, nil, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for broken pack")
	}
}
