package panel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gosimple/slug"

	"panelgen/common"
	"panelgen/config"
)

// DateLayout is date format of output directory (yy_mm_dd).
const DateLayout = "06_01_02"

// Subject identifies publication all panels of a job belong to.
type Subject struct {
	Category common.Category
	Date     time.Time
	MatchID  string
}

func (s Subject) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Category, s.Date.Format(DateLayout), s.MatchID)
}

// Dir returns output directory of subject under root. Match id is cleaned
// and optionally transliterated.
func (s Subject) Dir(root string, transliterate bool) string {
	id := s.MatchID
	if transliterate {
		id = slug.Make(id)
	}
	return filepath.Join(root, s.Category.String(), s.Date.Format(DateLayout), config.CleanFileName(id))
}

// OutputPath returns file name of panel part. Path is a pure function of its
// arguments so rebuilt panels overwrite previous results. Single part panels
// are "{index}.png", split panels are "{index}_{part}.png" with part starting
// at 1.
func OutputPath(root string, s Subject, index string, part, parts int, transliterate bool) string {
	name := config.CleanFileName(index)
	if parts > 1 {
		name += "_" + strconv.Itoa(part+1)
	}
	return filepath.Join(s.Dir(root, transliterate), name+".png")
}

func pngLevel(c common.Compression) png.CompressionLevel {
	switch c {
	case common.CompressionNone:
		return png.NoCompression
	case common.CompressionFast:
		return png.BestSpeed
	case common.CompressionBest:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

// SavePNG writes image to temporary file next to destination and renames it
// into place, readers never see partially written panel.
func SavePNG(img image.Image, path string, c common.Compression) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("unable to set permissions of %s: %w", f.Name(), err)
	}
	if err = imaging.Encode(f, img, imaging.PNG, imaging.PNGCompressionLevel(pngLevel(c))); err != nil {
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("unable to rename into %s: %w", path, err)
	}
	return nil
}
