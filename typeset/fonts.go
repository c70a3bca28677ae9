package typeset

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font roles referenced by layout tables.
const (
	FontRegular = "regular"
	FontBold    = "bold"
	FontTitle   = "title"
)

const defaultDPI = 72

// Fonts keeps parsed fonts by role. It is immutable after creation and may
// be shared by concurrent builds, faces may not, see Faces.
type Fonts struct {
	fonts map[string]*opentype.Font
	dpi   float64
}

func builtin(role string) []byte {
	if role == FontRegular {
		return goregular.TTF
	}
	return gobold.TTF
}

// NewFonts parses font data by role. Missing or broken data is replaced by
// embedded Go fonts, so text is always drawn.
func NewFonts(data map[string][]byte, dpi float64, log *zap.Logger) (*Fonts, error) {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f := &Fonts{fonts: make(map[string]*opentype.Font), dpi: dpi}
	for _, role := range []string{FontRegular, FontBold, FontTitle} {
		if raw := data[role]; len(raw) > 0 {
			parsed, err := opentype.Parse(raw)
			if err == nil {
				f.fonts[role] = parsed
				continue
			}
			log.Warn("Unable to parse font, using builtin", zap.String("role", role), zap.Error(err))
		} else {
			log.Debug("Font not provided, using builtin", zap.String("role", role))
		}
		parsed, err := opentype.Parse(builtin(role))
		if err != nil {
			return nil, fmt.Errorf("unable to parse builtin %s font: %w", role, err)
		}
		f.fonts[role] = parsed
	}
	return f, nil
}

// Font returns font for role, unknown roles get regular font.
func (f *Fonts) Font(role string) *opentype.Font {
	if fnt, ok := f.fonts[role]; ok {
		return fnt
	}
	return f.fonts[FontRegular]
}

type faceKey struct {
	role string
	size int
}

// Faces creates and caches font faces for a single build. Faces are not safe
// for concurrent use, each build gets its own cache.
type Faces struct {
	fonts *Fonts

	mu    sync.Mutex
	cache map[faceKey]font.Face
}

// NewFaces returns empty face cache.
func (f *Fonts) NewFaces() *Faces {
	return &Faces{fonts: f, cache: make(map[faceKey]font.Face)}
}

// Face returns face of font role at size in pixels (at default DPI points
// and pixels are the same).
func (c *Faces) Face(role string, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %d is not positive", size)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{role: role, size: size}
	if face, ok := c.cache[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.fonts.Font(role), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     c.fonts.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create %s face at %d: %w", role, size, err)
	}
	c.cache[key] = face
	return face, nil
}

// Close releases all cached faces.
func (c *Faces) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	for k, face := range c.cache {
		err = multierr.Append(err, face.Close())
		delete(c.cache, k)
	}
	return err
}
