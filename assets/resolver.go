// Package assets resolves logical asset keys ("heroes/antimage",
// "templates/basic/cover") to decoded images. Assets come from a resource
// root which is either a directory or a zip resource pack. Decoded assets
// are immutable and cached for the lifetime of the process.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"panelgen/archive"
	"panelgen/common"
	"panelgen/utils/images"
)

// When several files share a key the first extension in this list wins.
var imageExts = []string{".png", ".webp", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".svg"}

func extRank(ext string) int {
	for i, e := range imageExts {
		if strings.EqualFold(e, ext) {
			return i
		}
	}
	return -1
}

type sizedKey struct {
	key  string
	w, h int
}

// Resolver is safe for concurrent use.
type Resolver struct {
	root      string
	packed    map[string][]byte // zip pack content, nil for directories
	names     map[string]string // logical key -> file name relative to root
	fallbacks map[string]string
	log       *zap.Logger

	mu     sync.Mutex
	cache  map[string]image.Image
	sized  map[sizedKey]image.Image
	misses map[string]struct{}
}

// New indexes resource root. Fallbacks map key prefixes to default keys,
// the longest matching prefix wins, empty prefix matches everything.
func New(root string, fallbacks map[string]string, log *zap.Logger) (*Resolver, error) {
	r := &Resolver{
		root:      root,
		names:     make(map[string]string),
		fallbacks: fallbacks,
		log:       log.Named("assets"),
		cache:     make(map[string]image.Image),
		sized:     make(map[sizedKey]image.Image),
		misses:    make(map[string]struct{}),
	}

	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("unable to access resource root: %w", err)
	}

	var files []string
	if fi.IsDir() {
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
	} else {
		if r.packed, err = archive.ReadAll(root, ""); err == nil {
			for name := range r.packed {
				files = append(files, name)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("unable to index resource root %s: %w", root, err)
	}

	for _, name := range files {
		ext := path.Ext(name)
		rank := extRank(ext)
		if rank < 0 {
			continue
		}
		key := strings.TrimSuffix(name, ext)
		if prev, ok := r.names[key]; ok && extRank(path.Ext(prev)) <= rank {
			continue
		}
		r.names[key] = name
	}
	r.log.Debug("Resources indexed", zap.String("root", root), zap.Bool("packed", r.packed != nil), zap.Int("files", len(files)), zap.Int("images", len(r.names)))
	return r, nil
}

// Root returns resource root resolver was created for.
func (r *Resolver) Root() string {
	return r.root
}

// Keys returns naturally sorted logical keys of all image assets.
func (r *Resolver) Keys() []string {
	keys := make([]string, 0, len(r.names))
	for k := range r.names {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Has reports whether key names existing image asset.
func (r *Resolver) Has(key string) bool {
	_, ok := r.names[key]
	return ok
}

// Bytes returns raw content of a file under resource root by its relative
// name or image key.
func (r *Resolver) Bytes(name string) ([]byte, error) {
	name = strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "/")
	if n, ok := r.names[name]; ok {
		name = n
	}
	if r.packed != nil {
		data, ok := r.packed[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, common.ErrAssetMissing)
		}
		return data, nil
	}
	data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, common.ErrAssetMissing)
	}
	return data, err
}

// resolve returns key which should be used for requested one, applying
// fallbacks.
func (r *Resolver) resolve(key string) (string, error) {
	if _, ok := r.names[key]; ok {
		return key, nil
	}
	best, found := "", false
	for prefix := range r.fallbacks {
		if strings.HasPrefix(key, prefix) && (!found || len(prefix) > len(best)) {
			best, found = prefix, true
		}
	}
	if !found {
		return "", fmt.Errorf("%s: %w", key, common.ErrAssetMissing)
	}
	fallback := r.fallbacks[best]
	if _, ok := r.names[fallback]; !ok {
		return "", fmt.Errorf("%s (fallback %s): %w", key, fallback, common.ErrAssetMissing)
	}
	r.reportFallback(key, fallback)
	return fallback, nil
}

// reportFallback logs every missing key once.
func (r *Resolver) reportFallback(key, fallback string) {
	r.mu.Lock()
	_, seen := r.misses[key]
	r.misses[key] = struct{}{}
	r.mu.Unlock()
	if !seen {
		r.log.Warn("Asset not found, using fallback", zap.String("asset", key), zap.String("fallback", fallback))
	}
}

func (r *Resolver) cached(key string) (image.Image, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.cache[key]
	return img, ok
}

// Image returns decoded image for key. SVG assets are rasterized at their
// intrinsic size.
func (r *Resolver) Image(key string) (image.Image, error) {
	resolved, err := r.resolve(key)
	if err != nil {
		return nil, err
	}
	if img, ok := r.cached(resolved); ok {
		return img, nil
	}
	name := r.names[resolved]
	data, err := r.Bytes(name)
	if err != nil {
		return nil, err
	}
	img, err := images.Decode(name, data)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// concurrent builds could have decoded it already, keep the first one
	if prev, ok := r.cache[resolved]; ok {
		return prev, nil
	}
	r.cache[resolved] = img
	return img, nil
}

// ImageSized is like Image but vector assets are rasterized to fit w x h
// box instead of being scaled later.
func (r *Resolver) ImageSized(key string, w, h int) (image.Image, error) {
	resolved, err := r.resolve(key)
	if err != nil {
		return nil, err
	}
	name := r.names[resolved]
	if !strings.EqualFold(path.Ext(name), ".svg") || w <= 0 || h <= 0 {
		return r.Image(resolved)
	}

	sk := sizedKey{key: resolved, w: w, h: h}
	r.mu.Lock()
	img, ok := r.sized[sk]
	r.mu.Unlock()
	if ok {
		return img, nil
	}

	data, err := r.Bytes(name)
	if err != nil {
		return nil, err
	}
	raster, err := images.RasterizeSVG(data, w, h)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.sized[sk]; ok {
		return prev, nil
	}
	r.sized[sk] = raster
	return raster, nil
}

// Load decodes external image file (player photos, charts). These change for
// every subject and are not cached.
func (r *Resolver) Load(file string) (image.Image, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", file, common.ErrAssetMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", file, err)
	}
	return images.Decode(file, data)
}
