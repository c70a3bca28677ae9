package common

import "errors"

// Error kinds produced while building panels. Asset related conditions are
// normally recovered inside a build, geometry and compositing ones abort the
// panel being built.
var (
	ErrAssetMissing      = errors.New("asset missing")
	ErrInvalidAsset      = errors.New("invalid asset")
	ErrUnsupportedAspect = errors.New("unsupported aspect")
	ErrSizeMismatch      = errors.New("compositing size mismatch")
	ErrInvalidInput      = errors.New("invalid panel input")
)

// Fatal reports whether err must abort current panel build.
func Fatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrAssetMissing):
		return false
	}
	return true
}
