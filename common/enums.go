// Package common keeps enumerations and error kinds shared by configuration,
// layout tables and the rendering packages. It has no dependencies of its own
// so any package may import it.
package common

//go:generate go tool go-enum --marshal --names --values

// Publication category, first segment of every output path.
// ENUM(match, mvp, draft, ranking)
type Category int

// Type of panel, selects typed input and layout of a theme.
// ENUM(cover, mvp, stats, counter, ranking, story)
type PanelKind int

// Kind of drawing operation in a layout table.
// ENUM(fill, image, icon, circle, chart, gradient, text, stats, title, qrcode)
type ElementKind int

// Direction of gradient overlay.
// ENUM(edge, top, bottom, box)
type GradientKind int

// How an image is fitted into element box.
// ENUM(fill, width, height, stretch)
type FitMode int

// Orientation required from an image.
// ENUM(any, landscape, portrait, square)
type Orientation int

// PNG compression requested for output panels.
// ENUM(default, none, fast, best)
type Compression int

// NeedsImage reports whether element consumes raster input.
func (k ElementKind) NeedsImage() bool {
	switch k {
	case ElementKindImage, ElementKindIcon, ElementKindCircle, ElementKindChart:
		return true
	}
	return false
}

// NeedsText reports whether element consumes text input.
func (k ElementKind) NeedsText() bool {
	switch k {
	case ElementKindText, ElementKindStats, ElementKindTitle, ElementKindQrcode:
		return true
	}
	return false
}

// Accepts reports whether image of w x h pixels satisfies orientation.
func (o Orientation) Accepts(w, h int) bool {
	switch o {
	case OrientationLandscape:
		return w > h
	case OrientationPortrait:
		return h > w
	case OrientationSquare:
		return w == h
	default:
		return true
	}
}
