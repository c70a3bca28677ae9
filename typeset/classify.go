package typeset

import "unicode"

// Class is style class of a single character in stat text.
type Class int

const (
	ClassDefault Class = iota
	ClassNumeric
	ClassBullet
)

// Classify returns class of every rune in s. Digits and percent signs are
// numeric, so are decimal separators between two digits.
func Classify(s string) []Class {
	rs := []rune(s)
	out := make([]Class, len(rs))
	for i, r := range rs {
		switch {
		case r == Bullet:
			out[i] = ClassBullet
		case unicode.IsDigit(r) || r == '%':
			out[i] = ClassNumeric
		case (r == '.' || r == ',') && i > 0 && i < len(rs)-1 && unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1]):
			out[i] = ClassNumeric
		}
	}
	return out
}

// Accent reports whether characters of class are drawn with accent color.
func (c Class) Accent() bool {
	return c != ClassDefault
}
