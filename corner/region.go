// seehuhn.de/go/rocon - rounded corners for HTML documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package corner

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RegionSpec describes the corners requested for one region.
type RegionSpec struct {
	// Radii holds the corner radii in pixels, indexed by [Type]
	// (top-left, top-right, bottom-right, bottom-left).
	Radii [4]int

	// Shape selects shape mode, where the corner assets draw the rounded
	// silhouette of the region itself.  Otherwise the assets cut the
	// corners out of a square box (counter-shape mode).
	Shape bool

	// Force disables the native border-radius path.
	Force bool
}

// IsZero reports whether all radii are zero.
func (s RegionSpec) IsZero() bool {
	return s.Radii == [4]int{}
}

// ErrRadiusShorthand is wrapped by all errors about malformed radius values.
var ErrRadiusShorthand = errors.New("malformed radius shorthand")

// ConfigError reports a region whose configuration cannot be used.
type ConfigError struct {
	Spec string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("radius %q: %v", e.Spec, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExpandRadius expands a shorthand radius specification into four explicit
// radii.  Values are separated by "-" or "_":
//
//	a       -> a, a, a, a
//	a-b     -> a, b, a, b
//	a-b-c   -> a, b, c, b
//	a-b-c-d -> a, b, c, d
//
// Negative values are clamped to zero.  Any other number of values is a
// configuration error.
func ExpandRadius(spec string) ([4]int, error) {
	tokens := strings.FieldsFunc(spec, func(r rune) bool {
		return r == '-' || r == '_'
	})

	vals := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return [4]int{}, &ConfigError{
				Spec: spec,
				Err:  fmt.Errorf("%w: value %q is not an integer", ErrRadiusShorthand, tok),
			}
		}
		vals[i] = max(v, 0)
	}

	switch len(vals) {
	case 1:
		return [4]int{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]int{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return [4]int{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return [4]int{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]int{}, &ConfigError{
		Spec: spec,
		Err:  fmt.Errorf("%w: got %d values, want 1 to 4", ErrRadiusShorthand, len(vals)),
	}
}

var classPattern = regexp.MustCompile(`^rc(\d+(?:[-_]\d+)*)((?:-[a-z]+)*)$`)

// ParseClass recognises the class name convention used to mark regions,
// for example "rc8", "rc4-8-shape" or "rc6-force".
//
// The boolean result is false if the class does not follow the convention.
// A class which follows the convention but carries a malformed radius list
// returns a [ConfigError].
func ParseClass(class string) (RegionSpec, bool, error) {
	m := classPattern.FindStringSubmatch(class)
	if m == nil {
		return RegionSpec{}, false, nil
	}

	radii, err := ExpandRadius(m[1])
	if err != nil {
		return RegionSpec{}, true, err
	}

	spec := RegionSpec{Radii: radii}
	for _, flag := range strings.Split(m[2], "-") {
		switch flag {
		case "shape":
			spec.Shape = true
		case "force":
			spec.Force = true
		}
	}
	return spec, true, nil
}
