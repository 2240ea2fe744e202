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


// Package subst fills %name% placeholders in markup templates.
//
// All values are validated before substitution: numbers must be finite
// and strings must not contain characters with a meaning in markup.
package subst

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMissing is returned if a template refers to an unknown name.
	ErrMissing = errors.New("no value for placeholder")

	// ErrInvalid is returned for values which cannot be substituted.
	ErrInvalid = errors.New("invalid placeholder value")
)

var placeholder = regexp.MustCompile(`%(\w+)%`)

// Vars holds the values for the placeholders of a template.
type Vars map[string]any

// Expand replaces every %name% in tmpl by the formatted value of
// vars[name].  Supported value types are integers, float64 and string.
func Expand(tmpl string, vars Vars) (string, error) {
	var firstErr error
	res := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		s, err := format(name, vars)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return s
	})
	if firstErr != nil {
		return "", firstErr
	}
	return res, nil
}

func format(name string, vars Vars) (string, error) {
	v, ok := vars[name]
	if !ok {
		return "", fmt.Errorf("%%%s%%: %w", name, ErrMissing)
	}
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%%%s%% = %g: %w", name, v, ErrInvalid)
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		if strings.ContainsAny(v, "\"'<>&") {
			return "", fmt.Errorf("%%%s%% = %q: %w", name, v, ErrInvalid)
		}
		return v, nil
	default:
		return "", fmt.Errorf("%%%s%%: unsupported type %T: %w", name, v, ErrInvalid)
	}
}
