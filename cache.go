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

package rocon

import "strconv"

// Cache maps canonical keys to generated class names.
//
// Entries are never removed or changed: a class, once allocated, always
// stands for the same visual.  The number of entries is bounded by the
// number of distinct configurations in use, not by the number of regions.
type Cache struct {
	prefix  string
	classes map[string]string
	count   int
}

// NewCache returns an empty cache.  Class names are formed by appending a
// sequence number to prefix.
func NewCache(prefix string) *Cache {
	return &Cache{
		prefix:  prefix,
		classes: make(map[string]string),
	}
}

// Lookup returns the class stored for key.
func (c *Cache) Lookup(key string) (string, bool) {
	class, ok := c.classes[key]
	return class, ok
}

// Store allocates a class name for key.  If key is already present, the
// existing class is returned and no new class is allocated.
func (c *Cache) Store(key string) string {
	if class, ok := c.classes[key]; ok {
		return class
	}
	c.count++
	class := c.prefix + strconv.Itoa(c.count)
	c.classes[key] = class
	return class
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.classes)
}
