// Package tzcatalog holds the set of timezone identifiers the tool accepts.
// The catalog is built once at startup and only read afterwards.
package tzcatalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
)

// ErrInvalidTimezone is returned for identifiers outside the catalog.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Catalog is an immutable set of IANA timezone identifiers.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// New builds a catalog from names. Duplicates and empty strings are dropped.
func New(names []string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := c.index[n]; dup {
			continue
		}
		c.index[n] = struct{}{}
		c.names = append(c.names, n)
	}
	sort.Strings(c.names)
	return c
}

// IsValid reports whether name is in the catalog.
func (c *Catalog) IsValid(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Validate returns an error naming the value when it is not in the catalog.
func (c *Catalog) Validate(name string) error {
	if !c.IsValid(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidTimezone)
	}
	return nil
}

// Location validates name and loads its zone rules.
func (c *Catalog) Location(name string) (*time.Location, error) {
	if err := c.Validate(name); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %v", name, ErrInvalidTimezone, err)
	}
	return loc, nil
}

// Len returns the number of identifiers.
func (c *Catalog) Len() int { return len(c.names) }

// Names returns all identifiers in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Filter returns the identifiers containing substr, case-insensitively.
func (c *Catalog) Filter(substr string) []string {
	needle := strings.ToLower(substr)
	var out []string
	for _, n := range c.names {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	return out
}

// zoneinfoDirs are the usual system locations of the compiled tz database.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

// Load builds the catalog from the host tz database, falling back to the
// built-in zone list when none is installed. $ZONEINFO is honoured when it
// names a directory.
func Load() (*Catalog, error) {
	dirs := zoneinfoDirs
	if z := os.Getenv("ZONEINFO"); z != "" {
		dirs = append([]string{z}, dirs...)
	}
	for _, dir := range dirs {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		names, err := Scan(os.DirFS(dir))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		if len(names) > 0 {
			return New(append(names, "UTC")), nil
		}
	}
	return New(builtinZones), nil
}

// skipped holds tz database entries that are compiled zones but not
// identifiers a user should pick.
var skipped = map[string]bool{
	"posix":      true,
	"right":      true,
	"posixrules": true,
	"localtime":  true,
	"Factory":    true,
}

// Scan walks a compiled tz database tree and returns the identifiers of all
// TZif files in it.
func Scan(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if skipped[p] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || strings.Contains(path.Base(p), ".") {
			return nil
		}
		if isTZif(fsys, p) {
			names = append(names, p)
		}
		return nil
	})
	return names, err
}

var tzifMagic = []byte("TZif")

// isTZif reports whether name starts with the TZif magic. Unreadable
// entries, such as dangling links, are not zones.
func isTZif(fsys fs.FS, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return bytes.Equal(head, tzifMagic)
}
