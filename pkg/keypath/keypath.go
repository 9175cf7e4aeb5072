package keypath

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

var (
	// ErrNotSettable is returned when a write cannot reach or assign the
	// target location, e.g. an index outside slice bounds or a scalar in the
	// middle of the path.
	ErrNotSettable = errors.New("keypath: path is not settable")

	// ErrBadPath is returned for malformed path expressions.
	ErrBadPath = errors.New("keypath: malformed path")
)

// segment is one step of a parsed path: either a map key or a slice index.
type segment struct {
	key     string
	index   int
	isIndex bool
}

// parse splits a path into key and index segments. "a.b[0].c" yields the
// segments a, b, [0], c.
func parse(path string) ([]segment, error) {
	var segs []segment

	for _, part := range strings.Split(path, ".") {
		rest := part
		for {
			open := strings.IndexByte(rest, '[')
			if open < 0 {
				if rest != "" {
					segs = append(segs, segment{key: rest})
				}
				break
			}

			if open > 0 {
				segs = append(segs, segment{key: rest[:open]})
			}

			closing := strings.IndexByte(rest, ']')
			if closing < open {
				return nil, fmt.Errorf("%w: %q", ErrBadPath, path)
			}

			idx, err := cast.ToIntE(rest[open+1 : closing])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadPath, path)
			}
			segs = append(segs, segment{index: idx, isIndex: true})

			rest = rest[closing+1:]
		}
	}

	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	return segs, nil
}

// step resolves a single segment against a container.
func step(container any, seg segment) (any, bool) {
	if seg.isIndex {
		s, ok := container.([]any)
		if !ok || seg.index < 0 || seg.index >= len(s) {
			return nil, false
		}
		return s[seg.index], true
	}

	switch m := container.(type) {
	case map[string]any:
		v, ok := m[seg.key]
		return v, ok
	case map[any]any:
		v, ok := m[seg.key]
		return v, ok
	}
	return nil, false
}

// Get resolves a path against a container. The boolean reports whether the
// full path exists; absent paths are not an error.
func Get(path string, container any) (any, bool) {
	segs, err := parse(path)
	if err != nil {
		return nil, false
	}

	current := container
	for _, seg := range segs {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Set writes a value at a path inside a container, mutating it in place.
// Missing intermediate maps are created on the way; slice segments must
// already exist with the index in bounds.
func Set(path string, container any, value any) error {
	segs, err := parse(path)
	if err != nil {
		return err
	}

	current := container
	for _, seg := range segs[:len(segs)-1] {
		next, ok := step(current, seg)
		if ok && next != nil {
			current = next
			continue
		}

		if seg.isIndex {
			return fmt.Errorf("%w: missing index %d in %q", ErrNotSettable, seg.index, path)
		}

		created := make(map[string]any)
		if err := assign(current, seg, created); err != nil {
			return fmt.Errorf("%w: cannot create %q in %q", ErrNotSettable, seg.key, path)
		}
		current = created
	}

	last := segs[len(segs)-1]
	if err := assign(current, last, value); err != nil {
		return fmt.Errorf("%w: %q", ErrNotSettable, path)
	}
	return nil
}

// assign writes value into container at the given segment.
func assign(container any, seg segment, value any) error {
	if seg.isIndex {
		s, ok := container.([]any)
		if !ok || seg.index < 0 || seg.index >= len(s) {
			return ErrNotSettable
		}
		s[seg.index] = value
		return nil
	}

	switch m := container.(type) {
	case map[string]any:
		m[seg.key] = value
		return nil
	case map[any]any:
		m[seg.key] = value
		return nil
	}
	return ErrNotSettable
}

// IsKeyed reports whether a value is an associative container that structured
// validation can read attributes from.
func IsKeyed(container any) bool {
	if container == nil {
		return false
	}
	return reflect.TypeOf(container).Kind() == reflect.Map
}
