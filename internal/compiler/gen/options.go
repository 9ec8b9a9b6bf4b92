package gen

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Selectors is a list of fully-qualified schema paths with a leading dot.
// "." matches everything, ".pkg" a package, ".pkg.Msg" a message with all
// its nested declarations and ".pkg.Msg.field" a single field. An empty list
// matches nothing.
type Selectors []string

// ParseSelectors splits a ':' separated list, as accepted by the plugin
// parameters. An empty string yields an empty list.
func ParseSelectors(s string) Selectors {
	if s == "" {
		return Selectors{}
	}
	return Selectors(strings.Split(s, ":"))
}

// Match reports whether name is selected.
func (s Selectors) Match(name protoreflect.FullName) bool {
	for _, sel := range s {
		if sel == "." {
			return true
		}
		prefix := strings.TrimPrefix(sel, ".")
		if string(name) == prefix || strings.HasPrefix(string(name), prefix+".") {
			return true
		}
	}
	return false
}

// Options are the per-compilation customizations.
type Options struct {
	// OrderedMaps selects map fields generated as btreemap.Map instead of a
	// builtin Go map.
	OrderedMaps Selectors
	// StructuredFormat selects messages and enums that get JSON methods.
	StructuredFormat Selectors
}

// DefaultOptions applies both customizations everywhere.
func DefaultOptions() Options {
	return Options{
		OrderedMaps:      Selectors{"."},
		StructuredFormat: Selectors{"."},
	}
}

// Summary counts what a generation produced.
type Summary struct {
	Files           int
	Messages        int
	Enums           int
	OrderedMaps     int
	HashMaps        int
	StructuredTypes int
}

// Add accumulates other into s.
func (s *Summary) Add(other Summary) {
	s.Files += other.Files
	s.Messages += other.Messages
	s.Enums += other.Enums
	s.OrderedMaps += other.OrderedMaps
	s.HashMaps += other.HashMaps
	s.StructuredTypes += other.StructuredTypes
}
