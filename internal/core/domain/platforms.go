package domain

import (
	"slices"
	"strings"
)

// PlatformSet is a membership-only set of platforms.
// The zero value is an empty set ready to use with Add via NewPlatformSet.
type PlatformSet map[PlatformID]struct{}

// NewPlatformSet builds a set from the given platforms.
func NewPlatformSet(platforms ...PlatformID) PlatformSet {
	s := make(PlatformSet, len(platforms))
	for _, p := range platforms {
		s[p] = struct{}{}
	}
	return s
}

// ParsePlatformSet builds a set from platform names, skipping empty names.
func ParsePlatformSet(names ...string) PlatformSet {
	s := make(PlatformSet, len(names))
	for _, n := range names {
		if p := NewPlatformID(n); p.String() != "" {
			s[p] = struct{}{}
		}
	}
	return s
}

// Add inserts p into the set.
func (s PlatformSet) Add(p PlatformID) {
	s[p] = struct{}{}
}

// Contains reports whether p is a member.
func (s PlatformSet) Contains(p PlatformID) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of members.
func (s PlatformSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s PlatformSet) Clone() PlatformSet {
	c := make(PlatformSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Union returns a new set holding the members of both sets.
func (s PlatformSet) Union(other PlatformSet) PlatformSet {
	u := s.Clone()
	for p := range other {
		u[p] = struct{}{}
	}
	return u
}

// Without returns a new set holding the members of s that are not in other.
func (s PlatformSet) Without(other PlatformSet) PlatformSet {
	d := make(PlatformSet, len(s))
	for p := range s {
		if !other.Contains(p) {
			d[p] = struct{}{}
		}
	}
	return d
}

// SupersetOf reports whether every member of other is in s.
func (s PlatformSet) SupersetOf(other PlatformSet) bool {
	for p := range other {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same members.
func (s PlatformSet) Equal(other PlatformSet) bool {
	return len(s) == len(other) && s.SupersetOf(other)
}

// Sorted returns the members ordered by name.
func (s PlatformSet) Sorted() []PlatformID {
	out := make([]PlatformID, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b PlatformID) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// Names returns the sorted platform names.
func (s PlatformSet) Names() []string {
	sorted := s.Sorted()
	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.String()
	}
	return names
}

// String renders the set as a comma separated list.
func (s PlatformSet) String() string {
	return strings.Join(s.Names(), ",")
}
