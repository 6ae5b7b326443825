// Package demo holds the sample items shown when no item file is given.
package demo

import "tsuika/internal/drawable"

// Bar is a small flat record
type Bar struct {
	c int
	d int
}

// Foo nests a Bar
type Foo struct {
	a   int
	bar Bar
}

// Items returns the demo registry contents in display order
func Items() []drawable.Drawable {
	return []drawable.Drawable{
		drawable.Derive(&Bar{c: 69, d: 2131283}),
		drawable.Derive(&Foo{a: 114514, bar: Bar{c: 69, d: 420}}),
	}
}

// Registry returns a registry populated with Items
func Registry() *drawable.Registry {
	reg := drawable.NewRegistry()
	for _, item := range Items() {
		reg.Add(item)
	}
	return reg
}
