package domain

import (
	"maps"
	"slices"
)

// Options is the environment variable set threaded through a bootstrap pipeline.
// Steps receive it explicitly; nothing in the pipeline writes to the process environment.
type Options map[string]string

// Clone returns an independent copy. A nil receiver yields an empty, non-nil set.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

// Set assigns a value.
func (o Options) Set(name, value string) {
	o[name] = value
}

// Get returns a value and whether it was set.
func (o Options) Get(name string) (string, bool) {
	v, ok := o[name]
	return v, ok
}

// Merge copies every entry of other into o, overwriting existing names.
func (o Options) Merge(other map[string]string) {
	maps.Copy(o, other)
}

// Names returns the variable names in sorted order.
func (o Options) Names() []string {
	return slices.Sorted(maps.Keys(o))
}

// Environ renders the set as sorted KEY=VALUE pairs.
func (o Options) Environ() []string {
	names := o.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+"="+o[name])
	}
	return out
}
