// Package registry holds many named fptree.Tree instances behind a
// concurrency-safe map, so a single long-lived process can mine several
// independent trees (one per tenant, dataset, or time window) without
// its own locking.
package registry

import (
	cmap "github.com/orcaman/concurrent-map"

	"fpgrowth/fptree"
)

// Registry maps names to trees. The zero value is not usable; create one
// with New.
type Registry struct {
	trees cmap.ConcurrentMap
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{trees: cmap.New()}
}

// Put stores t under name, replacing any tree already registered there.
func (r *Registry) Put(name string, t *fptree.Tree) {
	r.trees.Set(name, t)
}

// Get returns the tree registered under name, if any.
func (r *Registry) Get(name string) (*fptree.Tree, bool) {
	v, ok := r.trees.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*fptree.Tree), true
}

// Remove deletes the tree registered under name, if any.
func (r *Registry) Remove(name string) {
	r.trees.Remove(name)
}

// Names returns every currently registered name, in no particular order.
func (r *Registry) Names() []string {
	return r.trees.Keys()
}

// Len returns the number of registered trees.
func (r *Registry) Len() int {
	return r.trees.Count()
}
