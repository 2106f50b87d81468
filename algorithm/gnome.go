package algorithm

import "github.com/hupe1980/sorttrace/core"

// Gnome walks the array with a single position, swapping backward whenever
// the pair behind it is out of order.
type Gnome struct {
	BaseAlgorithm
}

// NewGnome creates a gnome sort instance.
func NewGnome() *Gnome {
	return &Gnome{NewBaseAlgorithm("gnome", "Walks the array, stepping back after each out-of-order swap.")}
}

// Run sorts the container in place.
func (a *Gnome) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()

	pos := 0
	for pos < n {
		if pos == 0 || o.compare(pos-1, pos) <= 0 {
			pos++
		} else {
			o.swap(pos-1, pos)
			pos--
		}
		if o.err != nil {
			return o.err
		}
	}
	o.markAllSorted()
	return o.err
}
