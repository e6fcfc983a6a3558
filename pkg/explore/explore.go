package explore

import (
	"time"

	"github.com/oliverdaisey/laurent/pkg/seed"
)

// Iter lazily enumerates the mutation class of a seed. Seeds are produced
// one at a time; two seeds whose clusters agree up to order and unit
// multiples are identified.
//
//	it, err := explore.New(s, explore.WithDepth(4))
//	for it.Next() {
//	    fmt.Println(it.Seed())
//	}
//	if err := it.Err(); err != nil { ... }
type Iter struct {
	opts    Options
	start   *seed.Seed
	started time.Time
	rank    int

	cur  *seed.Seed
	path []int
	err  error
	done bool

	found   []*seed.Seed
	initial bool

	// breadth-first state
	level      []*seed.Seed
	next       []*seed.Seed
	levelDepth int
	checkIdx   int
	childIdx   int

	// depth-first state
	stack     []dfsEntry
	expanding *dfsEntry
}

type dfsEntry struct {
	s     *seed.Seed
	depth int
}

// New builds an iterator over the mutation class of s.
func New(s *seed.Seed, opts ...Option) (*Iter, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	it := &Iter{
		opts:    o,
		start:   s,
		started: time.Now(),
		rank:    s.Rank(),
		found:   []*seed.Seed{s},
		level:   []*seed.Seed{s},
		stack:   []dfsEntry{{s: s, depth: 0}},
	}
	return it, nil
}

// Next advances to the next seed in the class, reporting whether one is
// available. After Next returns false, check Err.
func (it *Iter) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	if !it.initial {
		it.initial = true
		it.emitProgress(0)
		it.cur = it.start
		it.setPath(it.start)
		return true
	}

	var (
		s   *seed.Seed
		ok  bool
		err error
	)
	if it.opts.Algorithm == DFS {
		s, ok, err = it.advanceDFS()
	} else {
		s, ok, err = it.advanceBFS()
	}
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		it.done = true
		return false
	}
	it.cur = s
	it.setPath(s)
	return true
}

// Seed returns the seed produced by the last successful Next.
func (it *Iter) Seed() *seed.Seed { return it.cur }

// Path returns a reduced mutation sequence reaching the current seed.
// It is nil unless the iterator was built with WithPaths.
func (it *Iter) Path() []int { return it.path }

// Err returns the first error the traversal hit, if any.
func (it *Iter) Err() error { return it.err }

func (it *Iter) setPath(s *seed.Seed) {
	if it.opts.Paths {
		it.path = s.MutationSequence()
	}
}

func (it *Iter) emitProgress(depth int) {
	if it.opts.Progress != nil {
		it.opts.Progress(depth, len(it.found), time.Since(it.started))
	}
}

// seen reports whether an equivalent seed was already found.
func (it *Iter) seen(s *seed.Seed) bool {
	for _, f := range it.found {
		if f.IsEquivalent(s) {
			return true
		}
	}
	return false
}

func (it *Iter) advanceBFS() (*seed.Seed, bool, error) {
	for {
		if it.opts.Depth >= 0 && it.levelDepth+1 > it.opts.Depth {
			return nil, false, nil
		}
		if it.checkIdx >= len(it.level) {
			if len(it.next) == 0 {
				return nil, false, nil
			}
			it.levelDepth++
			it.emitProgress(it.levelDepth)
			it.level, it.next = it.next, nil
			it.checkIdx, it.childIdx = 0, 0
			continue
		}

		parent := it.level[it.checkIdx]
		last := parent.LastMutation()
		for it.childIdx < it.rank {
			i := it.childIdx
			it.childIdx++
			if i == last {
				continue
			}
			child, err := parent.Mutated(i)
			if err != nil {
				return nil, false, err
			}
			if it.seen(child) {
				continue
			}
			it.found = append(it.found, child)
			it.next = append(it.next, child)
			return child, true, nil
		}
		it.checkIdx++
		it.childIdx = 0
	}
}

func (it *Iter) advanceDFS() (*seed.Seed, bool, error) {
	for {
		if it.expanding == nil {
			if len(it.stack) == 0 {
				return nil, false, nil
			}
			e := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			if it.opts.Depth >= 0 && e.depth >= it.opts.Depth {
				continue
			}
			it.expanding = &e
			it.childIdx = 0
		}

		parent := it.expanding
		last := parent.s.LastMutation()
		for it.childIdx < it.rank {
			i := it.childIdx
			it.childIdx++
			if i == last {
				continue
			}
			child, err := parent.s.Mutated(i)
			if err != nil {
				return nil, false, err
			}
			if it.seen(child) {
				continue
			}
			it.found = append(it.found, child)
			it.stack = append(it.stack, dfsEntry{s: child, depth: parent.depth + 1})
			it.emitProgress(parent.depth + 1)
			return child, true, nil
		}
		it.expanding = nil
	}
}
