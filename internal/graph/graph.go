// Package graph is the minimal stand-in for the external, multithreaded
// filter-graph runtime spec.md §1/§5 describe as out of scope: "a separate
// runtime [that] executes [the filter chain] in parallel... not part of
// the evaluator's concurrency contract."
//
// Grounded on original_source/delbrot/delbrot.c's go_AST, which calls
// mkvsynthSpawn()/mkvsynthJoin() around a `#ifndef DELBROT` guard — real
// frame scheduling lived entirely outside delbrot.c. This package gives
// that boundary a real, if trivial, shape: one goroutine per registered
// sink (a filter chain's terminal/output filter, e.g. writeRawFile or
// x264Encode), joined with a sync.WaitGroup.
package graph

import "sync"

// Sink is a terminal filter's unit of work: pulling frames through its
// upstream chain and writing them out. Sinks are opaque to the evaluator;
// only the graph runtime invokes them.
type Sink func() error

// Runtime collects sinks registered during evaluation and runs them in
// parallel when the script calls go() (spec.md §6.2, §5).
type Runtime struct {
	mu    sync.Mutex
	sinks []Sink

	wg   sync.WaitGroup
	errs []error
	errM sync.Mutex
}

// New creates an empty Runtime.
func New() *Runtime {
	return &Runtime{}
}

// Register adds a sink to be run on the next Spawn/Join. Filter built-ins
// that produce a graph terminus (writeRawFile, x264Encode) call this in
// place of producing a Clip.
func (r *Runtime) Register(sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
}

// Spawn launches one goroutine per registered sink.
func (r *Runtime) Spawn() {
	r.mu.Lock()
	sinks := r.sinks
	r.sinks = nil
	r.mu.Unlock()

	for _, sink := range sinks {
		r.wg.Add(1)
		go func(s Sink) {
			defer r.wg.Done()
			if err := s(); err != nil {
				r.errM.Lock()
				r.errs = append(r.errs, err)
				r.errM.Unlock()
			}
		}(sink)
	}
}

// Join waits for every spawned sink to finish and returns the first error
// encountered, if any.
func (r *Runtime) Join() error {
	r.wg.Wait()
	r.errM.Lock()
	defer r.errM.Unlock()
	if len(r.errs) > 0 {
		return r.errs[0]
	}
	return nil
}
