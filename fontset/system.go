package fontset

import (
	"errors"
	"sync"
)

// Errors returned when exclusive access to the font set cannot be granted.
var (
	// ErrNotLoaded means the font set has not finished loading.
	ErrNotLoaded = errors.New("font set not loaded yet")
	// ErrBusy means another consumer currently holds exclusive access.
	ErrBusy = errors.New("font set is in use")
)

// System owns a Set and hands it out to at most one consumer at a time.
// Loading may happen on a background worker; consumers either poll with
// TryExclusive or block with Exclusive / WaitLoaded.
type System struct {
	mu      sync.Mutex
	cond    *sync.Cond
	set     *Set
	loading bool
	busy    bool
}

// NewSystem returns a System around an already loaded set.
func NewSystem(set *Set) *System {
	sys := &System{set: set}
	sys.cond = sync.NewCond(&sys.mu)
	return sys
}

// Start creates a System whose set is produced by load, executed through
// run. Pass Background to load on a fresh goroutine, or CurrentThread to
// load synchronously before Start returns.
func Start(load func() *Set, run func(func())) *System {
	sys := &System{loading: true}
	sys.cond = sync.NewCond(&sys.mu)
	run(func() {
		set := load()
		sys.mu.Lock()
		sys.set = set
		sys.loading = false
		sys.cond.Broadcast()
		sys.mu.Unlock()
	})
	return sys
}

// Background runs the loader on its own goroutine.
func Background(f func()) {
	go f()
}

// CurrentThread runs the loader synchronously.
func CurrentThread(f func()) {
	f()
}

// Loaded reports whether the font set is available.
func (sys *System) Loaded() bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return sys.set != nil
}

// WaitLoaded blocks until loading has finished and reports whether a set is
// available. It returns false if loading completed without producing a set.
func (sys *System) WaitLoaded() bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	for sys.set == nil && sys.loading {
		sys.cond.Wait()
	}
	return sys.set != nil
}

// TryExclusive acquires exclusive access without blocking. It fails with
// ErrNotLoaded while the set is unavailable and with ErrBusy while another
// consumer holds access.
func (sys *System) TryExclusive() (*Exclusive, error) {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	if sys.set == nil {
		return nil, ErrNotLoaded
	}
	if sys.busy {
		return nil, ErrBusy
	}
	sys.busy = true
	return &Exclusive{sys: sys}, nil
}

// Exclusive blocks until exclusive access can be granted. It fails with
// ErrNotLoaded only if loading finishes without producing a set.
func (sys *System) Exclusive() (*Exclusive, error) {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	for sys.busy || (sys.set == nil && sys.loading) {
		sys.cond.Wait()
	}
	if sys.set == nil {
		return nil, ErrNotLoaded
	}
	sys.busy = true
	return &Exclusive{sys: sys}, nil
}

// Exclusive is a handle on the font set. Release it when done; holding it
// blocks every other consumer.
type Exclusive struct {
	sys      *System
	released bool
}

// Set returns the guarded font set.
func (x *Exclusive) Set() *Set {
	return x.sys.set
}

// Release gives up exclusive access and wakes waiting consumers. Releasing
// twice is a no-op.
func (x *Exclusive) Release() {
	if x.released {
		return
	}
	x.released = true
	x.sys.mu.Lock()
	x.sys.busy = false
	x.sys.cond.Broadcast()
	x.sys.mu.Unlock()
}
