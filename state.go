package arenabridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/arena-bridge/objcache"
)

// State holds everything that was process-global in older designs: the
// object identity cache and its configuration. Create one at startup, pass
// it to every operation, and Close it at shutdown.
//
// A State is not safe for concurrent use; see the package documentation.
type State struct {
	cache  *objcache.Cache
	log    *zap.Logger
	closed bool
	leaked int
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the State's logger. The default is the library logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// NewState creates a State with an empty identity cache.
func NewState(opts ...Option) *State {
	s := &State{
		cache: objcache.New(),
		log:   Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache.Subscribe(stateObserver{s})
	s.log.Debug("arenabridge: state created")
	return s
}

// Cache returns the State's object identity cache.
func (s *State) Cache() *objcache.Cache {
	return s.cache
}

// Close tears down the State. Wrappers still registered in the cache are
// not invalidated: their owners hold counted references, and forcing them
// dead here would leave those owners with dangling objects. They are
// counted instead, reported by Leaked, and logged. After Close the cache
// rejects Add and Get; Delete stays valid so late wrapper releases can
// still deregister.
func (s *State) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.leaked = s.cache.Close()
	if s.leaked > 0 {
		s.log.Warn("arenabridge: state closed with live wrappers",
			zap.Int("count", s.leaked))
	} else {
		s.log.Debug("arenabridge: state closed")
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *State) Closed() bool {
	return s.closed
}

// Leaked returns the number of wrappers that were still registered when
// the State was closed.
func (s *State) Leaked() int {
	return s.leaked
}

// stateObserver forwards cache mutations to the State's logger.
type stateObserver struct {
	s *State
}

func (o stateObserver) OnCacheEvent(e objcache.Event) {
	if !o.s.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	switch e.Type {
	case objcache.EventAdded:
		o.s.log.Debug("arenabridge: wrapper registered",
			zap.Uintptr("key", uintptr(e.Key)))
	case objcache.EventRemoved:
		o.s.log.Debug("arenabridge: wrapper deregistered",
			zap.Uintptr("key", uintptr(e.Key)))
	}
}
