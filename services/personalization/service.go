package personalization

import (
	"context"
	"sync"

	"coachly/models"

	"go.uber.org/zap"
)

// Resolved is the configuration state handed to consumers. Config is
// always fully populated, at minimum with the defaults, so no consumer
// ever has to nil-check it. Err carries the last remote read failure,
// if any, for optional diagnostic display; it never blocks rendering.
type Resolved struct {
	Config  models.AgencyConfig
	Loading bool
	Err     error
}

// Service is the live agency configuration context. It holds one
// resolved configuration per process, kept current with the remote
// source, and re-derives it whenever the remote document changes or the
// active identity changes. Construct with New, wire it explicitly, and
// tie Start/Stop to the application lifecycle.
type Service struct {
	source RemoteSource
	logger *zap.Logger

	mu        sync.Mutex
	state     Resolved
	uid       string
	started   bool
	gen       int    // subscription generation; stale callbacks are dropped
	cancelSub func() // teardown of the current subscription, nil when none

	baseCtx    context.Context
	baseCancel context.CancelFunc

	listeners    map[int]chan Resolved
	nextListener int
}

// New builds an unstarted configuration service. source may be nil, in
// which case the service serves defaults only (no remote capability).
func New(source RemoteSource, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		logger:    logger,
		state:     Resolved{Config: Defaults(), Loading: true},
		listeners: make(map[int]chan Resolved),
	}
}

// Start brings the service live. Without a remote capability or an
// authenticated identity it settles immediately on defaults.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.baseCtx, s.baseCancel = context.WithCancel(ctx)
	s.resubscribeLocked()
}

// Stop tears down the live subscription and all watchers. The last
// resolved configuration remains readable through Snapshot.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.teardownSubLocked()
	if s.baseCancel != nil {
		s.baseCancel()
	}
	for id, ch := range s.listeners {
		close(ch)
		delete(s.listeners, id)
	}
}

// SetIdentity records the active principal's uid ("" when signed out)
// and re-resolves: the previous subscription is torn down before the
// new one is established, so at most one is ever live.
func (s *Service) SetIdentity(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uid == uid {
		return
	}
	s.uid = uid
	if s.started {
		s.resubscribeLocked()
	}
}

// Snapshot returns the current resolved state.
func (s *Service) Snapshot() Resolved {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Config = s.state.Config.Clone()
	return out
}

// Watch registers a listener fed on every state change. The returned
// cancel deregisters it. Slow listeners miss intermediate states
// rather than blocking the resolver.
func (s *Service) Watch() (<-chan Resolved, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListener
	s.nextListener++
	ch := make(chan Resolved, 4)
	s.listeners[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.listeners[id]; ok {
			delete(s.listeners, id)
			close(c)
		}
	}
}

// resubscribeLocked tears down any current subscription and, when a
// remote capability is available, opens a new one. Caller holds s.mu.
func (s *Service) resubscribeLocked() {
	s.teardownSubLocked()
	s.gen++
	gen := s.gen

	if s.source == nil || s.uid == "" {
		s.setStateLocked(Resolved{Config: Defaults(), Loading: false})
		return
	}

	s.setStateLocked(Resolved{Config: Defaults(), Loading: true})

	s.cancelSub = s.source.Subscribe(s.baseCtx,
		func(patch *models.AgencyConfigPatch) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if gen != s.gen {
				return
			}
			s.setStateLocked(Resolved{Config: Merge(Defaults(), patch), Loading: false})
		},
		func(err error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if gen != s.gen {
				return
			}
			// Degraded but functional: defaults apply, the error is
			// surfaced to consumers and to the log, rendering goes on.
			s.logger.Error("agency configuration read failed, falling back to defaults", zap.Error(err))
			s.setStateLocked(Resolved{Config: Defaults(), Loading: false, Err: err})
		},
	)
}

func (s *Service) teardownSubLocked() {
	if s.cancelSub != nil {
		s.cancelSub()
		s.cancelSub = nil
	}
}

func (s *Service) setStateLocked(state Resolved) {
	s.state = state
	for _, ch := range s.listeners {
		out := state
		out.Config = state.Config.Clone()
		select {
		case ch <- out:
		default:
		}
	}
}
