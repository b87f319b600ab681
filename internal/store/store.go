// Package store is the console's client-side service store.
//
// It keeps the last known service list, pushes change notifications to
// subscribers and exposes every backend operation as a Bubble Tea command.
// Mutations follow one contract: they take the message to deliver on
// success plus pre-localized success and failure texts, and they always
// finish with a MutationResultMsg carrying the toast to show.
package store

import (
	"context"
	"sync"
	"time"

	"svcctl/internal/api"
	"svcctl/pkg/logging"

	"golang.org/x/sync/singleflight"
)

const storeSubsystem = "Store"

// DefaultTimeout bounds each backend call when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Options configures New.
type Options struct {
	Timeout time.Duration
}

// Store holds the service snapshot shared by all views.
type Store struct {
	backend api.Backend
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	services []api.Service
	loaded   bool
	selected string
	subs     map[int]chan struct{}
	nextSub  int

	checkMu     sync.Mutex
	checkCancel context.CancelFunc
	checkSeq    uint64

	refreshGroup singleflight.Group
	// generation counts successful mutations; published is the generation
	// of the current snapshot.
	generation uint64
	published  uint64
}

// New creates a store backed by backend. Call Close when done.
func New(backend api.Backend, opts Options) *Store {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		backend: backend,
		timeout: opts.Timeout,
		ctx:     ctx,
		cancel:  cancel,
		subs:    make(map[int]chan struct{}),
	}
}

// Close cancels in-flight requests and closes all subscriptions.
func (s *Store) Close() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

// Loaded reports whether the service list has been fetched at least once.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ListServices returns the services whose IsCommon flag equals isCommon,
// in backend order.
func (s *Store) ListServices(isCommon bool) []api.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.IsCommon == isCommon {
			out = append(out, svc)
		}
	}
	return out
}

// SelectService makes id the target of the selected-service mutations.
func (s *Store) SelectService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// Selected returns the selected service if it is still in the snapshot.
func (s *Store) Selected() (api.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == s.selected {
			return svc, true
		}
	}
	return api.Service{}, false
}

func (s *Store) selectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Subscribe returns a channel that receives a value whenever the service
// snapshot changes. Notifications coalesce; the channel is closed by the
// returned cancel func or by Close.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.subs[id]; ok {
			close(existing)
			delete(s.subs, id)
		}
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// reload fetches the service list and publishes it. Concurrent callers
// share one backend request.
func (s *Store) reload() error {
	_, err, _ := s.refreshGroup.Do("services", func() (interface{}, error) {
		s.mu.RLock()
		gen := s.generation
		s.mu.RUnlock()

		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		defer cancel()

		services, err := s.backend.ListServices(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if gen < s.published {
			s.mu.Unlock()
			logging.Debug(storeSubsystem, "Dropped service list older than the last mutation")
			return nil, nil
		}
		s.published = gen
		s.services = services
		s.loaded = true
		s.notifyLocked()
		s.mu.Unlock()

		logging.Debug(storeSubsystem, "Loaded %d services", len(services))
		return nil, nil
	})
	return err
}

// reloadAfterMutation refreshes without joining a fetch that may have
// started before the mutation landed.
func (s *Store) reloadAfterMutation() error {
	s.mu.Lock()
	s.generation++
	s.mu.Unlock()
	s.refreshGroup.Forget("services")
	return s.reload()
}

func (s *Store) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, s.timeout)
}
