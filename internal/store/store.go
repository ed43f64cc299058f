// Package store owns the client-side state. A single goroutine holds the
// State; every mutation and every read is queued to it, so reducers never run
// concurrently and need no locks.
package store

import (
	"sync"

	"go.uber.org/zap"
)

// State is the root of all client-side state.
type State struct {
	Posts         PostsState
	Users         UsersState
	Notifications NotificationsState
}

// InitialState returns empty collections with every request status idle.
func InitialState() State {
	return State{
		Posts:         newPostsState(),
		Users:         newUsersState(),
		Notifications: newNotificationsState(),
	}
}

// Clone deep-copies the state so it can leave the owner goroutine.
func (s State) Clone() State {
	return State{
		Posts:         s.Posts.clone(),
		Users:         s.Users.clone(),
		Notifications: s.Notifications.clone(),
	}
}

type command struct {
	action Action
	read   func(*State)
	done   chan struct{}
}

// Store serializes actions onto the goroutine that owns the State.
type Store struct {
	commands chan command
	quit     chan struct{}
	stopped  chan struct{}
	logger   *zap.Logger

	closeOnce sync.Once
	final     State
}

// New starts a store holding InitialState. A nil logger logs nothing.
func New(logger *zap.Logger) *Store {
	return NewWithState(InitialState(), logger)
}

// NewWithState starts a store holding initial.
func NewWithState(initial State, logger *zap.Logger) *Store {
	initial = initial.Clone()
	initial.Posts.generation = nextPostsGeneration()
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		commands: make(chan command),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
		logger:   logger,
	}
	go s.loop(initial)
	return s
}

func (s *Store) loop(state State) {
	defer close(s.stopped)
	for {
		select {
		case cmd := <-s.commands:
			if cmd.action != nil {
				reduce(&state, cmd.action)
				s.logger.Debug("action applied", zap.String("type", cmd.action.Type()))
			}
			if cmd.read != nil {
				cmd.read(&state)
			}
			close(cmd.done)
		case <-s.quit:
			s.final = state
			return
		}
	}
}

// exec runs cmd on the owner goroutine and waits for it. It reports false
// once the store is closed.
func (s *Store) exec(cmd command) bool {
	cmd.done = make(chan struct{})
	select {
	case s.commands <- cmd:
		<-cmd.done
		return true
	case <-s.stopped:
		return false
	}
}

// Dispatch applies action and returns once the new state is in place.
// Actions dispatched after Close are dropped.
func (s *Store) Dispatch(action Action) {
	if !s.exec(command{action: action}) {
		s.logger.Warn("action dropped, store closed", zap.String("type", action.Type()))
	}
}

// GetState returns a snapshot of the current state.
func (s *Store) GetState() State {
	var snapshot State
	if !s.exec(command{read: func(st *State) { snapshot = st.Clone() }}) {
		return s.final.Clone()
	}
	return snapshot
}

// View runs fn against the live state on the owner goroutine, without taking
// a snapshot. fn must not retain references into the state it is given.
func (s *Store) View(fn func(State)) {
	if !s.exec(command{read: func(st *State) { fn(*st) }}) {
		fn(s.final)
	}
}

// Select returns what selector computes from the live state. See View.
func Select[T any](s *Store, selector func(State) T) T {
	var out T
	s.View(func(st State) { out = selector(st) })
	return out
}

// Close stops the owner goroutine. It is safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.stopped
}
