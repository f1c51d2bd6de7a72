package server

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/engine"
	"github.com/louisbranch/titans/internal/services/titans/scheduler"
	storagesqlite "github.com/louisbranch/titans/internal/services/titans/storage/sqlite"
	"github.com/louisbranch/titans/internal/services/titans/terminal"
)

// Config carries the runtime settings parsed by the command layer.
type Config struct {
	MainBudget   int
	TurnBudget   int
	TickInterval time.Duration
	// JournalPath is the sqlite file events are appended to. Empty keeps the
	// journal in memory.
	JournalPath string
	Locale      string
}

// Frontend presents a match until the player leaves or ctx ends.
type Frontend interface {
	Run(ctx context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithFrontend replaces the terminal UI.
func WithFrontend(build func(*engine.Engine) Frontend) Option {
	return func(s *Server) {
		if build != nil {
			s.newFrontend = build
		}
	}
}

// WithSchedulerOptions forwards options to the clock scheduler.
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(s *Server) {
		s.schedulerOpts = append(s.schedulerOpts, opts...)
	}
}

// Server hosts one titans match.
type Server struct {
	store     *storagesqlite.Store
	engine    *engine.Engine
	scheduler *scheduler.Scheduler
	frontend  Frontend

	newFrontend   func(*engine.Engine) Frontend
	schedulerOpts []scheduler.Option
	unsubscribe   func()
	closeOnce     sync.Once
}

// New opens the journal and wires the engine, scheduler and front end.
func New(cfg Config, opts ...Option) (*Server, error) {
	s := &Server{
		newFrontend: func(e *engine.Engine) Frontend {
			return terminal.New(e, cfg.Locale)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	store, err := storagesqlite.Open(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	eng, err := engine.New(
		engine.WithJournal(store),
		engine.WithClockBudgets(cfg.MainBudget, cfg.TurnBudget),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	sched, err := scheduler.New(eng, cfg.TickInterval, s.schedulerOpts...)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	s.store = store
	s.engine = eng
	s.scheduler = sched
	s.unsubscribe = eng.Subscribe(func(result engine.Result) {
		if result.Has(event.TypeTurnSwitched) || result.Has(event.TypeMatchReset) {
			sched.Restart()
		}
	})
	s.frontend = s.newFrontend(eng)
	return s, nil
}

// Engine returns the match engine.
func (s *Server) Engine() *engine.Engine {
	return s.engine
}

// Run ticks the clock and blocks on the front end. The scheduler stops
// before Run returns.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.scheduler.Run(ctx)
	}()

	err := s.frontend.Run(ctx)
	cancel()
	wg.Wait()

	if count, countErr := s.store.CountEvents(context.Background(), s.engine.MatchID()); countErr == nil {
		log.Printf("match %s journaled %d events", s.engine.MatchID(), count)
	}
	return err
}

// Close releases the journal.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		if s.store != nil {
			err = s.store.Close()
		}
	})
	return err
}

// Run builds a server from cfg and runs it until the front end exits.
func Run(ctx context.Context, cfg Config) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close journal: %v", err)
		}
	}()
	return s.Run(ctx)
}
