package supervise

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State tracks where the supervised process is in its lifecycle.
type State int

const (
	NotStarted State = iota
	Starting
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "not started"
}

// ErrStartTimeout is returned when the process never shows up within the
// start window.
var ErrStartTimeout = errors.New("engine did not start in time")

// Probe reports whether the supervised process is currently alive.
type Probe interface {
	Alive() (bool, error)
}

// Config tunes the polling cadence. Zero values pick the defaults.
type Config struct {
	// StartPoll is the sample interval while waiting for the process to
	// appear.
	StartPoll time.Duration
	// StartTimeout bounds the wait for the first alive sample.
	StartTimeout time.Duration
	// RunPoll is the sample interval while the process runs. There is
	// no run timeout on purpose: a large batch takes as long as it
	// takes, and the engine owns its own exit.
	RunPoll time.Duration
	// OnSample, when non-nil, runs after every liveness sample.
	OnSample func(alive bool)
}

const (
	defaultStartPoll    = time.Second
	defaultStartTimeout = 30 * time.Second
	defaultRunPoll      = 2 * time.Second
)

// Supervisor launches an external process and observes it through a
// Probe. It never kills the process; the strongest thing it does is
// stop waiting.
type Supervisor struct {
	launch func() error
	probe  Probe
	cfg    Config

	now   func() time.Time
	sleep func(time.Duration)

	mu    sync.Mutex
	state State
}

func New(launch func() error, probe Probe, cfg Config) *Supervisor {
	if cfg.StartPoll <= 0 {
		cfg.StartPoll = defaultStartPoll
	}
	if cfg.StartTimeout <= 0 {
		cfg.StartTimeout = defaultStartTimeout
	}
	if cfg.RunPoll <= 0 {
		cfg.RunPoll = defaultRunPoll
	}
	return &Supervisor{
		launch: launch,
		probe:  probe,
		cfg:    cfg,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Start launches the process and blocks until the probe first sees it
// alive. A process that was already running counts as started on the
// first sample. Returns ErrStartTimeout when the start window elapses
// without a sighting; the state stays Starting since the process never
// reached Running.
func (s *Supervisor) Start(ctx context.Context) error {
	if err := s.launch(); err != nil {
		return err
	}
	s.setState(Starting)

	deadline := s.now().Add(s.cfg.StartTimeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		alive, err := s.probe.Alive()
		if err != nil {
			return err
		}
		s.sample(alive)
		if alive {
			s.setState(Running)
			return nil
		}
		if !s.now().Before(deadline) {
			return ErrStartTimeout
		}
		s.sleep(s.cfg.StartPoll)
	}
}

// WaitStopped blocks until the probe reports the process gone. A process
// that exits between samples is picked up on the next one.
func (s *Supervisor) WaitStopped(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		alive, err := s.probe.Alive()
		if err != nil {
			return err
		}
		s.sample(alive)
		if !alive {
			s.setState(Stopped)
			return nil
		}
		s.sleep(s.cfg.RunPoll)
	}
}

func (s *Supervisor) sample(alive bool) {
	if s.cfg.OnSample != nil {
		s.cfg.OnSample(alive)
	}
}
