package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retroenv/retrogolib/log"

	"github.com/nf/c8/chip8"
)

// Runner drives a Machine: once per frame it applies pending key events,
// executes TicksPerFrame instructions, ticks the timers and publishes the
// display to the frontend.
type Runner struct {
	cfg Config
	log *log.Logger
	fb  frameBuffer

	mu   sync.Mutex
	keys []keyEvent
	swap []byte // latest image passed to Swap, nil if none pending
}

type keyEvent struct {
	key     byte
	pressed bool
}

// NewRunner returns a Runner for cfg, which must be valid.
func NewRunner(cfg Config, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &Runner{cfg: cfg, log: logger}, nil
}

// Run loads rom into a new Machine and executes it until the frontend
// exits, ctx is cancelled or the frame limit is reached. Outside developer
// mode a fault stops the Machine and Run returns the chip8.HaltError.
//
// The frontend runs on the calling goroutine, which for the GUI must be
// the main one.
func (r *Runner) Run(ctx context.Context, rom []byte) error {
	m := chip8.New(chip8.WithRandom(r.cfg.Random))
	if err := m.Load(rom); err != nil {
		return err
	}

	r.log.Debug("Starting machine",
		log.Stringer("frontend", r.cfg.Frontend),
		log.Int("ticks", r.cfg.TicksPerFrame),
		log.Int("rate", r.cfg.FrameRate),
		log.Int("size", len(rom)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	execErr := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			execErr <- err
			cancel()
		}()
		err = r.exec(ctx, m)
	}()

	var err error
	switch r.cfg.Frontend {
	case GUI:
		err = r.runGUI(ctx)
	case Terminal:
		err = r.runTerminal(ctx)
	default:
		<-ctx.Done()
	}
	cancel()
	if e := <-execErr; e != nil {
		return e
	}
	return err
}

// Swap resets the Machine and loads rom into it at the start of the next
// frame. If Swap is called more than once before then, the last rom wins.
func (r *Runner) Swap(rom []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swap = rom
}

// KeyPress queues a change to the state of a CHIP-8 key.
func (r *Runner) KeyPress(key byte, pressed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, keyEvent{key, pressed})
}

func (r *Runner) pending() (rom []byte, keys []keyEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rom, keys = r.swap, r.keys
	r.swap, r.keys = nil, nil
	return
}

func (r *Runner) exec(ctx context.Context, m *chip8.Machine) error {
	t := time.NewTicker(time.Second / time.Duration(r.cfg.FrameRate))
	defer t.Stop()

	var (
		frames  int
		halted  bool
		display = m.Display()
	)
	r.fb.publish(&display, false)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}

		rom, keys := r.pending()
		if rom != nil {
			m.Reset()
			if err := m.Load(rom); err != nil {
				r.fault(err)
				halted = true
			} else {
				r.log.Info("Program swapped", log.Int("size", len(rom)))
				r.fb.setStatus("")
				halted = false
			}
		}
		for _, k := range keys {
			if err := m.KeyPress(int(k.key), k.pressed); err != nil {
				r.log.Warn("Ignoring key", log.Err(err))
			}
		}
		if !halted {
			err := r.frame(m)
			display = m.Display()
			r.fb.publish(&display, false)
			if err != nil {
				if !r.cfg.Dev {
					return fmt.Errorf("chip8: %w", err)
				}
				r.fault(err)
				halted = true
			}
		}

		// Frames spent halted count toward the limit.
		if frames++; r.cfg.Frames > 0 && frames >= r.cfg.Frames {
			r.log.Debug("Frame limit reached", log.Int("frames", frames))
			return nil
		}
	}
}

// frame executes one frame's worth of instructions and ticks the timers.
func (r *Runner) frame(m *chip8.Machine) error {
	for i := 0; i < r.cfg.TicksPerFrame; i++ {
		if err := m.Tick(); err != nil {
			return err
		}
	}
	if m.TickTimers() {
		display := m.Display()
		r.fb.publish(&display, true)
	}
	return nil
}

// fault reports an error that has stopped the Machine in developer mode.
// The Runner carries on waiting for Swap, so it is a warning. Logging
// would corrupt the terminal frontend, which shows the status line
// instead.
func (r *Runner) fault(err error) {
	r.fb.setStatus(err.Error())
	if r.cfg.Frontend != Terminal {
		r.log.Warn("Machine halted, waiting for new program", log.Err(err))
	}
}
