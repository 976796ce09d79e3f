// Command c8 executes CHIP-8 programs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime/pprof"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/nf/c8/chip8"
	"github.com/nf/c8/host"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	def := host.DefaultConfig()
	var (
		uiFlag     = flag.String("ui", def.Frontend.String(), "frontend: gui, term or headless")
		ticksFlag  = flag.Int("ticks", def.TicksPerFrame, "instructions executed per frame")
		rateFlag   = flag.Int("rate", def.FrameRate, "frames per second")
		scaleFlag  = flag.Int("scale", def.Scale, "window pixels per display pixel")
		keysFlag   = flag.String("keys", "", "host keys for CHIP-8 keys 0 to F, as a 16 character `string`")
		seedFlag   = flag.Uint64("seed", 0, "seed for the random number generator (0 picks one)")
		framesFlag = flag.Int("frames", 0, "stop after `n` frames (0 runs until stopped)")
		devFlag    = flag.Bool("dev", false, "enable developer mode (reload the program when it changes)")

		debugFlag   = flag.Bool("debug", false, "enable debug logging")
		quietFlag   = flag.Bool("quiet", false, "log errors only")
		versionFlag = flag.Bool("version", false, "print version and exit")

		cpuProfileFlag = flag.String("cpu_profile", "", "write CPU profile to `file`")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program.ch8>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if *versionFlag {
		fmt.Printf("c8 version: %s\n", buildinfo.Version(version, commit, date))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
	}

	logger := newLogger(*debugFlag, *quietFlag)
	cfg, err := newConfig(*uiFlag, *keysFlag, *ticksFlag, *rateFlag, *scaleFlag, *framesFlag, *seedFlag, *devFlag)
	if err != nil {
		logger.Error("Invalid flags", log.Err(err))
		flag.Usage()
	}

	var cpuProfile io.Closer
	if prof := *cpuProfileFlag; prof != "" {
		f, err := os.Create(prof)
		if err != nil {
			logger.Fatal("Creating CPU profile file", log.Err(err))
		}
		pprof.StartCPUProfile(f)
		cpuProfile = f
	}

	err = run(app.Context(), logger, cfg, flag.Arg(0))

	if f := cpuProfile; f != nil {
		pprof.StopCPUProfile()
		f.Close()
	}

	if err != nil {
		logger.Fatal(err.Error())
	}
}

func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func newConfig(ui, keys string, ticks, rate, scale, frames int, seed uint64, dev bool) (host.Config, error) {
	cfg := host.DefaultConfig()
	f, err := host.ParseFrontend(ui)
	if err != nil {
		return cfg, err
	}
	if keys != "" {
		if cfg.Keymap, err = host.ParseKeymap(keys); err != nil {
			return cfg, err
		}
	}
	cfg.Frontend = f
	cfg.TicksPerFrame = ticks
	cfg.FrameRate = rate
	cfg.Scale = scale
	cfg.Frames = frames
	cfg.Dev = dev
	if seed != 0 {
		src := rand.New(rand.NewPCG(seed, seed))
		cfg.Random = chip8.RandomFunc(func() byte { return byte(src.Uint32()) })
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, logger *log.Logger, cfg host.Config, romFile string) error {
	rom, err := os.ReadFile(romFile)
	if err != nil {
		return err
	}
	r, err := host.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Dev {
		stop, err := watch(ctx, logger, r, romFile)
		if err != nil {
			return err
		}
		defer stop()
	}
	return r.Run(ctx, rom)
}
