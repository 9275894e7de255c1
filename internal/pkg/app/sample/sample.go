package sample

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/semaphore"

	"websample/internal/pkg/gen"
	"websample/internal/pkg/helper"
	"websample/internal/pkg/probe"
	"websample/internal/pkg/sink"
	"websample/internal/pkg/tunnel"
)

// Options are the per-run settings taken from the command line.
type Options struct {
	Count       int
	Concurrency int
	Timeout     time.Duration
	Mode        string // "words" or "ip"
	Handler     string // "print" or "browser"
	OutputFile  string
	ConfigFile  string
}

// Sampler probes random candidates with bounded concurrency until the
// sample budget is spent or the context is cancelled.
type Sampler struct {
	gen         gen.Generator
	prober      *probe.Prober
	handler     sink.Handler
	counter     *sink.Counter
	concurrency int
}

// NewSampler wires the pieces together directly. Used by tests and by
// FromOptions.
func NewSampler(g gen.Generator, p *probe.Prober, h sink.Handler, counter *sink.Counter, concurrency int) *Sampler {
	return &Sampler{
		gen:         g,
		prober:      p,
		handler:     h,
		counter:     counter,
		concurrency: concurrency,
	}
}

// FromOptions builds a fully configured sampler. The returned cleanup
// function releases resources (output file, tunnel) and must be called
// after Run.
func FromOptions(opts Options) (*Sampler, func(), error) {
	if opts.Count <= 0 {
		return nil, nil, fmt.Errorf("sample size must be positive, got %d", opts.Count)
	}
	if opts.Concurrency <= 0 {
		return nil, nil, fmt.Errorf("concurrency must be positive, got %d", opts.Concurrency)
	}
	if opts.Timeout <= 0 {
		return nil, nil, fmt.Errorf("timeout must be positive, got %s", opts.Timeout)
	}

	config, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	g, err := newGenerator(opts.Mode, config)
	if err != nil {
		return nil, nil, err
	}

	rotation := helper.NewRotation(config.UserAgents)
	prober := probe.NewProber(opts.Timeout, rotation.Next)

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if config.ProxyURL != "" {
		if err := prober.SetProxyURL(config.ProxyURL); err != nil {
			return nil, nil, err
		}
		log.Info("Routing probes through proxy", "proxy", config.ProxyURL)
	}

	if config.WGConfigFile != "" {
		t, err := tunnel.Open(config.WGConfigFile)
		if err != nil {
			return nil, nil, err
		}
		prober.SetDialContext(t.DialContext)
		cleanups = append(cleanups, t.Close)
		log.Info("Routing probes through WireGuard tunnel", "config", config.WGConfigFile)
	}

	handler, err := newHandler(opts, &cleanups)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return NewSampler(g, prober, handler, sink.NewCounter(opts.Count), opts.Concurrency), cleanup, nil
}

func newGenerator(mode string, config Config) (gen.Generator, error) {
	switch mode {
	case "words":
		words := gen.DefaultWords
		if config.WordlistFile != "" {
			loaded, err := gen.LoadWordList(config.WordlistFile)
			if err != nil {
				return nil, err
			}
			words = loaded
			log.Info("Loaded word list", "file", config.WordlistFile, "words", len(words))
		}
		return gen.NewWordGenerator(words, config.TLDs)
	case "ip":
		return gen.NewIPGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generator mode %q", mode)
	}
}

func newHandler(opts Options, cleanups *[]func()) (sink.Handler, error) {
	var handlers sink.Tee

	switch opts.Handler {
	case "print":
		handlers = append(handlers, sink.NewPrint(os.Stdout))
	case "browser":
		handlers = append(handlers, sink.Browser{})
	default:
		return nil, fmt.Errorf("unknown handler %q", opts.Handler)
	}

	if opts.OutputFile != "" {
		f, err := sink.NewFile(opts.OutputFile)
		if err != nil {
			return nil, err
		}
		*cleanups = append(*cleanups, func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close output file", "error", err)
			}
		})
		handlers = append(handlers, f)
	}

	if len(handlers) == 1 {
		return handlers[0], nil
	}
	return handlers, nil
}

// Run probes candidates until the counter completes or ctx is cancelled.
// Probe failures are never fatal; the generator simply supplies more
// candidates.
func (s *Sampler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.counter.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	sem := semaphore.NewWeighted(int64(s.concurrency))
	var wg sync.WaitGroup
	var found atomic.Int64

	started := 0
	for {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		candidate := s.gen.Next()
		started++

		wg.Add(1)
		go func(c gen.Candidate) {
			defer wg.Done()
			defer sem.Release(1)

			res := s.prober.Check(ctx, c.URL())
			if !res.Alive {
				log.Debug("Probe failed", "url", res.URL, "status", res.Status, "error", res.Err)
				return
			}

			if !s.counter.Take() {
				// Budget already spent by a racing probe.
				return
			}
			found.Add(1)

			log.Debug("Probe alive", "url", res.URL)
			if err := s.handler.Handle(res.URL); err != nil {
				log.Error("Handler failed", "url", res.URL, "error", err)
			}
		}(candidate)
	}

	// Let outstanding probes notice the cancellation and drain.
	wg.Wait()

	log.Info("Sampling finished", "probed", started, "found", found.Load())
	return nil
}
