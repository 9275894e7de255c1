package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"websample/internal/pkg/app/sample"
)

func main() {
	var (
		count       = flag.Int("n", 20, "Number of alive URLs to collect")
		concurrency = flag.Int("c", 100, "Number of concurrent probes")
		timeout     = flag.Duration("t", 5*time.Second, "Per-request timeout")
		limit       = flag.Duration("limit", 0, "Total time budget (0 = unlimited)")
		mode        = flag.String("mode", "words", "Candidate generator: words or ip")
		handler     = flag.String("handler", "print", "Result handler: print or browser")
		outputFile  = flag.String("o", "", "Also append alive URLs to this file")
		configFile  = flag.String("i", "", "Optional YAML config file")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}

	s, cleanup, err := sample.FromOptions(sample.Options{
		Count:       *count,
		Concurrency: *concurrency,
		Timeout:     *timeout,
		Mode:        *mode,
		Handler:     *handler,
		OutputFile:  *outputFile,
		ConfigFile:  *configFile,
	})
	if err != nil {
		log.Fatal("Failed to set up sampler", "error", err)
	}
	defer cleanup()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *limit > 0 {
		ctx, cancel = context.WithTimeout(ctx, *limit)
		defer cancel()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, stopping...")
		cancel()
	}()

	log.Info("Starting sampler",
		"count", *count,
		"concurrency", *concurrency,
		"timeout", *timeout,
		"mode", *mode,
		"handler", *handler,
	)

	if err := s.Run(ctx); err != nil {
		log.Fatal("Sampler failed", "error", err)
	}
}

func showHelp() {
	fmt.Println("websample - retrieve a random sample of the Internet")
	fmt.Println()
	fmt.Println("Generates random candidate URLs, probes them over HTTP, and prints")
	fmt.Println("each alive URL (status 200, not a parked page) to standard output.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [options]\n", os.Args[0])
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -n int         Number of alive URLs to collect (default: 20)")
	fmt.Println("  -c int         Number of concurrent probes (default: 100)")
	fmt.Println("  -t duration    Per-request timeout (default: 5s)")
	fmt.Println("  -limit dur     Total time budget, e.g. 10m (default: unlimited)")
	fmt.Println("  -mode string   Candidate generator, words or ip (default: words)")
	fmt.Println("  -handler str   Result handler, print or browser (default: print)")
	fmt.Println("  -o string      Also append alive URLs to this file")
	fmt.Println("  -i string      Optional YAML config file")
	fmt.Println("  -h             Show this help message")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Printf("  %s -n 10 -c 200 -t 3s -mode ip\n", os.Args[0])
	fmt.Println()
}
