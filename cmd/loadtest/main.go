package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/osmanp/streampack/internal/loadtest"
	"github.com/osmanp/streampack/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumRequests = 1000
	defaultMaxTeams    = 5
	defaultLimitRatio  = 0.3
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:4000", "Base URL of the service")
		numRequests = flag.Int("requests", defaultNumRequests, "Number of coverage requests to send")
		workers     = flag.Int("workers", runtime.NumCPU()*2, "Number of concurrent workers")
		maxTeams    = flag.Int("max-teams", defaultMaxTeams, "Max team names per generated request")
		limitRatio  = flag.Float64("limit-ratio", defaultLimitRatio, "Fraction of requests carrying a price limit")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &loadtest.Config{
		BaseURL:     *baseURL,
		NumRequests: *numRequests,
		Workers:     *workers,
		MaxTeams:    *maxTeams,
		LimitRatio:  *limitRatio,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := loadtest.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("load test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
