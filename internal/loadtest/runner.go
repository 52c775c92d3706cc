package loadtest

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osmanp/streampack/pkg/logger"
)

// Run executes the complete load test: health check, team discovery,
// concurrent coverage requests, per-response verification.
func Run(ctx context.Context, cfg *Config) error {
	runID := uuid.New().String()
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting streampack load test",
		logger.String("runID", runID),
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("requests", cfg.NumRequests),
		logger.Int("workers", cfg.Workers),
		logger.Float64("limitRatio", cfg.LimitRatio))

	client := newHTTPClient(cfg.Timeout)

	if err := checkServiceHealth(ctx, client, cfg); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	teams, err := fetchTeams(ctx, client, cfg)
	if err != nil {
		return fmt.Errorf("team discovery failed: %w", err)
	}
	if len(teams) == 0 {
		return fmt.Errorf("catalog has no teams to query")
	}
	log.Info(ctx, "discovered teams", logger.Int("count", len(teams)))

	requests := generateRequests(cfg, teams)
	stats.RequestsSent = len(requests)

	var ok, failed, combos, violations int64
	jobs := make(chan PackagesRequest)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				resp, err := execute(ctx, client, cfg, req)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if cfg.Verbose {
						log.Warn(ctx, "request failed", logger.Error(err))
					}
					continue
				}
				atomic.AddInt64(&ok, 1)
				atomic.AddInt64(&combos, int64(len(resp.StreamingPackages)))
				if errs := VerifyResponse(req, resp); len(errs) > 0 {
					atomic.AddInt64(&violations, int64(len(errs)))
					for _, verr := range errs {
						log.Error(ctx, "invariant violated", logger.Error(verr))
					}
				}
			}
		}()
	}

	for _, req := range requests {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- req:
		}
	}
	close(jobs)
	wg.Wait()

	stats.RequestsOK = int(ok)
	stats.RequestsFailed = int(failed)
	stats.CombosReturned = int(combos)
	stats.VerifyViolations = int(violations)
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "load test finished",
		logger.Int("ok", stats.RequestsOK),
		logger.Int("failed", stats.RequestsFailed),
		logger.Int("combinations", stats.CombosReturned),
		logger.Int("violations", stats.VerifyViolations),
		logger.String("duration", stats.Duration.String()))

	if stats.VerifyViolations > 0 {
		return fmt.Errorf("%d invariant violations detected", stats.VerifyViolations)
	}
	return nil
}

// checkServiceHealth verifies the service is up before the run starts.
func checkServiceHealth(ctx context.Context, client *HTTPClient, cfg *Config) error {
	resp, err := client.Get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// fetchTeams pulls the catalog's team list from /api/teams.
func fetchTeams(ctx context.Context, client *HTTPClient, cfg *Config) ([]string, error) {
	resp, err := client.Get(ctx, cfg.BaseURL+"/api/teams")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	var teams []string
	if err := readJSON(resp, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// execute sends one coverage request and decodes the response.
func execute(ctx context.Context, client *HTTPClient, cfg *Config, req PackagesRequest) (*PackagesResponse, error) {
	resp, err := client.Post(ctx, cfg.BaseURL+"/api/streaming-packages", req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	var body PackagesResponse
	if err := readJSON(resp, &body); err != nil {
		return nil, err
	}
	return &body, nil
}
