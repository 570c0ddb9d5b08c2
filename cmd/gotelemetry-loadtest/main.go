package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	goTelemetry "github.com/MrEthical07/goTelemetry"
	"github.com/MrEthical07/goTelemetry/enrich"
	"github.com/MrEthical07/goTelemetry/redisstream"
)

func main() {
	var (
		events      = flag.Int("events", 500000, "number of events to dispatch")
		concurrency = flag.Int("concurrency", 64, "number of concurrent logging goroutines")
		buffer      = flag.Int("buffer", 4096, "dispatch queue size")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		stream      = flag.String("stream", "telemetry:loadtest", "redis stream key")
		discard     = flag.Bool("discard", false, "skip the redis backend and measure dispatch overhead only")
	)
	flag.Parse()

	if *events <= 0 || *concurrency <= 0 || *buffer <= 0 {
		fmt.Fprintln(os.Stderr, "events, concurrency, and buffer must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	cfg := goTelemetry.Config{
		Dispatch: goTelemetry.DispatchConfig{
			Enabled:    true,
			BufferSize: *buffer,
		},
		Redis: goTelemetry.RedisConfig{
			Enabled: !*discard,
			Stream:  *stream,
			MaxLen:  int64(*events),
		},
		Metrics: goTelemetry.MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: true,
		},
	}

	var backends []goTelemetry.Backend
	cleanup := func() {}

	if cfg.Redis.Enabled {
		addr := *redisAddr
		if addr == "" {
			addr = os.Getenv("REDIS_ADDR")
		}

		var client redis.UniversalClient
		if addr == "" {
			mr, err := miniredis.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
				os.Exit(1)
			}
			addr = mr.Addr()
			client = redis.NewUniversalClient(&redis.UniversalOptions{
				Addrs: []string{addr},
			})
			cleanup = func() {
				_ = client.Close()
				mr.Close()
			}
			fmt.Printf("using miniredis at %s\n", addr)
		} else {
			client = redis.NewUniversalClient(&redis.UniversalOptions{
				Addrs: []string{addr},
			})
			cleanup = func() { _ = client.Close() }
			fmt.Printf("using redis at %s\n", addr)
		}

		backends = append(backends, redisstream.NewBackendFromConfig(client, cfg.Redis))
	}
	defer cleanup()

	dispatcher, err := goTelemetry.New().
		WithConfig(cfg).
		WithBackends(backends...).
		WithEnricher(enrich.Chain(enrich.Instance(), enrich.Device())).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("dispatching %d events across %d goroutines...\n", *events, *concurrency)
	start := time.Now()

	var wg sync.WaitGroup
	perWorker := *events / *concurrency
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				dispatcher.Log(ctx, "loadtest", "event", goTelemetry.Attributes{
					"worker": fmt.Sprintf("%d", worker),
					"seq":    fmt.Sprintf("%d", i),
				})
			}
		}(w)
	}
	wg.Wait()
	logged := time.Since(start)

	dispatcher.Close()
	drained := time.Since(start)

	snapshot := dispatcher.MetricsSnapshot()
	delivered := snapshot.Counters[goTelemetry.MetricFanoutCompleted]

	fmt.Printf("log phase:   %v (%.0f events/sec caller-side)\n", logged, float64(*events)/logged.Seconds())
	fmt.Printf("drain phase: %v (%.0f fan-outs/sec end-to-end)\n", drained, float64(delivered)/drained.Seconds())
	fmt.Printf("fan-outs completed: %d\n", delivered)
	fmt.Printf("backend failures:   %d\n", snapshot.Counters[goTelemetry.MetricBackendFailures])
	fmt.Printf("dropped:            %d\n", dispatcher.Dropped())
}
