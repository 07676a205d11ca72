package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfit-app/vfit/internal"
	"github.com/vfit-app/vfit/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort        = 9000
	metricsServerPort = 9001
	serverHost        = "localhost"
	rateLimitPerMin   = 2
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite, err error) {
	suite := &Suite{
		teardown: make([]func(), 0),
	}
	defer func() {
		if err != nil {
			suite.cleanup()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	redisPort, err := suite.redisSetup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}

	cfg := getTestConfig(redisPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	if err := waitForServer(ctx, serverEndpoint+"/version"); err != nil {
		return nil, err
	}

	return suite, nil
}

func (s *Suite) cleanup() {
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort string) *config.Config {
	return &config.Config{
		Environment:           "development",
		Host:                  serverHost,
		Port:                  serverPort,
		PrometheusMetricsHost: serverHost,
		PrometheusMetricsPort: strconv.Itoa(metricsServerPort),
		LogLevel:              "debug",
		WelcomeTimeout:        config.Duration{Duration: time.Second},
		ScheduleCSVPath:       "../schedule.csv",
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		RateLimitPerMin:       rateLimitPerMin,
		RateLimitEnabled:      true,
		CorsAllowedOrigins:    []string{"*"},
	}
}

func (s *Suite) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "vfit-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		_ = redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")

	// the container is up before redis accepts connections
	if err := s.dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("localhost:%s", redisPort),
		})
		defer rdb.Close()
		return rdb.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("wait for redis: %w", err)
	}

	return redisPort, nil
}

func waitForServer(ctx context.Context, url string) error {
	client := &http.Client{Timeout: time.Second}
	defer client.CloseIdleConnections()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if resp, err := client.Do(req); err == nil {
			_ = resp.Body.Close()
			return nil
		}

		select {
		case <-ticker.C:
		case <-timeout:
			return fmt.Errorf("server at %s not ready", url)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
