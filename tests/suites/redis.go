package suites

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bazarkua/polydebate/internal/cache"
)

type RedisContainer struct {
	testcontainers.Container
	Addr string
	Host string
	Port string
}

func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	const port = "6379/tcp"

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.4-alpine",
		ExposedPorts: []string{port},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start redis container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &RedisContainer{
		Container: container,
		Addr:      fmt.Sprintf("%s:%s", host, mappedPort.Port()),
		Host:      host,
		Port:      mappedPort.Port(),
	}, nil
}

// CacheTestSuite provisions a throwaway redis instance for integration
// tests of the cache layer. Tests running with -short skip it entirely.
type CacheTestSuite struct {
	suite.Suite
	Container *RedisContainer
	Client    *redis.Client
	Cache     cache.Cache[string]
}

func (s *CacheTestSuite) SetupSuite() {
	s.T().Helper()

	if testing.Short() {
		s.T().Skip("Skipping redis integration tests in short mode")
	}

	ctx := context.Background()
	container, err := NewRedisContainer(ctx)
	if err != nil {
		s.T().Fatalf("Failed to create redis container: %v", err)
	}
	s.Container = container

	s.Client = redis.NewClient(&redis.Options{Addr: container.Addr})
	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.Client.Ping(pingCtx).Err(); err != nil {
		s.T().Fatalf("Failed to ping redis: %v", err)
	}

	s.Cache = cache.NewRedisCache[string](&cache.RedisOptions{Addr: container.Addr})

	s.T().Cleanup(func() {
		s.cleanup()
	})
}

// TearDownTest flushes the keyspace so tests stay independent.
func (s *CacheTestSuite) TearDownTest() {
	s.T().Helper()
	if s.Client == nil {
		return
	}
	_ = s.Client.FlushAll(context.Background()).Err()
}

func (s *CacheTestSuite) cleanup() {
	ctx := context.Background()
	if s.Client != nil {
		_ = s.Client.Close()
	}
	if s.Container != nil {
		_ = s.Container.Terminate(ctx)
	}
}

// GetAddr exposes the container address for tests that need their own client.
func (s *CacheTestSuite) GetAddr() string {
	return s.Container.Addr
}

// KeyExists checks the raw keyspace directly.
func (s *CacheTestSuite) KeyExists(key string) bool {
	n, err := s.Client.Exists(context.Background(), key).Result()
	return err == nil && n > 0
}

// TTLOf returns the remaining TTL of a key.
func (s *CacheTestSuite) TTLOf(key string) time.Duration {
	d, err := s.Client.TTL(context.Background(), key).Result()
	if err != nil {
		return 0
	}
	return d
}
