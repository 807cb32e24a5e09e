package redis_client

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// NewRedisClient returns a client that has answered a PING.
func NewRedisClient(host string, port int) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		PoolSize: poolSize(runtime.NumCPU()),
	})

	if err := Ping(rc); err != nil {
		_ = rc.Close()
		return nil, err
	}
	return rc, nil
}

func Ping(rc *redis.Client) error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), pingTimeout)
	defer cancelFunc()
	if err := rc.Ping(ctx).Err(); err != nil {
		err = fmt.Errorf("redis connection failed: %w", err)
		zap.L().Error("redis_connect", zap.Error(err))
		return err
	}
	return nil
}

func poolSize(cpus int) int {
	return min(cpus*8, 512)
}
