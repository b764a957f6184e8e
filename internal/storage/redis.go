package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

// Redis stores each key as a plain redis string without expiry.
type Redis struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{
		client: client,
	}
}

func (r *Redis) Load(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return nil, false, ErrEmptyKey
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get [%s]: %w", key, err)
	}

	return data, true, nil
}

func (r *Redis) Save(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return ErrEmptyKey
	}

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}
