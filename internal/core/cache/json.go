package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// nullPayload load 返回 nil 时写入的占位值（负缓存）
var nullPayload = []byte("null")

// GetOrLoadJSON 读穿透 + JSON 编解码；缓存里解不开的旧数据删掉后直接回源
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	fetch := func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nullPayload, nil
		}
		return json.Marshal(v)
	}

	raw, err := c.GetOrLoad(ctx, key, ttl, fetch)
	if err != nil {
		return nil, err
	}
	if v, err := decodeJSON[T](raw); err == nil {
		return v, nil
	}

	_ = c.Del(ctx, key)
	if raw, err = fetch(ctx); err != nil {
		return nil, err
	}
	return decodeJSON[T](raw)
}

func decodeJSON[T any](raw []byte) (*T, error) {
	if bytes.Equal(raw, nullPayload) {
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode cached %T: %w", out, err)
	}
	return out, nil
}
