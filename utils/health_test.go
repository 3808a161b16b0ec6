package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthMonitorCheck(t *testing.T) {
	up := true
	m := NewHealthMonitor(pingerFunc(func(context.Context) error {
		if up {
			return nil
		}
		return errors.New("connection refused")
	}), 0)

	assert.True(t, m.Check(context.Background()).Store)
	assert.True(t, m.Status().Store)

	up = false
	assert.False(t, m.Check(context.Background()).Store)
	assert.False(t, m.Status().Store)
	assert.False(t, m.Status().CheckedAt.IsZero())
}
