package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imtaco/live-viewer/internal/log"
)

func TestRunWithTimeout(t *testing.T) {
	logger := log.NewTest(t)

	ran := false
	assert.True(t, RunWithTimeout(logger, func(context.Context) { ran = true }, time.Second))
	assert.True(t, ran)

	block := make(chan struct{})
	defer close(block)
	assert.False(t, RunWithTimeout(logger, func(context.Context) { <-block }, 10*time.Millisecond))

	assert.True(t, RunWithTimeout(logger, func(context.Context) { panic("boom") }, time.Second))
}

func TestWaitGracefulShutdownOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	WaitGracefulShutdown(ctx, log.NewTest(t), func(context.Context) { called = true }, time.Second)
	assert.True(t, called)
}
