package eventloop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsTasksInSubmissionOrder(t *testing.T) {
	loop := New(16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	var got []int
	done := make(chan struct{})

	for i := 0; i < 5; i++ {
		i := i
		loop.Submit(func() { got = append(got, i) })
	}
	loop.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "loop never drained")
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_StopsOnContextCancel(t *testing.T) {
	loop := New(16)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		require.Fail(t, "loop did not stop")
	}
}
