package tasks

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	bgTasks := New(slog.Default(), 3, 10)
	bgTasks.Run()
	taskRan := false
	bgTasks.Add(func() {
		taskRan = true
	})
	bgTasks.Shutdown(context.Background())
	assert.True(t, taskRan)
}

func TestShutdownWaitsForQueuedTasks(t *testing.T) {
	bgTasks := New(slog.Default(), 1, 10)
	bgTasks.Run()
	ran := 0
	for i := 0; i < 5; i++ {
		bgTasks.Add(func() { ran++ })
	}
	err := bgTasks.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, ran)
	assert.True(t, bgTasks.IsEmpty())
}
