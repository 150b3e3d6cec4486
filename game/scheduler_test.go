package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetris2048/game"
	"github.com/stretchr/testify/assert"
)

type CountingSystem struct {
	ExecuteCount int
	LastDelta    float64
	order        *[]string
}

func (s *CountingSystem) Execute(frame *game.UpdateFrame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, "counting")
	}
}

type ScoreWatchSystem struct {
	Seen  []int
	order *[]string
}

func (s *ScoreWatchSystem) Execute(frame *game.UpdateFrame) {
	s.Seen = append(s.Seen, frame.Session.Score())
	if s.order != nil {
		*s.order = append(*s.order, "watch")
	}
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		session, _ := newSession(t, game.DefaultConfig())
		scheduler := game.NewScheduler(session)

		var order []string
		counting := &CountingSystem{order: &order}
		watch := &ScoreWatchSystem{order: &order}
		scheduler.Register(counting)
		scheduler.Register(watch)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, 2, counting.ExecuteCount)
		assert.Equal(t, 0.25, counting.LastDelta)
		assert.Equal(t, []int{0, 0}, watch.Seen)
		assert.Equal(t, []string{"counting", "watch", "counting", "watch"}, order)
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		session, _ := newSession(t, game.DefaultConfig())
		scheduler := game.NewScheduler(session)

		var order []string
		scheduler.Register(deferSystem(func(frame *game.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "first")
		}))
		scheduler.Register(deferSystem(func(*game.UpdateFrame) {
			order = append(order, "second")
		}))

		scheduler.Once(0)
		assert.Equal(t, []string{"first", "second", "deferred"}, order)
	})

	t.Run("stats", func(t *testing.T) {
		session, _ := newSession(t, game.DefaultConfig())
		scheduler := game.NewDefaultScheduler(session)

		for range 3 {
			scheduler.Once(0.01)
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 4, stats.SystemCount)
		assert.Equal(t, int64(12), stats.TotalExecutions)

		names := make([]string, 0, len(stats.Systems))
		for _, s := range stats.Systems {
			names = append(names, s.Name)
			assert.Equal(t, int64(3), s.ExecutionCount)
			assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
			assert.Equal(t, s.TotalDuration/3, s.AvgDuration)
		}
		assert.Equal(t, []string{"InputSystem", "GravitySystem", "LockSystem", "StabilizeSystem"}, names)
	})

	t.Run("run until cancelled", func(t *testing.T) {
		session, _ := newSession(t, game.DefaultConfig())
		scheduler := game.NewScheduler(session)
		counting := &CountingSystem{}
		scheduler.Register(counting)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		scheduler.Run(ctx, 5*time.Millisecond)

		assert.Greater(t, counting.ExecuteCount, 0)
	})
}

type deferSystem func(frame *game.UpdateFrame)

func (f deferSystem) Execute(frame *game.UpdateFrame) { f(frame) }
