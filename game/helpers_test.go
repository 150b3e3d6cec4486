package game_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tetris2048/game"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// towerConfig spawns only all-2 I pieces on a 4x4 board. The I piece always
// spawns in column 1, so the second lock pokes above the ceiling.
func towerConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Height = 4
	cfg.Width = 4
	cfg.Shapes = "I"
	cfg.FourChance = 0
	cfg.FallInterval = 100 * time.Millisecond
	return cfg
}

func newSession(t *testing.T, cfg game.Config) (*game.Session, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	session, err := game.NewSession(cfg, rand.New(rand.NewPCG(cfg.Seed, 99)), log)
	require.NoError(t, err)
	return session, hook
}

func messages(hook *test.Hook) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		out = append(out, e.Message)
	}
	return out
}
