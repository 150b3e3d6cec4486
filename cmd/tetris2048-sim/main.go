package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/tetris2048/game"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", ".env", "Optional dotenv file with TETRIS2048_* settings.")
	rounds := flag.Int("rounds", 10, "Number of rounds to autoplay.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 keeps the configured seed.")
	actionsPerFall := flag.Int("speed", 4, "Player actions per gravity step.")
	maxFrames := flag.Int("max-frames", 200000, "Frame limit per round.")
	level := flag.String("log-level", "warning", "Log level (debug, info, warning, error).")
	jsonLogs := flag.Bool("json", false, "Emit logs as JSON.")
	flag.Parse()

	log := logrus.New()
	if *jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(lvl)

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load %s: %v", *envFile, err)
	}

	cfg, err := game.ConfigFromEnv(game.DefaultConfig(), os.LookupEnv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rounds <= 0 || *actionsPerFall <= 0 {
		log.Fatal("rounds and speed must be positive")
	}

	session, err := game.NewSession(cfg, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)), log)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	scheduler := game.NewScheduler(session)
	scheduler.Register(&game.AutoplaySystem{Player: game.DefaultAutoplayer()})
	scheduler.Register(&game.InputSystem{})
	scheduler.Register(&game.GravitySystem{})
	scheduler.Register(&game.LockSystem{})
	scheduler.Register(&game.StabilizeSystem{})

	report := &Report{Config: cfg, Seed: cfg.Seed}
	dt := cfg.FallInterval.Seconds() / float64(*actionsPerFall)
	start := time.Now()

	log.WithField("rounds", *rounds).Info("starting autoplay")
	for i := 0; i < *rounds; i++ {
		report.Rounds = append(report.Rounds, playRound(session, scheduler, dt, *maxFrames))
		session.Push(game.ActionReset)
		scheduler.Once(0)
	}
	report.Elapsed = time.Since(start)
	report.Stats = session.Stats()
	report.Scheduler = scheduler.GetStats()

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

func playRound(session *game.Session, scheduler *game.Scheduler, dt float64, maxFrames int) RoundResult {
	result := RoundResult{ID: session.Round().String()}
	locks := session.Stats().Locks

	for result.Frames < maxFrames && session.State() != game.StateOver {
		scheduler.Once(dt)
		result.Frames++
	}

	board := session.Board()
	result.Score = board.Score()
	result.MaxTile = int(board.MaxTile())
	result.Locks = session.Stats().Locks - locks
	result.Finished = session.State() == game.StateOver
	result.Board = fmt.Sprint(board)
	return result
}
