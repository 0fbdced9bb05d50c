package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	final := application.Final()
	logger.Info("game over", "score1", final.Score1, "score2", final.Score2, "winner", final.Winner)
	if final.Winner != 0 {
		fmt.Printf("Player %d wins! (%d:%d)\n", final.Winner, final.Score1, final.Score2)
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --frontend <term|window>  Where to play (default: term)")
	fmt.Fprintln(os.Stderr, "  --sfx <dir>               Directory with paddle.mp3, wall.mp3, score.mp3 (default: sfx)")
	fmt.Fprintln(os.Stderr, "  --mute                    Disable sound")
	fmt.Fprintln(os.Stderr, "  --legacy-input            Player 1 keys block player 2 keys in the same frame")
	fmt.Fprintln(os.Stderr, "  --debug                   Write logs to --log")
	fmt.Fprintln(os.Stderr, "  --log <path>              Log file (default: logs/pong.log)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment (also read from .env):")
	fmt.Fprintln(os.Stderr, "  PONG_FRONTEND, PONG_SFX_DIR, PONG_MUTE, PONG_DEBUG, PONG_LOG")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S  player 1    Up/Down  player 2    SPACE  start    ESC  quit")
}
