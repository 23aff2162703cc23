// main.go
//
// Entry point for winnow, the word-puzzle solving assistant.
// Subcommands:
//   serve  — run the HTTP API (sessions, practice mode, accounts).
//   assist — interactive terminal assistant against an unknown solution.
//   bench  — self-play every dictionary word and report the distribution.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/mhollowell/winnow/internal/autoplay"
	"github.com/mhollowell/winnow/internal/httpserver"
	"github.com/mhollowell/winnow/internal/store"
	"github.com/mhollowell/winnow/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var length int64 = 5
	dict := ""

	cmd := &cli.Command{
		Name:  "winnow",
		Usage: "narrow a word list to the puzzle solution from per-letter feedback",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "length",
				Value:       5,
				Aliases:     []string{"l"},
				Usage:       "word length",
				Destination: &length,
			},
			&cli.StringFlag{
				Name:        "dict",
				Value:       "",
				Aliases:     []string{"d"},
				Usage:       "dictionary file, one word per line (default: embedded list)",
				Destination: &dict,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runServe()
				},
			},
			{
				Name:  "assist",
				Usage: "interactive assistant: enter guesses and the puzzle's feedback",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					list, err := loadList(dict, int(length))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return runAssist(int(length), list)
				},
			},
			{
				Name:  "bench",
				Usage: "self-play every dictionary word with the frequency heuristic",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max",
						Value: 0,
						Usage: "cap on guesses per game, 0 for unbounded",
					},
					&cli.BoolFlag{
						Name:    "progress",
						Value:   true,
						Aliases: []string{"p"},
						Usage:   "show progress bar",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					list, err := loadList(dict, int(length))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					runBench(int(length), list, int(cmd.Int("max")), cmd.Bool("progress"))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// runServe wires the store, database, and router, then serves.
func runServe() error {
	var srv *httpserver.Server
	mem := store.NewMemoryStore()

	if dsn := getEnv("DB_PATH", "./data/winnow.db"); dsn != "none" {
		db, err := openDB(dsn)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		if err := migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		srv = httpserver.New(mem, db)
	} else {
		log.Warn().Msg("running without a database; history, practice and accounts disabled")
		srv = httpserver.New(mem, nil)
	}

	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Msg("starting winnow server")
	return srv.Start(":" + port)
}

// runBench plays every word and prints a guess-count distribution.
func runBench(length int, list []string, maxGuesses int, progress bool) {
	sum := autoplay.Run(length, list, maxGuesses, progress)

	counts := make([]int, 0, len(sum.Distribution))
	for n := range sum.Distribution {
		counts = append(counts, n)
	}
	sort.Ints(counts)

	fmt.Printf("games: %d  solved: %d", sum.Games, sum.Solved)
	if sum.Solved > 0 {
		fmt.Printf("  avg guesses: %.2f", float64(sum.TotalGuesses)/float64(sum.Solved))
	}
	fmt.Println()
	for _, n := range counts {
		fmt.Printf("%2d guesses: %d\n", n, sum.Distribution[n])
	}
	if len(sum.Failures) > 0 {
		fmt.Println("unsolved:", sum.Failures)
	}
}

// loadList resolves the word list from --dict or the default sources.
func loadList(dict string, length int) ([]string, error) {
	if dict != "" {
		return words.ReadFile(dict, length)
	}
	return words.Load(length)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
