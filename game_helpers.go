package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const periodicRefresh = 200

// parseConfig loads the config file named by -config, then applies any flags
// that were set explicitly on the command line
func parseConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	var (
		configPath  = fs.String("config", "config.json", "path to a JSON config file")
		interactive = fs.Bool("interactive", false, "run the mouse-driven terminal front-end")
		width       = fs.Int("width", 0, "grid width in cells")
		height      = fs.Int("height", 0, "grid height in cells")
		seed        = fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Using default configuration (%s not found)", *configPath)
		config, err = utils.LoadConfig("")
	}
	if err != nil {
		return utils.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interactive":
			config.Interactive = *interactive
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "seed":
			config.Seed = *seed
		}
	})
	return config, config.Validate()
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Game, *rand.Rand) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := model.NewRand(seed)

	game := model.OfSize(config.Height, config.Width)
	if config.UseMemoryPool {
		game.SetPool(model.NewPositionPool())
	}
	game.ResetWithInterestingPatterns(config, rng)

	return game, rng
}

// updateGameState refreshes stats and history and returns the status label
func updateGameState(
	game *model.Game,
	history *model.History,
	generation int,
	frameDuration time.Duration,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := game.Population()
	stats.Update(generation, livingCells, game.Dimensions().Area(), frameDuration)

	// compare against earlier frames before this one joins the history
	isStagnant := history.IsStagnant(game)
	history.Record(game)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus writes the status block shown above the board
func displayGameStatus(w io.Writer, status string, stats *utils.Stats, generation, lastRestartGen int) {
	fmt.Fprintln(w, stats.Status(status))
	fmt.Fprintln(w, stats.Summary(time.Now()))
	if generation > lastRestartGen {
		fmt.Fprintf(w, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(w)
}

// checkRestartConditions determines if the game should restart. A zero
// stagnation threshold disables stagnation restarts.
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board in place
func restartGame(game *model.Game, history *model.History, config utils.Config, rng *rand.Rand) {
	game.ResetWithInterestingPatterns(config, rng)
	history.Reset()
}

// runHeadless renders the game to the renderer once per frame until ctx is
// done or the generation limit is reached. It returns the generations played.
func runHeadless(
	ctx context.Context,
	config utils.Config,
	game *model.Game,
	rng *rand.Rand,
	renderer *model.TerminalRenderer,
	clearScreen bool,
) int {
	var (
		history        model.History
		stats          = utils.NewStats()
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		if clearScreen {
			renderer.Clear()
		}

		livingCells, status, isStagnant := updateGameState(game, &history, generation, frameStart.Sub(lastFrameTime), stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(renderer.Out, status, stats, generation, lastRestartGen)
		renderer.Display(game)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			log.Printf("Reached maximum generations limit (%d)", config.MaxGenerations)
			return generation
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			log.Printf("Restarting due to %s (generation %d)", restartReason, generation)
			restartGame(game, &history, config, rng)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			game.InjectRandomLife(config.InjectionCount, rng)
		}

		game.Next()
		generation++

		select {
		case <-ctx.Done():
			log.Printf("Final stats: %d generations in %.1f seconds", generation, time.Since(stats.StartTime).Seconds())
			return generation
		case <-ticker.C:
		}
	}
}
