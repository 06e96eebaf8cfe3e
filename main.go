// main.go
//
// wordle-solver command line interface.
// Responsibilities:
//   - Flag parsing, including repeatable -guess/-answer pairs that resume an
//     in-progress game.
//   - Configuration resolution: defaults, optional YAML file, environment
//     (.env honored), then flags on top.
//   - Dictionary loading: an explicit file or the embedded word list.
//   - Dispatch to the terminal adapter: interactive solve loop, one-shot
//     suggest/remain, or self-play simulation (-target / -daily).

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nadock/wordle-solver/internal/config"
	"github.com/Nadock/wordle-solver/internal/feedback"
	"github.com/Nadock/wordle-solver/internal/solver"
	"github.com/Nadock/wordle-solver/internal/term"
	"github.com/Nadock/wordle-solver/internal/words"
)

const (
	program           = "wordle-solver"
	version           = "2.1.0"
	defaultConfigFile = "wordle-solver.yaml"
)

// stringList collects repeated flag values in order.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	_ = godotenv.Load()

	var guesses, answers stringList
	var (
		hardMode  = flag.Bool("hard-mode", false, "restrict guesses to words the feedback still allows")
		suggest   = flag.Bool("suggest", false, "print one suggested guess and exit")
		remain    = flag.Bool("remain", false, "print the remaining candidate words and exit")
		target    = flag.String("target", "", "self-play against this answer and exit")
		daily     = flag.Bool("daily", false, "self-play against the daily word and exit")
		wordsFile = flag.String("words", "", "path to a word list file (default: embedded list)")
		cfgFile   = flag.String("config", "", "path to a YAML config file (default: "+defaultConfigFile+" if present)")
		start     = flag.String("start", "", "opening guess policy: fixed, random or manual")
		opener    = flag.String("opener", "", "opening word for the fixed policy")
		heuristic = flag.String("heuristic", "", "ranking heuristic: pairwise or unique")
		showAll   = flag.Bool("show-all", false, "list every remaining candidate after each round")
		noColor   = flag.Bool("no-color", false, "disable colored output")
		printVer  = flag.Bool("version", false, "print the version and exit")
	)
	flag.Var(&guesses, "guess", "a word already guessed; repeatable, paired with -answer in order")
	flag.Var(&answers, "answer", "feedback for a guess as five Y/I/N symbols; repeatable")
	flag.Parse()

	if *printVer {
		fmt.Printf("%s v%s\n", program, version)
		return
	}

	cfg := loadConfig(*cfgFile)

	// Flags override file and environment values, but only when given.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["hard-mode"] {
		cfg.HardMode = *hardMode
	}
	if set["words"] {
		cfg.WordsFile = *wordsFile
	}
	if set["start"] {
		cfg.Opener = *start
	}
	if set["opener"] {
		cfg.OpenerWord = *opener
	}
	if set["heuristic"] {
		cfg.Heuristic = *heuristic
	}
	if set["show-all"] {
		cfg.ShowAll = *showAll
	}
	if set["no-color"] {
		cfg.NoColor = *noColor
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	modes := 0
	for _, m := range []bool{*suggest, *remain, *target != "" || *daily} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		log.Fatal().Msg("-suggest, -remain and -target/-daily are mutually exclusive")
	}

	dict, err := loadDictionary(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("words", dict.Len()).Str("source", dictSource(cfg.WordsFile)).Msg("word list loaded")

	history, err := pairHistory(guesses, answers)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -guess/-answer history")
	}

	// Both parse; cfg.Validate checked them.
	heur, _ := solver.ParseHeuristic(cfg.Heuristic)
	open, _ := solver.ParseOpener(cfg.Opener)

	interactive := term.Interactive(os.Stdout)
	opts := solver.Options{
		HardMode:   cfg.HardMode,
		Heuristic:  heur,
		Opener:     open,
		OpenerWord: cfg.OpenerWord,
	}
	if interactive && !*remain {
		opts.Progress = term.RankProgress(os.Stderr)
	}

	session, err := solver.Resume(dict, history, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resume game history")
	}

	r := term.New(session, dict, term.Options{
		Interactive: interactive,
		ShowAll:     cfg.ShowAll,
		Version:     version,
	})

	switch {
	case *target != "":
		if err := r.Simulate(*target); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	case *daily:
		word := dict.Daily(time.Now(), cfg.DailySalt)
		log.Debug().Str("word", word).Msg("daily word selected")
		if err := r.Simulate(word); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	case *suggest:
		if err := r.Suggest(); err != nil {
			log.Fatal().Err(err).Msg("no suggestion available")
		}
	case *remain:
		r.Remaining()
	default:
		if err := r.Solve(); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
	}
}

// loadConfig loads the layered configuration. An explicit -config path must
// load; the implicit default file is optional.
func loadConfig(path string) config.Config {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load configuration")
	}
	return cfg
}

func loadDictionary(path string) (*words.Dictionary, error) {
	if path != "" {
		return words.FromFile(path)
	}
	return words.Embedded()
}

func dictSource(path string) string {
	if path != "" {
		return path
	}
	return "embedded"
}

// pairHistory zips -guess and -answer values into replayable rounds.
func pairHistory(guesses, answers stringList) ([]solver.Round, error) {
	if len(guesses) != len(answers) {
		return nil, fmt.Errorf("%d guesses but %d answers; each -guess needs one -answer", len(guesses), len(answers))
	}
	rounds := make([]solver.Round, 0, len(guesses))
	for i := range guesses {
		fb, err := feedback.Parse(answers[i])
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		rounds = append(rounds, solver.Round{Guess: guesses[i], Feedback: fb})
	}
	return rounds, nil
}
