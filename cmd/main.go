package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jaki95/discogs-cue/config"
	"github.com/jaki95/discogs-cue/internal/cue"
	"github.com/jaki95/discogs-cue/internal/discogs"
	"github.com/jaki95/discogs-cue/internal/generator"
	"github.com/jaki95/discogs-cue/internal/storage"
)

const comment = "discogs-cue"

const usage = `discogs-cue generates a cue sheet from Discogs release data.

SYNTAX:
  discogs-cue [(r)elease=|(m)aster=]<id> <audio filename>

FIRST ARGUMENT: a Discogs release or master release ID. Specify
"release=<id>" or "r=<id>" or just "<id>" for a regular release and
"master=<id>" or "m=<id>" for a master.

SECOND ARGUMENT: filename, with optional path, of the audio file you want
to make a cue for. The cue file is created alongside it. "?" characters
are replaced by the disc number.

EXAMPLES:
  discogs-cue master=218406 "Clubland X-Treme Hardcore-Disc?.wav"
  discogs-cue r=1 "/path/to/the punisher - stockholm.mp3"
  discogs-cue 1432 "Release filename.flac"

OPTIONS:
  --help (-h) - this text`

const syntaxError = "Invalid syntax, use --help for help"

// target is the release selector parsed from the first CLI argument.
type target struct {
	id     string
	master bool
}

// parseTarget accepts "<id>", "r=<id>"/"release=<id>" and
// "m=<id>"/"master=<id>" with a case-insensitive prefix.
func parseTarget(arg string) (target, error) {
	eq := strings.Index(arg, "=")
	if eq == -1 {
		return target{id: arg}, nil
	}

	prefix := strings.ToLower(arg[:eq])
	id := arg[eq+1:]
	switch prefix {
	case "r", "release":
		return target{id: id}, nil
	case "m", "master":
		return target{id: id, master: true}, nil
	default:
		return target{}, fmt.Errorf("unknown release selector: %s", prefix)
	}
}

// loadConfig reads the config file named by DISCOGS_CUE_CONFIG, or
// config.yaml when present, and falls back to defaults otherwise.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("DISCOGS_CUE_CONFIG")
	if path == "" {
		path = "config.yaml"
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// run holds the whole CLI flow so the exit policy stays in one place.
// Usage goes to stdout; every diagnostic goes to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, syntaxError)
		return 1
	}

	switch args[0] {
	case "--help", "-h", "-H":
		fmt.Fprintln(stdout, usage)
		return 0
	}

	if len(args) != 2 {
		fmt.Fprintln(stderr, syntaxError)
		return 1
	}

	tgt, err := parseTarget(args[0])
	if err != nil {
		fmt.Fprintln(stderr, syntaxError)
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		return 1
	}

	gen := generator.New(discogs.NewClient(cfg), store)

	opts := &generator.Options{
		ID:        tgt.id,
		Master:    tgt.master,
		AudioFile: args[1],
		Comment:   comment,
	}

	if _, err := gen.Generate(ctx, opts); err != nil {
		fmt.Fprintln(stderr, err)
		if !errors.Is(err, cue.ErrNoTrackData) {
			fmt.Fprintln(stderr, "Failed to get valid release info from Discogs (are you connected to the internet? are you sure the ID is correct?)")
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
