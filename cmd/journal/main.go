package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/term"

	"example.com/codejournal/internal/app"
	"example.com/codejournal/pkg/config"
	"example.com/codejournal/pkg/logs"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.journal/config.toml)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: journal [-config file] [entry]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "journal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, entry string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	r := app.New(cfg)
	r.Logger = newLogger(cfg)
	if entry != "" {
		err := r.LoadFile(entry)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// New entry; the first save creates it.
			r.FilePath = entry
		case err != nil:
			r.Logger.Close()
			return err
		}
	}
	return r.Run()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// newLogger prefers the environment and falls back to the configured file.
func newLogger(cfg *config.Config) *logs.Logger {
	l := logs.NewFromEnv()
	if !l.Enabled() && cfg.LogFile != "" {
		l = logs.New(cfg.LogFile)
	}
	return l
}
