package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/app"
	"torus-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns stderr while it is up; buffer log output until Fini.
	var logs bytes.Buffer
	logger := log.New(&logs, "", log.LstdFlags)
	err := run(cfg, logger)
	os.Stderr.Write(logs.Bytes())
	if err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)

	host, err := term.New(screen, cfg, logger)
	if err != nil {
		return err
	}
	return host.Run()
}
