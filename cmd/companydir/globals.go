package main

import (
	"companydir/cmd/companydir/render"
	"companydir/internal/catalog"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

type Globals struct {
	Cat    *catalog.Catalog
	Out    io.Writer
	Render render.Renderer
	Log    *slog.Logger
	RunCmd func(name string, args ...string) error
}

func (g *Globals) logger() *slog.Logger {
	if g.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Log
}

func defaultRunCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
