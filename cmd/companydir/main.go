package main

import (
	"companydir/cmd/companydir/render"
	"companydir/internal/catalog"
	"companydir/internal/config"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

type CLI struct {
	List       ListCmd       `cmd:"" aliases:"ls" help:"List companies, optionally filtered and sorted"`
	Search     SearchCmd     `cmd:"" aliases:"s" help:"Search companies by text"`
	Show       ShowCmd       `cmd:"" help:"Show company details"`
	Open       OpenCmd       `cmd:"" aliases:"o" help:"Open company website in the browser"`
	Browse     BrowseCmd     `cmd:"" aliases:"b" help:"Filter companies interactively"`
	Categories CategoriesCmd `cmd:"" help:"List the categories present in the directory"`
	Wilayas    WilayasCmd    `cmd:"" help:"List the wilayas present in the directory"`

	Data      string        `name:"data" short:"d" env:"COMPANYDIR_DATA" help:"Companies source: JSON or YAML file, http(s) URL, or SQLite database"`
	Timeout   time.Duration `default:"10s" env:"COMPANYDIR_TIMEOUT" help:"Maximum time spent loading the companies"`
	LogLevel  string        `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"COMPANYDIR_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat string        `name:"log-format" default:"text" enum:"text,json" env:"COMPANYDIR_LOG_FORMAT" help:"Log format (text, json)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	logger := newLogger(os.Stderr, c.LogLevel, c.LogFormat)

	location, err := config.ResolveLocation(c.Data)
	if err != nil {
		return fmt.Errorf("invalid data location: %w", err)
	}

	loadCtx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, c.Timeout)
		defer cancel()
	}

	cat, err := loadCatalog(loadCtx, location, logger)
	if err != nil {
		return err
	}

	globals := &Globals{
		Cat:    cat,
		Out:    os.Stdout,
		Render: render.NewLipglossRendererAuto(os.Stdout),
		Log:    logger,
	}
	ctx.Bind(globals)
	return nil
}

func loadCatalog(ctx context.Context, location string, logger *slog.Logger) (*catalog.Catalog, error) {
	start := time.Now()
	cat, err := catalog.Load(ctx, catalog.OpenSource(location))
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		"location", location,
		"companies", cat.Len(),
		"categories", len(cat.Categories()),
		"wilayas", len(cat.Wilayas()),
		"elapsed", time.Since(start),
	)
	return cat, nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("companydir"),
		kong.Description("Company directory browser"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
