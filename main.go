package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/callmeahab/scent-variants/variants"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newApp() *cli.App {
	var cfg Config

	return &cli.App{
		Name:  "scent-variants",
		Usage: "Group fragrance variants into canonical products",
		Before: func(c *cli.Context) error {
			var err error
			if cfg, err = loadConfig(); err != nil {
				return err
			}
			return initLogging(cfg.LogLevel, cfg.LogFormat)
		},
		// No command starts the server
		Action: func(c *cli.Context) error {
			return serveCommand(c, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the ConnectRPC server",
				Action: func(c *cli.Context) error {
					return serveCommand(c, cfg)
				},
			},
			{
				Name:  "group",
				Usage: "Group a JSON array of variants and write the groups as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "Input file (JSON array of variants)", Required: true},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file (default: stdout)"},
				},
				Action: func(c *cli.Context) error {
					return groupCommand(c, cfg)
				},
			},
			{
				Name:  "index",
				Usage: "Group the catalog and publish the groups to Meilisearch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Only group this brand id"},
				},
				Action: func(c *cli.Context) error {
					return indexCommand(c, cfg)
				},
			},
			{
				Name:  "stats",
				Usage: "Print grouping statistics for a JSON file or the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "Input file (default: read the catalog)"},
				},
				Action: func(c *cli.Context) error {
					return statsCommand(c, cfg)
				},
			},
		},
	}
}

func serveCommand(c *cli.Context, cfg Config) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runConnectServer(ctx, cfg)
}

func groupCommand(c *cli.Context, cfg Config) error {
	batch, err := readVariantsFile(c.String("in"))
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	res, err := runEngine(c.Context, cfg, runID, batch)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	return writeJSON(out, newGroupsResponse(runID, res))
}

func indexCommand(c *cli.Context, cfg Config) error {
	db, err := connectDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	store := NewCatalogStore(db)

	runID := uuid.NewString()
	batch, err := loadCatalog(c.Context, store, c.String("brand"), cfg.BatchSize)
	if err != nil {
		return err
	}
	res, err := runEngine(c.Context, cfg, runID, batch)
	if err != nil {
		return err
	}

	indexer := NewGroupIndexer(cfg.MeiliURL, cfg.MeiliAPIKey, cfg.MeiliIndex)
	// A brand run updates documents in place instead of wiping the index
	if c.String("brand") == "" {
		indexer.Setup()
	}
	indexed, err := indexer.IndexGroups(res.Groups, cfg.BatchSize)
	if err != nil {
		return err
	}

	fmt.Printf("\nIndex rebuild complete!\n")
	fmt.Printf("   Run:           %s\n", runID)
	fmt.Printf("   Variants read: %d\n", len(batch))
	fmt.Printf("   Skipped:       %d\n", len(res.Skipped))
	fmt.Printf("   Groups:        %d\n", indexed)
	return nil
}

func statsCommand(c *cli.Context, cfg Config) error {
	var (
		batch []variants.FragranceVariant
		err   error
	)
	if path := c.String("in"); path != "" {
		batch, err = readVariantsFile(path)
	} else {
		db, dbErr := connectDB(cfg.DatabaseURL)
		if dbErr != nil {
			return fmt.Errorf("failed to connect to database: %w", dbErr)
		}
		defer db.Close()
		batch, err = loadCatalog(c.Context, NewCatalogStore(db), "", cfg.BatchSize)
	}
	if err != nil {
		return err
	}

	res, err := runEngine(c.Context, cfg, uuid.NewString(), batch)
	if err != nil {
		return err
	}
	printStatsReport(os.Stdout, res.Groups)
	return nil
}

func readVariantsFile(path string) ([]variants.FragranceVariant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return readVariants(f)
}

func loadCatalog(ctx context.Context, store *CatalogStore, brandID string, batchSize int) ([]variants.FragranceVariant, error) {
	if brandID != "" {
		return store.LoadBrand(ctx, brandID, batchSize)
	}
	total, err := store.Count(ctx)
	if err != nil {
		return nil, err
	}
	log.Info().Int("variants", total).Msg("loading catalog")
	return store.LoadVariants(ctx, batchSize)
}

// runEngine groups a batch, logging each skipped record and the run summary.
func runEngine(ctx context.Context, cfg Config, runID string, batch []variants.FragranceVariant) (*variants.Result, error) {
	logger := log.With().Str("run_id", runID).Logger()
	engine := variants.NewEngine(variants.WithWorkers(cfg.Workers), variants.WithLogger(logger))

	started := time.Now()
	res, err := engine.ClusterAndAnnotate(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("grouping failed: %w", err)
	}
	for _, rerr := range res.Skipped {
		logger.Warn().Err(rerr).Msg("skipped invalid variant")
	}
	logger.Info().
		Int("variants", len(batch)).
		Int("groups", len(res.Groups)).
		Int("skipped", len(res.Skipped)).
		Dur("took", time.Since(started)).
		Msg("grouping run complete")
	return res, nil
}
