// swipe - Terminal product swiper
// Swipe through a product catalog in your terminal with the mouse.
//
// Controls:
//
//	Mouse drag  - Drag the top card; release fast to swipe it away
//	Buttons     - Click nope, cart or like to swipe the top card
//	R           - Deal the deck again
//	?           - Toggle HUD overlay
//	Q/Esc       - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/cardswipe/internal/config"
	"github.com/taigrr/cardswipe/internal/sfx"
	"github.com/taigrr/cardswipe/internal/tui"
	"github.com/taigrr/cardswipe/pkg/deck"
)

var version = "dev"

var (
	configPath  string
	catalogPath string
	targetFPS   float64
	sound       bool
	snapCols    int
	snapRows    int
)

func main() {
	cmd := &cobra.Command{
		Use:   "swipe",
		Short: "Terminal product swiper",
		Long: `swipe - Terminal product swiper

Swipe through a product catalog in your terminal.

Controls:
  Mouse drag  - Drag the top card, release fast to swipe
  Buttons     - Click nope, cart or like
  R           - Deal again
  ?           - Toggle HUD overlay
  Q/Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default ./swipe.yaml if present)")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Product catalog, a JSON file or "+deck.EmbeddedPrefix+"<name>")
	cmd.Flags().Float64Var(&targetFPS, "fps", 60, "Target FPS")
	cmd.Flags().BoolVar(&sound, "sound", false, "Play a cue when a card leaves the screen")

	catalogCmd := &cobra.Command{
		Use:   "catalog [catalog.json]",
		Short: "Display catalog information",
		Long:  "List the embedded catalogs, or validate a catalog and print its products.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runListCatalogs()
			}
			return runCatalogInfo(args[0])
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot <out.png>",
		Short: "Render the freshly dealt deck to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runSnapshot(cfg, args[0])
		},
	}
	snapshotCmd.Flags().IntVar(&snapCols, "cols", 80, "Terminal columns to emulate")
	snapshotCmd.Flags().IntVar(&snapRows, "rows", 24, "Terminal rows to emulate")

	cmd.AddCommand(catalogCmd, snapshotCmd)

	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.UI.FPS = targetFPS
	}
	if flags.Changed("sound") {
		cfg.UI.Sound = sound
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Path = catalogPath
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	cfg.Log.Apply()
	return cfg, nil
}

func options(cfg *config.Config) (tui.Options, error) {
	products, err := deck.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return tui.Options{}, fmt.Errorf("load catalog: %w", err)
	}
	return tui.Options{
		FPS:          cfg.UI.FPS,
		CellWidth:    cfg.UI.CellWidth,
		CellHeight:   cfg.UI.CellHeight,
		CardColor:    cfg.UI.CardColor,
		Settings:     cfg.Engine.Settings(),
		FlickOnSwipe: cfg.Engine.FlickOnSwipe,
		Prevent:      cfg.Engine.Prevent(),
		Products:     products,
	}, nil
}

func run(cfg *config.Config) error {
	opts, err := options(cfg)
	if err != nil {
		return err
	}
	if cfg.UI.Sound {
		player := sfx.New(0.4)
		if err := player.Init(); err != nil {
			log.Warnf("sound disabled: %v", err)
		} else {
			defer player.Close()
			opts.OnOutcome = func(_ deck.Product, o deck.Outcome) { player.Cue(o) }
		}
	}
	return tui.Run(opts)
}

func runSnapshot(cfg *config.Config, out string) error {
	opts, err := options(cfg)
	if err != nil {
		return err
	}
	app, err := tui.NewApp(opts, snapCols, snapRows, time.Now())
	if err != nil {
		return err
	}
	if err := app.Render().SavePNG(out); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	fmt.Printf("Wrote %s (%dx%d cells, %d cards)\n", out, snapCols, snapRows, app.Deck().Len())
	return nil
}

func runListCatalogs() error {
	names, err := deck.EmbeddedCatalogs()
	if err != nil {
		return fmt.Errorf("read embedded catalogs: %w", err)
	}
	fmt.Println("Embedded catalogs:")
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
	return nil
}

func runCatalogInfo(path string) error {
	products, err := deck.LoadCatalog(path)
	if err != nil {
		return err
	}
	fmt.Printf("Catalog:    %s\n", filepath.Base(path))
	fmt.Printf("Products:   %d\n", len(products))
	fmt.Println()
	for _, p := range products {
		fmt.Printf("%-12s %-24s %s\n", p.ID, p.Name, p.PriceLine())
	}
	return nil
}
