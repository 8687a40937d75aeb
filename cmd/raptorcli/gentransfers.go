package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-raptor/transfers"
)

var genTransfersCmd = &cobra.Command{
	Use:   "gen-transfers",
	Short: "Generate a transfers.txt from the feed's stops",
	Args:  cobra.NoArgs,
	RunE:  runGenTransfers,
}

var genTransfersFlags struct {
	feedPath  string
	radius    float64
	walkSpeed float64
	out       string
}

// bindGenTransfersFlags registers gen-transfers' flags against cfg's
// values as defaults. Called from main after conf.Parse.
func bindGenTransfersFlags() {
	f := genTransfersCmd.Flags()
	f.StringVar(&genTransfersFlags.feedPath, "feed", cfg.Feed.Path, "GTFS feed location: a directory of *.txt tables or a .zip archive")
	f.Float64Var(&genTransfersFlags.radius, "radius", transfers.DefaultRadius, "walking-transfer search radius, in the projection's units (meters)")
	f.Float64Var(&genTransfersFlags.walkSpeed, "walk-speed", transfers.DefaultWalkSpeed*60, "walking speed, in units per minute")
	f.StringVar(&genTransfersFlags.out, "out", "", "output path for the generated transfers.txt (default: alongside --feed)")
}

func runGenTransfers(cmd *cobra.Command, args []string) error {
	view, err := loadFeed(genTransfersFlags.feedPath)
	if err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}

	genCfg := transfers.NewConfig()
	genCfg.Radius = genTransfersFlags.radius
	genCfg.WalkSpeed = genTransfersFlags.walkSpeed / 60

	rows := transfers.Generate(view.AllStops(), genCfg)

	out := genTransfersFlags.out
	if out == "" {
		dir := genTransfersFlags.feedPath
		if strings.HasSuffix(strings.ToLower(dir), ".zip") {
			dir = filepath.Dir(dir)
		}
		out = filepath.Join(dir, "transfers.txt")
	}
	if err := transfers.WriteFile(out, rows); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("wrote %d transfers to %s\n", len(rows), out)
	return nil
}
