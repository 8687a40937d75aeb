package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-raptor/feed"
	"github.com/antigravity/transit-raptor/raptor"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Run an earliest-arrival search between two stops",
	Args:  cobra.NoArgs,
	RunE:  runRoute,
}

var routeFlags struct {
	feedPath  string
	from      string
	to        string
	depart    string
	transfers int
}

// bindRouteFlags registers route's flags against cfg's values as
// defaults. Called from main after conf.Parse has populated cfg, since
// cfg is still its zero value at package init time.
func bindRouteFlags() {
	f := routeCmd.Flags()
	f.StringVar(&routeFlags.feedPath, "feed", cfg.Feed.Path, "GTFS feed location: a directory of *.txt tables or a .zip archive")
	f.StringVar(&routeFlags.from, "from", "", "origin stop id (required)")
	f.StringVar(&routeFlags.to, "to", "", "destination stop id (required)")
	f.StringVar(&routeFlags.depart, "depart", "00:00:00", "departure time as HH:MM:SS, from service-day midnight")
	f.IntVar(&routeFlags.transfers, "transfers", 4, "maximum number of transfers (K)")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")
}

func runRoute(cmd *cobra.Command, args []string) error {
	depTime, err := feed.ParseGTFSTime(routeFlags.depart)
	if err != nil {
		return fmt.Errorf("invalid --depart: %w", err)
	}
	if routeFlags.transfers < 0 {
		return fmt.Errorf("invalid --transfers: must be >= 0")
	}

	view, err := loadFeed(routeFlags.feedPath)
	if err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}

	res, err := raptor.Search(context.Background(), view, routeFlags.from, routeFlags.to, depTime, routeFlags.transfers)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if res.Warning != "" {
		fmt.Println("warning:", res.Warning)
	}
	if !res.Reached(routeFlags.to) {
		fmt.Println("destination not reached")
		return nil
	}

	journey, err := raptor.Reconstruct(view, res.Store, routeFlags.to)
	if err != nil {
		return fmt.Errorf("reconstructing journey: %w", err)
	}

	for _, leg := range journey.Legs {
		if leg.Mode == raptor.LegWalk {
			fmt.Printf("walk   %s -> %s\n", leg.FromStopID, leg.ToStopID)
			continue
		}
		fmt.Printf("transit %s -> %s on %s (board %.0f, alight %.0f)\n",
			leg.FromStopID, leg.ToStopID, leg.TripID, leg.BoardTime, leg.AlightTime)
	}

	return nil
}
