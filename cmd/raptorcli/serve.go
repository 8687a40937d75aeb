package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/antigravity/transit-raptor/feed"
	"github.com/antigravity/transit-raptor/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the /route HTTP service against a GTFS feed",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveFlags struct {
	feedPath string
	dsn      string
	addr     string
}

// bindServeFlags registers serve's flags against cfg's values as
// defaults. Called from main after conf.Parse.
func bindServeFlags() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.feedPath, "feed", cfg.Feed.Path, "GTFS feed location: a directory of *.txt tables or a .zip archive")
	f.StringVar(&serveFlags.dsn, "dsn", cfg.DB.DSN, "Postgres DSN for a database-backed feed; overrides --feed when set")
	f.StringVar(&serveFlags.addr, "addr", cfg.HTTP.Addr, "listen address for the route service")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if serveFlags.dsn != "" {
		pool, err := pgxpool.New(ctx, serveFlags.dsn)
		if err != nil {
			return fmt.Errorf("connecting to %s: %w", serveFlags.dsn, err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("pinging database: %w", err)
		}

		view, err := feed.LoadPostgres(ctx, pool)
		if err != nil {
			return fmt.Errorf("loading feed: %w", err)
		}

		fmt.Printf("listening on %s (Postgres-backed)\n", serveFlags.addr)
		return http.ListenAndServe(serveFlags.addr, service.NewRouter(view, pool))
	}

	view, err := loadFeed(serveFlags.feedPath)
	if err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}

	fmt.Printf("listening on %s\n", serveFlags.addr)
	return http.ListenAndServe(serveFlags.addr, service.NewRouter(view, nil))
}
