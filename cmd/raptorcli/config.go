package main

import "github.com/ardanlabs/conf"

// config carries the shared, environment-configurable defaults every
// subcommand's cobra flags fall back to: the feed location and the
// optional Postgres DSN. It mirrors the teacher's gtfs-loader config
// shape (grouped, conf-tagged fields), but unlike the teacher this
// process never feeds os.Args to conf.Parse — cobra owns command-line
// parsing for every documented flag (--feed, --from, --dsn, ...); conf
// only supplies defaults and RAPTOR_CLI_* environment overrides for them.
type config struct {
	conf.Version
	Args conf.Args

	Feed struct {
		Path string `conf:"default:.,help:GTFS feed location -- a directory of *.txt tables or a .zip archive"`
	}

	DB struct {
		DSN string `conf:"noprint,help:Postgres DSN for a database-backed feed; overrides --feed when set"`
	}

	HTTP struct {
		Addr string `conf:"default:0.0.0.0:8080,help:listen address for the route service"`
	}

	Service struct {
		Name string `conf:"default:RAPTOR_CLI"`
	}
}

const envPrefix = "RAPTOR_CLI"
