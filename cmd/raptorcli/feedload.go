package main

import (
	"strings"

	"github.com/antigravity/transit-raptor/feed"
)

// loadFeed dispatches on path shape: a .zip archive goes through
// feed.LoadZip, anything else is treated as a GTFS directory and goes
// through feed.LoadDirectory (spec.md §6.4's "--feed <dir|zip>").
func loadFeed(path string) (*feed.View, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return feed.LoadZip(path)
	}
	return feed.LoadDirectory(path)
}
