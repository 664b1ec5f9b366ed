// Package assets bundles the read-only seed database shipped with the binary.
package assets

import "embed"

// SeedName is the logical name of the bundled template database
const SeedName = "datenbank.db"

// FS holds the seed template. It contains an empty Student table and the
// legacy todos table that schema reconciliation upgrades on first use.
//
//go:embed datenbank.db
var FS embed.FS
