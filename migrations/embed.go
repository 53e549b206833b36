package migrations

import "embed"

// Files holds the forward-only SQL migrations compiled into the binary.
// Names follow <version>_<name>.sql and are applied in version order.
//
//go:embed *.sql
var Files embed.FS
