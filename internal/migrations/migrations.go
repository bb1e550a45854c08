// Package migrations embeds the static schema scripts. The cash_card table
// must exist before the service accepts traffic; applying these at startup is
// the deployment precondition, not a runtime recovery path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
