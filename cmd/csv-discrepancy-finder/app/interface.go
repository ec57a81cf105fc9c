package app

import (
	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface so callers of
// this package don't need a second import for the command contract.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
