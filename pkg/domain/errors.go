package domain

import "errors"

// ErrTradecraftNotFound is returned when a job type has no backing
// tradecraft document. The parser degrades it to an Unclear event; it never
// reaches the caller as a failed request.
var ErrTradecraftNotFound = errors.New("tradecraft not found")
