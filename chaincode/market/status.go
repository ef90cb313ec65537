package market

// Listing lifecycle states. Active is the only state a listing can leave;
// Sold and Cancelled are terminal.
const (
	StatusActive    = "Active"
	StatusSold      = "Sold"
	StatusCancelled = "Cancelled"
)

// Statuses lists every legal listing status.
var Statuses = []string{StatusActive, StatusSold, StatusCancelled}
