package domain

// TripView is a trip with its catalog references resolved for display.
// Reads never fail on a dangling reference: a deleted city or activity
// simply yields a nil pointer here, and the raw IDs remain available on
// the underlying Stop/ActivityRef.
type TripView struct {
	Trip  Trip
	Stops []StopView
}

// StopView pairs an embedded stop with its resolved city (nil when the
// city no longer exists) and resolved activity references.
type StopView struct {
	Stop       Stop
	City       *City
	Activities []ActivityRefView
}

// ActivityRefView pairs an activity reference with the catalog activity it
// points at (nil when the activity no longer exists). The catalog cost is
// informational only — budgeting uses Ref.CostOverride exclusively.
type ActivityRefView struct {
	Ref      ActivityRef
	Activity *Activity
}
