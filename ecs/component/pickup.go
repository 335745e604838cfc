package component

// Pickup marks the boss drop. Collecting it is the victory condition.
type Pickup struct{}

var PickupComponent = NewComponent[Pickup]()
