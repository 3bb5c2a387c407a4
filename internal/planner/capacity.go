package planner

// Overbooks reports whether adding a group of the given size to a trip with
// the given occupancy would exceed capacity. Evaluated once at booking time;
// the result is stored on the passenger and never recomputed afterwards.
func Overbooks(currentOccupancy, capacity, groupSize int) bool {
	return currentOccupancy+groupSize > capacity
}
