package pacman

// PelletPoints is awarded for every regular pellet eaten.
const PelletPoints = 10

// ConsumePellet eats the pellet at pos, if any. It returns the remaining
// pellets and the points earned (PelletPoints or 0). On a miss the same set
// is returned.
func ConsumePellet(pos Position, pellets PelletSet) (PelletSet, int) {
	if !pellets.Has(pos) {
		return pellets, 0
	}
	return pellets.without(pos), PelletPoints
}

// ConsumePowerPellet eats the power pellet at pos, if any, and reports
// whether power mode should start. Points for it are awarded by the caller.
func ConsumePowerPellet(pos Position, power PelletSet) (PelletSet, bool) {
	if !power.Has(pos) {
		return power, false
	}
	return power.without(pos), true
}
