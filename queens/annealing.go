package queens

import (
	"fmt"
	"math"
	"math/rand"
)

// temperatureFloor ends the annealing run once cooling has made uphill
// acceptance vanishingly unlikely.
const temperatureFloor = 1e-5

// AnnealingSolver runs single-trajectory simulated annealing: random
// single-queen proposals, Boltzmann acceptance of uphill moves, and a
// multiplicative cooling schedule. Unlike hill climbing there are no
// restarts; escaping local optima relies on uphill acceptance while the
// temperature is high.
type AnnealingSolver struct {
	n           int
	initialTemp float64
	coolingRate float64
	rng         *rand.Rand
}

// NewAnnealingSolver creates a solver for an n x n board. initialTemp
// must be positive and coolingRate must lie strictly between 0 and 1.
func NewAnnealingSolver(n int, initialTemp, coolingRate float64, rng *rand.Rand) (*AnnealingSolver, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}
	if initialTemp <= 0 {
		return nil, fmt.Errorf("initial temperature must be positive, got %g", initialTemp)
	}
	if coolingRate <= 0 || coolingRate >= 1 {
		return nil, fmt.Errorf("cooling rate must be in (0, 1), got %g", coolingRate)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	return &AnnealingSolver{n: n, initialTemp: initialTemp, coolingRate: coolingRate, rng: rng}, nil
}

// Solve returns the best board encountered and true if it reached zero
// conflicts before the temperature hit the floor, else (nil, false).
func (s *AnnealingSolver) Solve() (Board, bool) {
	current := RandomBoard(s.n, s.rng)
	currentEnergy := CountConflicts(current)

	best := current.Clone()
	bestEnergy := currentEnergy
	temp := s.initialTemp

	for temp > temperatureFloor && bestEnergy > 0 {
		// Propose moving one random queen to one random column. The
		// target may equal the current column; a no-op proposal just
		// re-evaluates the same state.
		neighbor := current.Clone()
		neighbor[s.rng.Intn(s.n)] = s.rng.Intn(s.n)
		neighborEnergy := CountConflicts(neighbor)

		delta := neighborEnergy - currentEnergy
		if delta < 0 || math.Exp(-float64(delta)/temp) > s.rng.Float64() {
			current = neighbor
			currentEnergy = neighborEnergy
		}

		if currentEnergy < bestEnergy {
			bestEnergy = currentEnergy
			best = current.Clone()
		}

		temp *= s.coolingRate
	}

	if bestEnergy == 0 {
		return best, true
	}
	return nil, false
}
