package queens

import (
	"fmt"
	"math/rand"
	"sort"
)

// tournamentSize is the sample size for tournament selection, capped at
// the population size.
const tournamentSize = 5

// GeneticSolver evolves a population of chromosomes (boards) toward a
// zero-conflict board. Fitness is MaxPairs(n) minus the conflict count,
// so a perfect board scores the ceiling. Each generation carries the
// top tenth over unchanged (elitism) and fills the rest with children
// built by tournament selection, single-point crossover, and mutation.
type GeneticSolver struct {
	n              int
	populationSize int
	generations    int
	mutationRate   float64
	rng            *rand.Rand

	best Board // fittest chromosome of the last ranked generation
}

// scoredChromosome caches a chromosome's fitness so a generation is
// evaluated once, not per comparison.
type scoredChromosome struct {
	board   Board
	fitness int
}

// NewGeneticSolver creates a solver for an n x n board.
func NewGeneticSolver(n, populationSize, generations int, mutationRate float64, rng *rand.Rand) (*GeneticSolver, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}
	if populationSize < 1 {
		return nil, fmt.Errorf("population size must be positive, got %d", populationSize)
	}
	if generations < 1 {
		return nil, fmt.Errorf("generation budget must be positive, got %d", generations)
	}
	if mutationRate < 0 || mutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be in [0, 1], got %g", mutationRate)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	return &GeneticSolver{
		n:              n,
		populationSize: populationSize,
		generations:    generations,
		mutationRate:   mutationRate,
		rng:            rng,
	}, nil
}

// Fitness scores a chromosome: maximum attacking pairs minus actual
// attacking pairs. Higher is better; MaxPairs(n) means solved.
func (s *GeneticSolver) Fitness(c Board) int {
	return MaxPairs(s.n) - CountConflicts(c)
}

// Solve evolves up to the generation budget and returns a zero-conflict
// chromosome and true, or (nil, false) if the budget runs out first.
// Best reports the fittest chromosome either way.
func (s *GeneticSolver) Solve() (Board, bool) {
	target := MaxPairs(s.n)

	population := make([]Board, s.populationSize)
	for i := range population {
		population[i] = RandomBoard(s.n, s.rng)
	}

	for gen := 0; gen < s.generations; gen++ {
		ranked := s.rank(population)
		s.best = ranked[0].board
		if ranked[0].fitness == target {
			return ranked[0].board, true
		}
		population = s.nextGeneration(ranked)
	}

	ranked := s.rank(population)
	s.best = ranked[0].board
	if ranked[0].fitness == target {
		return ranked[0].board, true
	}
	return nil, false
}

// Best returns the fittest chromosome seen by the last Solve call. It
// may still have conflicts; callers wanting a guaranteed solution must
// check Solve's second return value.
func (s *GeneticSolver) Best() Board {
	return s.best
}

// rank scores the population and sorts it descending by fitness.
func (s *GeneticSolver) rank(population []Board) []scoredChromosome {
	ranked := make([]scoredChromosome, len(population))
	for i, c := range population {
		ranked[i] = scoredChromosome{board: c, fitness: s.Fitness(c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].fitness > ranked[j].fitness
	})
	return ranked
}

// nextGeneration builds a full successor population from a ranked one:
// elites first, then tournament-selected, recombined, mutated children.
func (s *GeneticSolver) nextGeneration(ranked []scoredChromosome) []Board {
	eliteCount := (s.populationSize + 9) / 10 // ceil(10%), at least 1
	if eliteCount > len(ranked) {
		eliteCount = len(ranked)
	}

	next := make([]Board, 0, s.populationSize)
	for i := 0; i < eliteCount; i++ {
		next = append(next, ranked[i].board.Clone())
	}

	for len(next) < s.populationSize {
		parent1 := s.tournament(ranked)
		parent2 := s.tournament(ranked)
		child := s.crossover(parent1, parent2)
		s.mutate(child)
		next = append(next, child)
	}
	return next
}

// tournament samples min(tournamentSize, population) distinct members
// and returns the fittest one.
func (s *GeneticSolver) tournament(ranked []scoredChromosome) Board {
	k := tournamentSize
	if k > len(ranked) {
		k = len(ranked)
	}
	winner := -1
	for _, idx := range s.rng.Perm(len(ranked))[:k] {
		if winner == -1 || ranked[idx].fitness > ranked[winner].fitness {
			winner = idx
		}
	}
	return ranked[winner].board
}

// crossover splices parent1's prefix onto parent2's suffix at a uniform
// cut point in [1, n-1]. A 1x1 board has no cut point, so the child is
// a copy of parent1.
func (s *GeneticSolver) crossover(parent1, parent2 Board) Board {
	if s.n == 1 {
		return parent1.Clone()
	}
	point := 1 + s.rng.Intn(s.n-1)
	child := make(Board, s.n)
	copy(child, parent1[:point])
	copy(child[point:], parent2[point:])
	return child
}

// mutate overwrites one uniformly random gene with a uniformly random
// column value, with probability mutationRate.
func (s *GeneticSolver) mutate(c Board) {
	if s.rng.Float64() >= s.mutationRate {
		return
	}
	c[s.rng.Intn(s.n)] = s.rng.Intn(s.n)
}
