// Package queens explores the N-Queens constraint-satisfaction problem
// with four search strategies: exhaustive backtracking, hill climbing
// with random restarts, simulated annealing, and a genetic algorithm.
//
// All four strategies share a single O(N) conflict evaluator
// (CountConflicts) and the Board representation (row index -> column).
// The three metaheuristics return a single zero-conflict board or an
// explicit "not found" result; the backtracking solver enumerates every
// solution instead.
//
// Basic usage:
//
//	// Load solver parameters
//	config, err := queens.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Exhaustive enumeration
//	bt, err := queens.NewBacktrackingSolver(8)
//	if err != nil {
//		log.Fatalf("Error creating solver: %v", err)
//	}
//	if err := bt.Solve(); err != nil {
//		log.Printf("Skipped: %v", err)
//	}
//	fmt.Printf("Found %d solutions\n", len(bt.Solutions))
//
//	// Satisficing search with a seeded random source
//	rng := rand.New(rand.NewSource(1))
//	ga, err := queens.NewGeneticSolver(8,
//		config.Genetic.PopulationSize, config.Genetic.Generations,
//		config.Genetic.MutationRate, rng)
//	if err != nil {
//		log.Fatalf("Error creating solver: %v", err)
//	}
//	if board, ok := ga.Solve(); ok {
//		fmt.Print(queens.Render(board))
//	}
package queens
