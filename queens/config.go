package queens

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the parameters for a solver sweep.
type Config struct {
	Sweep        SweepConfig
	Backtracking BacktrackingConfig
	HillClimbing HillClimbingConfig
	Annealing    AnnealingConfig
	Genetic      GeneticConfig
}

// SweepConfig holds the driver-level parameters.
type SweepConfig struct {
	Sizes       []int  `ini:"sizes" delim:" "` // space-separated board sizes
	Seed        int64  `ini:"seed"`            // 0 means time-based seeding
	ArchivePath string `ini:"archive_path"`    // prefix for solution archives, empty disables
}

// BacktrackingConfig holds parameters for the exhaustive solver.
type BacktrackingConfig struct {
	Enabled bool `ini:"enabled"`
}

// HillClimbingConfig holds parameters for the hill-climbing solver.
type HillClimbingConfig struct {
	Enabled     bool `ini:"enabled"`
	MaxRestarts int  `ini:"max_restarts"`
}

// AnnealingConfig holds parameters for the simulated-annealing solver.
type AnnealingConfig struct {
	Enabled     bool    `ini:"enabled"`
	InitialTemp float64 `ini:"initial_temp"`
	CoolingRate float64 `ini:"cooling_rate"`
}

// GeneticConfig holds parameters for the genetic-algorithm solver.
type GeneticConfig struct {
	Enabled        bool    `ini:"enabled"`
	PopulationSize int     `ini:"population_size"`
	Generations    int     `ini:"generations"`
	MutationRate   float64 `ini:"mutation_rate"`
}

// LoadConfig loads sweep and solver parameters from an INI file.
// Missing keys fall back to the defaults below; invalid values fail
// fast with a descriptive error.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	if err := cfg.Section("Sweep").MapTo(&config.Sweep); err != nil {
		return nil, fmt.Errorf("failed to map [Sweep] section: %w", err)
	}
	if err := cfg.Section("Backtracking").MapTo(&config.Backtracking); err != nil {
		return nil, fmt.Errorf("failed to map [Backtracking] section: %w", err)
	}
	if err := cfg.Section("HillClimbing").MapTo(&config.HillClimbing); err != nil {
		return nil, fmt.Errorf("failed to map [HillClimbing] section: %w", err)
	}
	if err := cfg.Section("SimulatedAnnealing").MapTo(&config.Annealing); err != nil {
		return nil, fmt.Errorf("failed to map [SimulatedAnnealing] section: %w", err)
	}
	if err := cfg.Section("GeneticAlgorithm").MapTo(&config.Genetic); err != nil {
		return nil, fmt.Errorf("failed to map [GeneticAlgorithm] section: %w", err)
	}

	// A solver is enabled unless its section says otherwise; MapTo
	// leaves an absent bool key false, so re-read with a default.
	config.Backtracking.Enabled = sectionEnabled(cfg, "Backtracking")
	config.HillClimbing.Enabled = sectionEnabled(cfg, "HillClimbing")
	config.Annealing.Enabled = sectionEnabled(cfg, "SimulatedAnnealing")
	config.Genetic.Enabled = sectionEnabled(cfg, "GeneticAlgorithm")

	// Defaults mirror the solver parameter choices the package was
	// tuned with.
	if len(config.Sweep.Sizes) == 0 {
		config.Sweep.Sizes = []int{4, 8, 10, 12}
	}
	if config.HillClimbing.MaxRestarts == 0 {
		config.HillClimbing.MaxRestarts = 100
	}
	if config.Annealing.InitialTemp == 0 {
		config.Annealing.InitialTemp = 1000
	}
	if config.Annealing.CoolingRate == 0 {
		config.Annealing.CoolingRate = 0.995
	}
	if config.Genetic.PopulationSize == 0 {
		config.Genetic.PopulationSize = 100
	}
	if config.Genetic.Generations == 0 {
		config.Genetic.Generations = 1000
	}
	if config.Genetic.MutationRate == 0 {
		config.Genetic.MutationRate = 0.1
	}

	// --- Validation ---
	for _, n := range config.Sweep.Sizes {
		if n < 1 {
			return nil, fmt.Errorf("config error: board sizes must be positive, got %d", n)
		}
	}
	if config.HillClimbing.MaxRestarts < 1 {
		return nil, fmt.Errorf("config error: max_restarts must be positive, got %d", config.HillClimbing.MaxRestarts)
	}
	if config.Annealing.InitialTemp <= 0 {
		return nil, fmt.Errorf("config error: initial_temp must be positive, got %g", config.Annealing.InitialTemp)
	}
	if config.Annealing.CoolingRate <= 0 || config.Annealing.CoolingRate >= 1 {
		return nil, fmt.Errorf("config error: cooling_rate must be in (0, 1), got %g", config.Annealing.CoolingRate)
	}
	if config.Genetic.PopulationSize < 1 {
		return nil, fmt.Errorf("config error: population_size must be positive, got %d", config.Genetic.PopulationSize)
	}
	if config.Genetic.Generations < 1 {
		return nil, fmt.Errorf("config error: generations must be positive, got %d", config.Genetic.Generations)
	}
	if config.Genetic.MutationRate < 0 || config.Genetic.MutationRate > 1 {
		return nil, fmt.Errorf("config error: mutation_rate must be in [0, 1], got %g", config.Genetic.MutationRate)
	}

	return config, nil
}

// sectionEnabled reads a section's "enabled" key, defaulting to true
// when the key is absent or unparseable.
func sectionEnabled(cfg *ini.File, section string) bool {
	sec := cfg.Section(section)
	if !sec.HasKey("enabled") {
		return true
	}
	enabled, err := sec.Key("enabled").Bool()
	if err != nil {
		return true
	}
	return enabled
}
