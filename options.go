package yacare

import "github.com/garagon/yacare/internal/frame"

// CheckOverride allows changing the severity of a check or disabling it.
type CheckOverride struct {
	Severity string
	Disabled bool
}

// scanConfig holds the resolved configuration for a diagnostic call.
type scanConfig struct {
	workers         int
	threshold       *float64
	customChecksDir string
	disabledChecks  []string
	checkOverrides  map[string]CheckOverride
	minSeverity     Severity
	delimiter       rune
	naStrings       []string
	factors         []string
}

// Option configures a diagnostic or ingestion operation.
type Option func(*scanConfig)

func applyOpts(opts []Option) *scanConfig {
	cfg := &scanConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func (c *scanConfig) readOptions() frame.ReadOptions {
	return frame.ReadOptions{
		Delimiter: c.delimiter,
		NAStrings: c.naStrings,
		Factors:   c.factors,
	}
}

// WithWorkers sets the number of concurrent workers for per-column analysis
// (default: NumCPU). Output ordering is unaffected.
func WithWorkers(n int) Option {
	return func(c *scanConfig) {
		c.workers = n
	}
}

// WithThreshold sets the |skewness| cutoff for FindSkewness and turns on
// filtering for SkewnessValues.
func WithThreshold(thres float64) Option {
	return func(c *scanConfig) {
		c.threshold = &thres
	}
}

// WithCustomChecks loads additional quality checks from a directory.
func WithCustomChecks(dir string) Option {
	return func(c *scanConfig) {
		c.customChecksDir = dir
	}
}

// WithDisabledChecks excludes specific check IDs from evaluation.
func WithDisabledChecks(ids ...string) Option {
	return func(c *scanConfig) {
		c.disabledChecks = append(c.disabledChecks, ids...)
	}
}

// WithCheckOverrides applies severity overrides or disables checks.
func WithCheckOverrides(overrides map[string]CheckOverride) Option {
	return func(c *scanConfig) {
		c.checkOverrides = overrides
	}
}

// WithMinSeverity sets the minimum severity threshold for reported findings.
func WithMinSeverity(sev Severity) Option {
	return func(c *scanConfig) {
		c.minSeverity = sev
	}
}

// WithDelimiter sets the field delimiter for ReadCSV and ReadCSVFile.
func WithDelimiter(d rune) Option {
	return func(c *scanConfig) {
		c.delimiter = d
	}
}

// WithNAStrings sets the cell values treated as missing during ingestion,
// replacing the defaults ("", "NA", "NaN", "null").
func WithNAStrings(vals ...string) Option {
	return func(c *scanConfig) {
		c.naStrings = vals
	}
}

// WithFactors lists column names to ingest as factor instead of character.
func WithFactors(names ...string) Option {
	return func(c *scanConfig) {
		c.factors = append(c.factors, names...)
	}
}
