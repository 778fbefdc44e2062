package daemon

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	_ "modernc.org/sqlite"
)

// Cache memoizes Resolve outcomes for an exact scenario document, on
// the theory that a daemon client tends to resubmit the same
// already-resolved scenario far more often than it submits a new one.
// It is strictly an ambient daemon-layer optimization: the resolver
// itself is stateless and never consults it.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a sqlite-backed cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening resolution cache: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS resolutions (
  scenario_hash TEXT PRIMARY KEY,
  results_yaml  TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing resolution cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying sqlite connection.
func (c *Cache) Close() error { return c.db.Close() }

func hashScenario(scenarioYAML string) string {
	sum := sha256.Sum256([]byte(scenarioYAML))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached results for scenarioYAML, if present.
func (c *Cache) Get(ctx context.Context, scenarioYAML string) ([]CallResult, bool) {
	row := c.db.QueryRowContext(ctx, `SELECT results_yaml FROM resolutions WHERE scenario_hash = ?`, hashScenario(scenarioYAML))
	var resultsYAML string
	if err := row.Scan(&resultsYAML); err != nil {
		return nil, false
	}
	var results []CallResult
	if err := yaml.Unmarshal([]byte(resultsYAML), &results); err != nil {
		return nil, false
	}
	return results, true
}

// Put stores results for scenarioYAML, overwriting any prior entry.
func (c *Cache) Put(ctx context.Context, scenarioYAML string, results []CallResult) error {
	out, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO resolutions (scenario_hash, results_yaml) VALUES (?, ?)
		 ON CONFLICT(scenario_hash) DO UPDATE SET results_yaml = excluded.results_yaml`,
		hashScenario(scenarioYAML), string(out))
	return err
}
