package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "artifacts/results.csv", cfg.OutPath)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, 10, cfg.MaxJobs)
	assert.Equal(t, "lpsolve", cfg.Solver)
	assert.Equal(t, time.Duration(0), cfg.SolveTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PRODPLAN_DATA_DIR", "/srv/plans")
	t.Setenv("PRODPLAN_OUT", "/tmp/out.csv")
	t.Setenv("PRODPLAN_DB", "/tmp/runs.db")
	t.Setenv("PRODPLAN_MAX_JOBS", "25")
	t.Setenv("PRODPLAN_SOLVER", "cpsat")
	t.Setenv("PRODPLAN_SOLVE_TIMEOUT_SECONDS", "90")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/plans", cfg.DataDir)
	assert.Equal(t, "/tmp/out.csv", cfg.OutPath)
	assert.Equal(t, "/tmp/runs.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.MaxJobs)
	assert.Equal(t, "cpsat", cfg.Solver)
	assert.Equal(t, 90*time.Second, cfg.SolveTimeout)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("PRODPLAN_MAX_JOBS", "many")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("PRODPLAN_MAX_JOBS", "10")
	t.Setenv("PRODPLAN_SOLVE_TIMEOUT_SECONDS", "soon")
	_, err = Load()
	require.Error(t, err)
}
