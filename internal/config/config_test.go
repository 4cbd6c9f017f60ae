package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultUserID, cfg.UserID)
	assert.Equal(t, "", cfg.UserName)
	assert.Equal(t, float64(DefaultTargetScore), cfg.TargetScore)
	assert.Equal(t, DefaultTotalTasks, cfg.TotalTasks)
	assert.Equal(t, DefaultSnapshotKeep, cfg.SnapshotKeep)
	assert.False(t, cfg.ClampKnowledgeGain)
	assert.InDelta(t, 0.30, cfg.Weights.Knowledge, 1e-9)
	assert.InDelta(t, 0.20, cfg.Weights.Engagement, 1e-9)
	assert.InDelta(t, 0.20, cfg.Weights.Retries, 1e-9)
	assert.InDelta(t, 0.15, cfg.Weights.HelpSeeking, 1e-9)
	assert.InDelta(t, 0.15, cfg.Weights.Resilience, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `user_name: Jordan
target_score: 85
clamp_knowledge_gain: true
weights:
  knowledge: 0.5
  engagement: 0.2
  retries: 0.1
  help_seeking: 0.1
  resilience: 0.1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jordan", cfg.UserName)
	assert.Equal(t, float64(85), cfg.TargetScore)
	assert.True(t, cfg.ClampKnowledgeGain)
	assert.InDelta(t, 0.5, cfg.Weights.Knowledge, 1e-9)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultTotalTasks, cfg.TotalTasks)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_name: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestScoringConversion(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	sc := cfg.Scoring()
	assert.InDelta(t, 0.30, sc.Weights.Knowledge, 1e-9)
	assert.False(t, sc.ClampKnowledgeGain)
}
