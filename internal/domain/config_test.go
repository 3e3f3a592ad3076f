package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BlockingAdvisory, cfg.Tasks.Blocking)
	assert.Equal(t, PriorityMedium, cfg.Tasks.DefaultPriority)
	assert.Equal(t, DefaultDueInDays, cfg.Tasks.DueInDays)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Tasks.Blocking = BlockingStrict

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, BlockingStrict, parsed.Tasks.Blocking)
	assert.Equal(t, PriorityMedium, parsed.Tasks.DefaultPriority)
	assert.Equal(t, 7, parsed.Tasks.DueInDays)
	assert.True(t, parsed.Notify.Enabled)
	assert.Equal(t, "info", parsed.Log.Level)
}
