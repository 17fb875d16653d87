package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PULSE_AI_ENABLED", "true")
	t.Setenv("PULSE_AI_MODEL", "qwen2.5")
	t.Setenv("PULSE_AI_TIMEOUT_MS", "2500")
	t.Setenv("PULSE_AI_INTERPRET_TIMEOUT_MS", "1234")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskInterpret))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks[TaskContext] = TaskConfig{TimeoutMs: 0}
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskContext))
}
