package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	// 未初始化时不应 panic
	Named("Test").Info("ignored")
}

func TestSetAndNamed(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Named("Background").Info("mounted", zap.Int("stars", 150))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Background", entries[0].LoggerName)
	assert.Equal(t, "mounted", entries[0].Message)
	assert.Equal(t, int64(150), entries[0].ContextMap()["stars"])
}

func TestInit(t *testing.T) {
	require.NoError(t, Init(true))
	t.Cleanup(func() { Set(nil) })
	assert.True(t, L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, L().Core().Enabled(zap.InfoLevel))
	assert.True(t, L().Core().Enabled(zap.WarnLevel))
}
