package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	a := NewLogger("library")
	b := NewLogger("library")
	c := NewLogger("ui")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "library", a.Data["component"])
}

func TestLoggerWritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}) })

	NewLogger("navigator").Info("moved")

	out := buf.String()
	assert.Contains(t, out, "component=navigator")
	assert.Contains(t, out, "msg=moved")
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "imgswipe.log")

	closer, err := Setup(Options{Level: "debug", File: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = closer.Close()
		SetOutput(&bytes.Buffer{})
	})

	assert.Equal(t, logrus.DebugLevel, root.GetLevel())
	NewLogger("setup-test").Debug("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestSetupEnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")

	closer, err := Setup(Options{Level: "debug"})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.Equal(t, logrus.WarnLevel, root.GetLevel())
}
