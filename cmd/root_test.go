package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servermon/config"
)

func restoreLogging(t *testing.T) {
	logger, level := log.Logger, zerolog.GlobalLevel()
	mode, out, errOut := gin.Mode(), gin.DefaultWriter, gin.DefaultErrorWriter
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
		zerolog.DefaultContextLogger = nil
		gin.SetMode(mode)
		gin.DefaultWriter = out
		gin.DefaultErrorWriter = errOut
	})
}

func TestSetupLogging_JSONKeepsGinOutputStructured(t *testing.T) {
	restoreLogging(t)
	var buf bytes.Buffer

	setupLogging(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)
	fmt.Fprint(gin.DefaultWriter, "[GIN] GET /servers\n")
	fmt.Fprint(gin.DefaultErrorWriter, "[GIN-debug] [WARNING] something\n")

	assert.Equal(t, gin.ReleaseMode, gin.Mode())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		assert.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	}
	assert.Contains(t, lines[0], "GET /servers")
}

func TestSetupLogging_DebugLevelKeepsGinDebugMode(t *testing.T) {
	restoreLogging(t)

	setupLogging(&config.Config{LogLevel: "debug", LogFormat: "console"}, io.Discard)

	assert.Equal(t, gin.DebugMode, gin.Mode())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetupLogging_UnknownLevelFallsBackToInfo(t *testing.T) {
	restoreLogging(t)
	var buf bytes.Buffer

	setupLogging(&config.Config{LogLevel: "verbose", LogFormat: "json"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
	assert.Contains(t, buf.String(), "unknown log level")
}
