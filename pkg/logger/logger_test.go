package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/mm-inventario/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Named("snapshot").Info().Str("op", "movement.register").Msg("operación confirmada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "snapshot", entry["component"])
	assert.Equal(t, "movement.register", entry["op"])
	assert.Contains(t, entry, "time")
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("tampoco")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí")
	assert.NotEmpty(t, buf.String())
}
