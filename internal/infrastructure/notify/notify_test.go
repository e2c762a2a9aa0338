package notify_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemanage/internal/infrastructure/notify"
	"github.com/jhoicas/storemanage/pkg/logger"
)

func TestWriterNotifier_Lineas(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewWriterNotifier(&buf)

	n.Success("Stock was successfully added")
	n.Error("timeout")

	assert.Equal(t, "OK: Stock was successfully added\nERROR: timeout\n", buf.String())
}

func TestLogNotifier_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	n := notify.NewLogNotifier(log)

	n.Error("tienda no encontrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "error", line["kind"])
	assert.Equal(t, "notify", line["component"])
	assert.Equal(t, "tienda no encontrada", line["message"])
}

func TestLogNotifier_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	n := notify.NewLogNotifier(log).WithLevel(zerolog.DebugLevel)

	n.Error("tienda no encontrada")
	n.Success("Stock was successfully added")
	assert.Empty(t, buf.String(), "en debug no sale nada con nivel info")

	log = logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	notify.NewLogNotifier(log).WithLevel(zerolog.DebugLevel).Error("timeout")

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "error", line["kind"])
}

func TestLogNotifier_NilNoFalla(t *testing.T) {
	assert.NotPanics(t, func() {
		notify.NewLogNotifier(nil).Success("ok")
	})
}

func TestMulti_ReenviaATodos(t *testing.T) {
	var a, b bytes.Buffer
	m := notify.Multi{notify.NewWriterNotifier(&a), notify.NewWriterNotifier(&b)}

	m.Success("Stock was successfully removed")

	assert.Equal(t, "OK: Stock was successfully removed\n", a.String())
	assert.Equal(t, a.String(), b.String())
}
