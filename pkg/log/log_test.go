package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return &buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{
		"session_id": "s1",
		"remote_addr": "127.0.0.1",
	}).Info("mensagem")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "session_id=s1")
	assert.NotContains(t, out, "remote_addr")
}

func TestLogger_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("remote_addr", "127.0.0.1").Warn("aviso")
	assert.Contains(t, buf.String(), "remote_addr=127.0.0.1")
}

func TestSetup_InvalidLevel(t *testing.T) {
	Setup("nao-existe")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
