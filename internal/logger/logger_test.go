package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"staffing-backoffice/internal/auth"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.GetLevel()
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext(t *testing.T) {
	buf := captureOutput(t)

	userID := uuid.New()
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: userID, Role: auth.RoleManager})
	ctx = WithRequestID(ctx, "req-123")

	WithContext(ctx).WithField("team_id", "t1").Info("team created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user"])
	assert.Equal(t, "manager", entry["role"])
	assert.Equal(t, "t1", entry["team_id"])
	assert.Equal(t, "team created", entry["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warn("no caller")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
	_, hasRequestID := entry["request_id"]
	assert.False(t, hasRequestID)
}
