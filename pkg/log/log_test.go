package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	base, hook := test.NewNullLogger()
	l := &logger{entry: logrus.NewEntry(base)}

	l.WithFields(Fields{
		"campaign_id": "yd_001",
		"sync_id":     "abc",
		"remote_addr": "127.0.0.1",
	}).Info("campaigns: test")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "yd_001", entry.Data["campaign_id"])
	assert.Equal(t, "abc", entry.Data["sync_id"])
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base, hook := test.NewNullLogger()
	l := &logger{entry: logrus.NewEntry(base)}

	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).WithField("remote_addr", "127.0.0.1").Warn("request")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, id, entry.Data[correlationIDField])
	assert.Equal(t, "127.0.0.1", entry.Data["remote_addr"])
}

func TestConfigure_InvalidLevel(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	Configure("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
