package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("gera um uuid quando não recebe ID", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("propaga o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " abc-123 ")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Setup("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Setup("barulhento"))
}

func TestKeepField(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	assert.True(t, keepField("correlation_id"))
	assert.True(t, keepField("user_id"))
	assert.True(t, keepField("version"))
	assert.False(t, keepField("remote_addr"))

	t.Setenv("APP_ENV", "production")
	assert.True(t, keepField("remote_addr"))
}
