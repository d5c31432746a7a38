package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/config"
)

func TestNewReaperExtrasDisabledByDefault(t *testing.T) {
	extras, err := NewReaperExtras(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer extras.Close()

	assert.Nil(t, extras.Lock)
	assert.Nil(t, extras.Archiver)
}

func TestNewReaperExtrasArchiveOnly(t *testing.T) {
	extras, err := NewReaperExtras(context.Background(), &config.Config{
		S3Bucket: "turnos-archive",
		S3Region: "us-east-1",
	})
	require.NoError(t, err)
	defer extras.Close()

	assert.Nil(t, extras.Lock)
	assert.NotNil(t, extras.Archiver)
}

func TestNewReaperExtrasBadRedisURL(t *testing.T) {
	_, err := NewReaperExtras(context.Background(), &config.Config{RedisURL: "http://not-redis"})
	assert.ErrorContains(t, err, "REDIS_URL")
}
