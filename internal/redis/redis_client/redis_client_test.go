package redis_client

import (
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	rc, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, Ping(rc))

	mock.ExpectPing().SetErr(errors.New("refused"))
	err := Ping(rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 8, poolSize(1))
	assert.Equal(t, 512, poolSize(64))
	assert.Equal(t, 512, poolSize(65))
}
