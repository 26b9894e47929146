package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/petrkoval/notes-api/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestUserCacheRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewUserCacheRepository(client, time.Minute)
	ctx := context.Background()

	t.Run("MissReturnsNil", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		cached := &models.PublicUser{
			ID:       42,
			Username: "alice",
			Email:    "alice@example.com",
			Roles:    []string{models.RoleUser},
		}
		assert.NoError(t, repo.SetByID(ctx, cached))

		user, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, []string{models.RoleUser}, user.Roles)
	})

	t.Run("Invalidate", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx, 42))

		user, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("InvalidateMissingKeyIsNoop", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx, 99999))
	})

	t.Run("EntryExpires", func(t *testing.T) {
		shortRepo := NewUserCacheRepository(client, 100*time.Millisecond)
		assert.NoError(t, shortRepo.SetByID(ctx, &models.PublicUser{ID: 7, Username: "bob"}))

		time.Sleep(300 * time.Millisecond)

		user, err := shortRepo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
