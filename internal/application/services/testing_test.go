package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contact-service/internal/config"
	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
	"contact-service/internal/infrastructure/db/postgres"
)

var testDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svctestdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&postgres.UserModel{}, &postgres.ContactModel{}))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		UserCacheTTL:    900 * time.Second,
	}
}

// countingUserRepo counts credential-store lookups so tests can prove a
// cache hit skipped the store.
type countingUserRepo struct {
	repositories.UserRepository

	mu           sync.Mutex
	findByEmails int
}

func (r *countingUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	r.findByEmails++
	r.mu.Unlock()
	return r.UserRepository.FindByEmail(ctx, email)
}

func (r *countingUserRepo) lookups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByEmails
}

// memoryCache is an in-process UserCache with real TTL behavior.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	user      entities.User
	expiresAt time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]memoryCacheEntry)}
}

func (c *memoryCache) Get(ctx context.Context, email string) (*entities.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[email]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(c.entries, email)
		return nil, nil
	}
	user := entry.user
	return &user, nil
}

func (c *memoryCache) Set(ctx context.Context, email string, user *entities.User, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[email] = memoryCacheEntry{user: *user, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, email)
	return nil
}
