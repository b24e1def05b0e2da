package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyNormalizesQuery(t *testing.T) {
	base := CacheKey("s1", "show contract 123456")

	assert.Equal(t, base, CacheKey("s1", "Show Contract 123456"))
	assert.Equal(t, base, CacheKey("s1", "  show   contract   123456  "))
}

func TestCacheKeySessionScoped(t *testing.T) {
	assert.NotEqual(t,
		CacheKey("s1", "show contract 123456"),
		CacheKey("s2", "show contract 123456"),
	)
}

func TestCacheKeyDistinguishesQueries(t *testing.T) {
	assert.NotEqual(t,
		CacheKey("s1", "show contract 123456"),
		CacheKey("s1", "show contract 654321"),
	)
}
