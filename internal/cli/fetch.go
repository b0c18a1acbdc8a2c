package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/langcard/pkg/cache"
	"github.com/matzehuels/langcard/pkg/github"
	"github.com/matzehuels/langcard/pkg/langstats"
)

// fetchTTL is how long fetched repository data stays reusable. Language
// statistics move slowly; an hour keeps repeated local renders instant.
const fetchTTL = time.Hour

// cachedFetcher wraps a Fetcher with a byte cache keyed by login. Cache
// failures degrade to a plain fetch, never to an error.
type cachedFetcher struct {
	inner langstats.Fetcher
	cache cache.Cache
}

func newCachedFetcher(inner langstats.Fetcher, c cache.Cache) *cachedFetcher {
	return &cachedFetcher{inner: inner, cache: c}
}

func (f *cachedFetcher) UserLanguages(ctx context.Context, login string) ([]github.Repository, error) {
	key := cache.Key("user-languages", map[string]string{"login": login})

	if data, ok, err := f.cache.Get(ctx, key); err == nil && ok {
		var repos []github.Repository
		if err := json.Unmarshal(data, &repos); err == nil {
			return repos, nil
		}
	}

	repos, err := f.inner.UserLanguages(ctx, login)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(repos); err == nil {
		_ = f.cache.Set(ctx, key, data, fetchTTL)
	}
	return repos, nil
}
