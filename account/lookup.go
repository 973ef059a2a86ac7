package account

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Lookup resolves serialized key material back into an Account.
type Lookup interface {
	FindByPublicKey(key PublicKey) (Account, error)
}

// DirectLookup builds the account straight from the key.
type DirectLookup struct{}

func (DirectLookup) FindByPublicKey(key PublicKey) (Account, error) {
	return NewAccount(key), nil
}

// CachingLookup memoizes another Lookup in a bounded LRU.
type CachingLookup struct {
	next  Lookup
	cache *lru.Cache[PublicKey, Account]
}

func NewCachingLookup(size int, next Lookup) (*CachingLookup, error) {
	cache, err := lru.New[PublicKey, Account](size)
	if err != nil {
		return nil, fmt.Errorf("account cache creation failed: %w", err)
	}
	return &CachingLookup{next: next, cache: cache}, nil
}

func (c *CachingLookup) FindByPublicKey(key PublicKey) (Account, error) {
	if acc, ok := c.cache.Get(key); ok {
		return acc, nil
	}
	acc, err := c.next.FindByPublicKey(key)
	if err != nil {
		return Account{}, err
	}
	c.cache.Add(key, acc)
	return acc, nil
}

func (c *CachingLookup) Len() int {
	return c.cache.Len()
}
