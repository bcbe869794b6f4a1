// Package iocache is for caching I/O calls.
package iocache

import (
	"sync"

	"github.com/commitlens/commitlens/internal/contract"
)

// CacheStoreManager manages the CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	logs         contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetLogStore returns the commit-log CacheStore.
func (mgr *CacheStoreManager) GetLogStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.logs
}
