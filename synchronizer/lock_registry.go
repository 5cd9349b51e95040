package synchronizer

import (
	"sync"
)

type lockRegistry struct {
	locks sync.Map
}

var lr *lockRegistry
var once sync.Once

func GetLockRegistry() *lockRegistry {
	once.Do(func() {
		lr = &lockRegistry{}
	})
	return lr
}

// GetById returns the lock serialising syncs of the owner.
func (r *lockRegistry) GetById(ownerId uint32) *sync.Mutex {
	val, _ := r.locks.LoadOrStore(ownerId, &sync.Mutex{})
	return val.(*sync.Mutex)
}
