package local

import (
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
)

func New() Client {
	return &local{
		store: make(map[string]*cache.Result),
		mut:   &sync.RWMutex{},
	}
}

type Client interface {
	Get(key string) *cache.Result
	Set(key string, result *cache.Result)
	Delete(key string)
}

type local struct {
	store map[string]*cache.Result
	mut   *sync.RWMutex
}

func (l *local) Get(key string) *cache.Result {
	l.mut.RLock()
	defer l.mut.RUnlock()

	result, ok := l.store[key]
	if !ok {
		return nil
	}

	return result
}

func (l *local) Set(key string, result *cache.Result) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = result
}

func (l *local) Delete(key string) {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.store, key)
}
