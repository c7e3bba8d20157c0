// Package cache реализует типизированный кеш с ограниченным временем
// жизни записей для справочных данных (типы абонементов, список персонала).
//
// Вытеснение ленивое: просроченная запись удаляется при следующем чтении
// своего ключа, фонового процесса очистки нет. Кеш создаётся явным
// экземпляром у владеющего им компонента, пакетного синглтона нет.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL — время жизни записи по умолчанию.
const DefaultTTL = 300 * time.Second

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// Cache — потокобезопасный кеш ключ-значение. Чтение, запись и вытеснение
// одного ключа атомарны относительно конкурентных вызовов.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

// New создаёт кеш с заданным временем жизни записей.
// Неположительный ttl заменяется на DefaultTTL.
func New[T any](ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get возвращает значение по ключу, если запись ещё жива.
// Просроченная запись удаляется, и вызов сообщает о промахе.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set сохраняет значение, перезаписывая прежнюю запись ключа.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

// Clear безусловно опустошает кеш.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}
