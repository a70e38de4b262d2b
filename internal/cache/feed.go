package cache

import (
	"sync"
	"time"

	"github.com/gogumamarket/goguma-api/internal/models"
)

// FeedCache хранит последнюю выборку ленты товаров. Единственное общее
// изменяемое состояние процесса: успешное создание товара сбрасывает кеш,
// чтобы следующая выборка увидела новую запись.
//
// Версия поколения защищает от гонки "прочитали базу — кеш сбросили —
// записали устаревшую выборку": Set принимает версию, увиденную при
// промахе Get, и молча игнорирует запись, если кеш с тех пор сбрасывали.
type FeedCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	version   uint64
	products  []models.Product
	expiresAt time.Time
}

// NewFeedCache создаёт кеш ленты с заданным временем жизни
func NewFeedCache(ttl time.Duration) *FeedCache {
	return &FeedCache{ttl: ttl}
}

// Get возвращает закешированную ленту, если она ещё не устарела, и текущую
// версию поколения для последующего Set
func (c *FeedCache) Get() ([]models.Product, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.products == nil || time.Now().After(c.expiresAt) {
		return nil, c.version, false
	}
	return c.products, c.version, true
}

// Set сохраняет свежую выборку ленты. Выборка, загруженная до сброса кеша,
// отбрасывается: version должна совпадать с текущим поколением.
func (c *FeedCache) Set(products []models.Product, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.products = products
	c.expiresAt = time.Now().Add(c.ttl)
}

// Invalidate сбрасывает кеш и открывает новое поколение
func (c *FeedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.version++
	c.products = nil
	c.expiresAt = time.Time{}
}
