package network

import (
	"sync"

	"npc-arena/pkg/api"
)

// Размер личного буфера зрителя
const subscriberBuffer = 100

// Broadcaster занимается только рассылкой сообщений ленты подписчикам
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan api.FeedMessage]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan api.FeedMessage]struct{}),
	}
}

// Subscribe создаёт личный канал для нового зрителя
func (b *Broadcaster) Subscribe() chan api.FeedMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan api.FeedMessage, subscriberBuffer)
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe удаляет зрителя и закрывает его канал
func (b *Broadcaster) Unsubscribe(ch chan api.FeedMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Broadcast отправляет всем. Никогда не блокирует бой:
// медленные зрители просто теряют сообщения.
func (b *Broadcaster) Broadcast(msg api.FeedMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
