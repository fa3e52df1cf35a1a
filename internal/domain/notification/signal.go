package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TopicAll receives every notification.
const TopicAll = "all"

// SignalRepository is an in-process pub/sub for live notification streams.
type SignalRepository interface {
	// Subscribe returns a channel of notifications and a cancel function.
	Subscribe(topic string) (<-chan *Notification, func(), error)

	// Publish delivers to current subscribers without blocking on slow ones.
	Publish(topic string, notification *Notification) error
}

type signalRepository struct {
	mutex     sync.Mutex
	topics    map[string]map[string]chan *Notification
	topicSize int
	logger    *logrus.Logger
}

// NewSignalRepository creates a new signal repository
func NewSignalRepository(topicSize int, logger *logrus.Logger) SignalRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &signalRepository{
		topics:    make(map[string]map[string]chan *Notification),
		topicSize: topicSize,
		logger:    logger,
	}
}

func (r *signalRepository) Subscribe(topic string) (<-chan *Notification, func(), error) {
	if topic == "" {
		return nil, nil, ErrEmptyTopic
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.topics[topic]; !exists {
		r.topics[topic] = make(map[string]chan *Notification)
	}

	ch := make(chan *Notification, r.topicSize)
	subscriberID := uuid.New().String()
	r.topics[topic][subscriberID] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mutex.Lock()
			defer r.mutex.Unlock()

			if topicMap, exists := r.topics[topic]; exists {
				delete(topicMap, subscriberID)
				if len(topicMap) == 0 {
					delete(r.topics, topic)
				}
			}
			close(ch)
		})
	}

	return ch, cancel, nil
}

func (r *signalRepository) Publish(topic string, notification *Notification) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	subscribers := r.topics[topic]
	if len(subscribers) == 0 {
		return nil
	}

	r.logger.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"topic":           topic,
		"subscribers":     len(subscribers),
	}).Debug("Publishing notification to subscribers")

	// Sends happen under the lock so cancel cannot close a channel mid-send.
	for _, ch := range subscribers {
		select {
		case ch <- notification:
		case <-time.After(100 * time.Millisecond):
			r.logger.WithFields(logrus.Fields{
				"notification_id": notification.ID,
				"topic":           topic,
			}).Warn("Failed to deliver notification to subscriber (channel full or blocked)")
		}
	}

	return nil
}
