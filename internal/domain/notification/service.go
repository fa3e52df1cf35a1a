package notification

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service dispatches notifications without blocking the caller.
type Service interface {
	// Notify delivers in the background. Failures are logged and dropped.
	Notify(ctx context.Context, notification *Notification)
	// Subscribe streams every notification delivered from now on.
	Subscribe() (<-chan *Notification, func(), error)
	// Wait blocks until in-flight deliveries finish.
	Wait()
}

// ServiceConfig wires the dispatcher. RequestPermission runs once, on the
// first Notify; a non-nil error disables host deliveries for the process.
type ServiceConfig struct {
	Signals           SignalRepository
	Deliveries        []DeliveryService
	RequestPermission func(ctx context.Context) error
	Logger            *logrus.Logger
}

type serviceImpl struct {
	signals           SignalRepository
	deliveries        []DeliveryService
	requestPermission func(ctx context.Context) error
	logger            *logrus.Logger

	permissionOnce sync.Once
	permitted      bool
	inflight       sync.WaitGroup
}

func NewService(config ServiceConfig) Service {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	signals := config.Signals
	if signals == nil {
		signals = NewSignalRepository(16, logger)
	}
	return &serviceImpl{
		signals:           signals,
		deliveries:        config.Deliveries,
		requestPermission: config.RequestPermission,
		logger:            logger,
	}
}

func (s *serviceImpl) permission(ctx context.Context) bool {
	s.permissionOnce.Do(func() {
		if s.requestPermission == nil {
			s.permitted = true
			return
		}
		if err := s.requestPermission(ctx); err != nil {
			s.logger.WithError(err).Warn("Notification permission not granted")
			return
		}
		s.permitted = true
	})
	return s.permitted
}

func (s *serviceImpl) Notify(ctx context.Context, notification *Notification) {
	ctx = context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		if err := NewSignalDelivery(s.signals).Deliver(ctx, notification); err != nil {
			s.logger.WithError(err).Warn("Failed to publish notification")
		}

		if !s.permission(ctx) {
			return
		}
		for _, d := range s.deliveries {
			if err := d.Deliver(ctx, notification); err != nil {
				s.logger.WithError(err).WithField("notification_id", notification.ID).
					Warn("Notification delivery failed, skipping")
			}
		}
	}()
}

func (s *serviceImpl) Subscribe() (<-chan *Notification, func(), error) {
	return s.signals.Subscribe(TopicAll)
}

func (s *serviceImpl) Wait() {
	s.inflight.Wait()
}
