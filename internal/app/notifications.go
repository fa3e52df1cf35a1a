package app

import (
	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/sirupsen/logrus"
)

// NotificationSystem holds all notification-related components
type NotificationSystem struct {
	Service notification.Service
	Signals notification.SignalRepository
	Logger  *logrus.Logger
}

// SetupNotificationSystem builds the notifier: live subscribers through the
// signal repository, plus a log sink standing in for desktop notifications.
func SetupNotificationSystem(cfg *config.Config) *NotificationSystem {
	notifLogger := logrus.New()
	if cfg.Logging.Format == "text" {
		notifLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		notifLogger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	notifLogger.SetLevel(level)

	signals := notification.NewSignalRepository(100, notifLogger)
	service := notification.NewService(notification.ServiceConfig{
		Signals: signals,
		Deliveries: []notification.DeliveryService{
			notification.NewLogDelivery(notifLogger),
		},
		Logger: notifLogger,
	})

	return &NotificationSystem{
		Service: service,
		Signals: signals,
		Logger:  notifLogger,
	}
}

// Shutdown waits for in-flight deliveries.
func (n *NotificationSystem) Shutdown() {
	n.Service.Wait()
}
