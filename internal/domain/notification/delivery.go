package notification

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DeliveryService hands a notification to one sink.
type DeliveryService interface {
	Deliver(ctx context.Context, notification *Notification) error
}

// DeliveryFunc adapts a function to DeliveryService.
type DeliveryFunc func(ctx context.Context, notification *Notification) error

func (f DeliveryFunc) Deliver(ctx context.Context, notification *Notification) error {
	return f(ctx, notification)
}

type logDelivery struct {
	logger *logrus.Logger
}

// NewLogDelivery writes notifications to the log, standing in for a desktop notifier.
func NewLogDelivery(logger *logrus.Logger) DeliveryService {
	return &logDelivery{logger: logger}
}

func (d *logDelivery) Deliver(ctx context.Context, notification *Notification) error {
	d.logger.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"type":            notification.Type,
		"title":           notification.Title,
	}).Info(notification.Content)
	return nil
}

type signalDelivery struct {
	signals SignalRepository
}

// NewSignalDelivery publishes notifications to live subscribers on TopicAll and their type topic.
func NewSignalDelivery(signals SignalRepository) DeliveryService {
	return &signalDelivery{signals: signals}
}

func (d *signalDelivery) Deliver(ctx context.Context, notification *Notification) error {
	if err := d.signals.Publish(TopicAll, notification); err != nil {
		return err
	}
	return d.signals.Publish(string(notification.Type), notification)
}
