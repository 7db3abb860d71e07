package repository

import (
	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/domain/market"
)

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes action notifications to the
// request logger. It never blocks.
func NewLogNotifier() market.Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(c ctx.Ctx, notification market.Notification) {
	logger := c.WithFields(log.Fields{
		"id":     notification.Id,
		"kind":   string(notification.Kind),
		"action": notification.Action,
		"txHash": string(notification.TxHash),
	})
	switch notification.Kind {
	case market.NotificationFailure:
		logger.Warn(notification.Reason)
	default:
		logger.Info("market action")
	}
}
