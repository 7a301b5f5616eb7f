package service

import (
	"vastratrota-backend/internal/util"

	"go.uber.org/zap"
)

// Notifier is the outbound notification channel. SMS delivery is simulated:
// messages are logged the way the real gateway integration would be called.
// Failures here must never propagate into the request that triggered them.
type Notifier struct {
	logger *zap.Logger
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{logger: util.GetLogger()}
}

// SendSMS simulates sending an SMS to a customer.
func (n *Notifier) SendSMS(mobile, message string) {
	n.logger.Info("SMS sent",
		zap.String("mobile", mobile),
		zap.String("message", message))
	util.SMSNotificationsTotal.WithLabelValues("sent").Inc()
}

// SendAlert pushes an operational alert to the admin alert channel.
func (n *Notifier) SendAlert(message string) {
	n.logger.Warn("Alert", zap.String("message", message))
}
