// Package notify models the out-of-band channel that delivers one-time
// passcodes to users. The real system would plug an email or SMS provider
// in here; the shipped implementation just logs the message, and the login
// response additionally echoes the code so the flow can be exercised
// without a mail server.
package notify

import (
	"fmt"

	"go.uber.org/zap"
)

// Notifier delivers a one-time passcode to a user.
type Notifier interface {
	SendOTP(email, code string) error
}

// LogNotifier is the placeholder delivery channel: it writes the simulated
// email to the application log.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) SendOTP(email, code string) error {
	body := fmt.Sprintf("Your 2FA code is: %s. It expires in 5 minutes.", code)
	n.Logger.Info("simulated email",
		zap.String("to", email),
		zap.String("subject", "Your CardFolio verification code"),
		zap.String("body", body),
	)
	return nil
}
