// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vendra-inc/vendra/internal/application/renewal/usecases"
	"github.com/vendra-inc/vendra/internal/shared/config"
)

// ReceiptService sends the renewal receipt after a settlement commits.
type ReceiptService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewReceiptService(cfg config.EmailConfig) *ReceiptService {
	return &ReceiptService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

var _ usecases.ReceiptNotifier = (*ReceiptService)(nil)

func (s *ReceiptService) SendRenewalReceipt(ctx context.Context, cmd usecases.ReceiptCommand) error {
	if s.config.SMTPHost == "" {
		return fmt.Errorf("smtp is not configured")
	}

	subject := fmt.Sprintf("Payment received for %s", cmd.PackageName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you, %s!</h2>
			<p>We received your payment of %.2f %s for the <b>%s</b> package.</p>
			<p>Your subscription is now valid until <b>%s</b>.</p>
			<p>Payment reference: %s</p>
		</body>
		</html>
	`, cmd.ClientName, cmd.AmountInRupees, cmd.Currency, cmd.PackageName,
		cmd.NewExpiryDate.Format("02 Jan 2006"), cmd.PaymentSID)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", cmd.ClientEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send receipt: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
