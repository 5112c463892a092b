package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"doubtconnect/internal/config"
)

// Mailer sends account mail over SMTP. The whole exchange runs against a
// single connection with a deadline, so a stalled gateway fails the send
// instead of hanging the calling request.
type Mailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendVerification emails the account verification link. Any failure is
// returned to the caller; registration treats it as a hard error.
func (m *Mailer) SendVerification(ctx context.Context, to, username, link string) error {
	subject := "Account Verification Link"
	body := fmt.Sprintf(
		"Hello %s,\n\nPlease verify your account by clicking the link: \n%s\n\nThank You!\n",
		username, link,
	)
	return m.send(ctx, to, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		return fmt.Errorf("mail gateway is not configured")
	}

	timeout := time.Duration(m.cfg.SendTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("dial mail gateway failed: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("set mail deadline failed: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("open smtp session failed: %w", err)
	}
	defer client.Quit()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls failed: %w", err)
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write([]byte(message(m.cfg.From, to, subject, body))); err != nil {
		return fmt.Errorf("write mail body failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish mail body failed: %w", err)
	}
	return nil
}

func message(from, to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)
	return msg.String()
}
