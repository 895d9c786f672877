// Package mail implements the SMTP mail relay client used for password
// reset notifications.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
)

// Relay sends mail through an SMTP server over implicit TLS with plain
// authentication.
type Relay struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewRelay creates a relay client. Empty settings are allowed; Send then
// reports apperrors.ErrUnavailable so callers degrade with a 503.
func NewRelay(host, port, user, pass, from string) *Relay {
	if from == "" {
		from = user
	}
	return &Relay{host: host, port: port, user: user, pass: pass, from: from}
}

// Enabled reports whether the relay is fully configured.
func (r *Relay) Enabled() bool {
	return r.host != "" && r.port != "" && r.user != "" && r.pass != ""
}

// Send delivers a plain-text message to a single recipient.
func (r *Relay) Send(to, subject, body string) error {
	if !r.Enabled() {
		return fmt.Errorf("%w: mail relay not configured", apperrors.ErrUnavailable)
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", r.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := r.host + ":" + r.port

	// Implicit TLS for port 465
	tlsConfig := &tls.Config{
		ServerName: r.host,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("%w: mail relay unreachable: %v", apperrors.ErrUnavailable, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, r.host)
	if err != nil {
		return fmt.Errorf("%w: mail relay handshake failed: %v", apperrors.ErrUnavailable, err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", r.user, r.pass, r.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate with mail relay: %w", err)
	}

	if err := client.Mail(r.from); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open mail body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write mail body: %w", err)
	}
	return w.Close()
}
