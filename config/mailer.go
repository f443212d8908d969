package config

import (
	"crypto/tls"
	"fmt"
	"io"

	mail "github.com/go-mail/mail/v2"
)

// Attachment is a file attached to an outgoing mail, held in memory.
type Attachment struct {
	Filename string
	Data     []byte
}

// SendMail delivers a plain-text mail over SMTP with STARTTLS. Callers in
// the request path treat delivery as best-effort: the error is logged and
// never propagated to the HTTP response.
func SendMail(to []string, subject, body string, attachments ...Attachment) error {
	if len(to) == 0 {
		return nil
	}
	if App.SMTPHost == "" || App.SMTPFrom == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", App.SMTPFrom)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	for _, a := range attachments {
		data := a.Data
		m.Attach(a.Filename, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	d := mail.NewDialer(App.SMTPHost, App.SMTPPort, App.SMTPUser, App.SMTPPass)

	// Mandatory STARTTLS on port 587 (Gmail/Office365).
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         App.SMTPHost,
		InsecureSkipVerify: App.SkipTLSVerify, // dev only
	}

	return d.DialAndSend(m)
}
