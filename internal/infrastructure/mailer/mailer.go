package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía el código OTP de recuperación por SMTP (gomail).
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordResetCode envía el correo con el código OTP y su vigencia.
func (m *SMTPMailer) SendPasswordResetCode(toEmail, code string, expiresAt time.Time) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Código de recuperación de contraseña")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Tu código de recuperación es: %s\n\nVence el %s. Si no solicitaste este código, ignora este correo.",
		code, expiresAt.Format("2006-01-02 15:04 MST"),
	))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo de reset: %w", err)
	}
	return nil
}

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer implementación para entornos sin SMTP configurado: registra el envío en el
// log en lugar de mandarlo. El código nunca se loguea, solo el destinatario.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendPasswordResetCode registra que se habría enviado un código al destinatario.
func (m *LogMailer) SendPasswordResetCode(toEmail, code string, expiresAt time.Time) error {
	m.log.Warn().
		Str("to", toEmail).
		Time("expires_at", expiresAt).
		Msg("SMTP no configurado: código de reset generado pero no enviado")
	return nil
}
