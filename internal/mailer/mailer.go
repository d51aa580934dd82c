package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"ponto-backend/config"
	"ponto-backend/internal/service"
)

// Mailer envia os avisos administrativos por e-mail (SMTP via gomail).
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New() *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(
			config.GetEnv("SMTP_HOST", "localhost"),
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		),
		from: config.GetEnv("SMTP_FROM", "ponto@empresa.com"),
		to:   config.GetEnv("ADMIN_EMAIL", ""),
	}
}

// EnviarPendenciasDeSaida manda ao admin o resumo das saídas não registradas
// do dia. Devolve erro se não houver destinatário configurado.
func (m *Mailer) EnviarPendenciasDeSaida(data string, pendencias []service.Registro) error {
	if m.to == "" {
		return fmt.Errorf("ADMIN_EMAIL não configurado")
	}

	var corpo strings.Builder
	fmt.Fprintf(&corpo, "<p>Saídas não registradas em %s:</p><ul>", data)
	for _, r := range pendencias {
		fmt.Fprintf(&corpo, "<li>%s — entrada %s</li>", r.UserName, service.FormatarHora(r.Entrada))
	}
	corpo.WriteString("</ul>")

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Ponto: %d saída(s) pendente(s) em %s", len(pendencias), data))
	msg.SetBody("text/html", corpo.String())

	return m.dialer.DialAndSend(msg)
}
