package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

const signature = "*Personal Trainer App*"

// dias até o vencimento que já contam como urgente
const urgentDays = 3

type Kind string

const (
	KindPaymentReminder Kind = "payment_reminder"
	KindSessionReminder Kind = "session_reminder"
	KindCustom          Kind = "custom"
)

// Message é uma mensagem pronta para abrir no WhatsApp.
type Message struct {
	Kind Kind   `json:"type"`
	To   string `json:"to"`
	Text string `json:"message"`
	Link string `json:"link"`
}

// Formatter monta as mensagens e o link wa.me. Não envia nada:
// abrir o link fica a cargo do cliente.
type Formatter struct {
	countryCode string
}

func NewFormatter(countryCode string) *Formatter {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return &Formatter{countryCode: countryCode}
}

// Link monta https://wa.me/<dígitos>?text=<texto escapado>.
func (f *Formatter) Link(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + WithCountryCode(phone, f.countryCode) + "?text=" + escaped
}

func (f *Formatter) message(kind Kind, client models.Client, text string) Message {
	return Message{
		Kind: kind,
		To:   WithCountryCode(client.Phone, f.countryCode),
		Text: text,
		Link: f.Link(client.Phone, text),
	}
}

// ===============================
// Templates
// ===============================

func greeting(b *strings.Builder, client models.Client) {
	fmt.Fprintf(b, "🏋️‍♂️ *Hola %s!*\n\n", client.Name)
}

func footer(b *strings.Builder) {
	b.WriteString("\n---\n")
	b.WriteString(signature)
}

// PaymentReminder avisa sobre um pagamento pendente ou vencido.
// today é a data local do treinador (YYYY-MM-DD); checkoutURL é opcional.
func (f *Formatter) PaymentReminder(p models.Payment, client models.Client, today, checkoutURL string) Message {
	var b strings.Builder
	greeting(&b, client)

	days, known := daysBetween(today, p.DueDate)
	overdue := known && days > 0

	switch {
	case overdue:
		fmt.Fprintf(&b, "⚠️ *PAGO VENCIDO* (%d días de atraso)\n\n", days)
	case known && days == 0:
		b.WriteString("⏰ *Vence hoy*\n\n")
	case known && -days <= urgentDays:
		fmt.Fprintf(&b, "⏰ *Vence en %d días*\n\n", -days)
	}

	state := "pendiente"
	if overdue {
		state = "vencido"
	}
	fmt.Fprintf(&b, "Te recordamos que tienes un pago %s:\n\n", state)
	fmt.Fprintf(&b, "💰 *Monto:* %s\n", Currency(p.Amount))
	fmt.Fprintf(&b, "📅 *Vencimiento:* %s\n", Date(p.DueDate))
	if p.PaymentMethod != "" {
		fmt.Fprintf(&b, "💳 *Método:* %s\n", p.PaymentMethod)
	}
	if checkoutURL != "" {
		fmt.Fprintf(&b, "🔗 *Pagar online:* %s\n", checkoutURL)
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Notas:* %s\n", p.Notes)
	}

	if overdue {
		b.WriteString("\nPor favor, regulariza tu pago lo antes posible. 🙏\n")
	} else {
		b.WriteString("\n¡Gracias por tu confianza! 🙏\n")
	}
	footer(&b)

	return f.message(KindPaymentReminder, client, b.String())
}

func (f *Formatter) SessionReminder(s models.Session, client models.Client) Message {
	var b strings.Builder
	greeting(&b, client)

	b.WriteString("Te recordamos que tienes una sesión programada:\n\n")
	fmt.Fprintf(&b, "📅 *Fecha:* %s\n", Date(s.SessionDate))
	fmt.Fprintf(&b, "⏰ *Hora:* %s\n", s.SessionTime)
	if s.Notes != "" {
		fmt.Fprintf(&b, "📝 *Notas:* %s\n", s.Notes)
	}
	b.WriteString("\n¡Nos vemos pronto! 💪\n")
	footer(&b)

	return f.message(KindSessionReminder, client, b.String())
}

func (f *Formatter) Custom(client models.Client, text string) Message {
	var b strings.Builder
	greeting(&b, client)
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n")
	footer(&b)

	return f.message(KindCustom, client, b.String())
}

// ===============================
// es-AR formatting
// ===============================

// Currency formata como pesos argentinos: $ 12.345,67
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole, cents, _ := strings.Cut(d.StringFixed(2), ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	return sign + "$ " + grouped.String() + "," + cents
}

// Date converte YYYY-MM-DD em d/m/aaaa; devolve a entrada se não for uma data.
func Date(iso string) string {
	t, err := time.Parse(timezone.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("2/1/2006")
}

// daysBetween devolve from - to em dias.
func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(timezone.DateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(timezone.DateLayout, to)
	if err != nil {
		return 0, false
	}
	return int(a.Sub(b).Hours() / 24), true
}
