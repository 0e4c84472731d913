// Package notify delivers the booking confirmation side effects: an
// email to the customer with a scannable QR ticket attached. Delivery
// runs on its own goroutine after the booking commit; failures here are
// logged and dropped so they can never roll back or delay a booking.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"cinebook/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// BookingTicket carries everything the confirmation email and QR code
// need, so the notifier never touches the database.
type BookingTicket struct {
	BookingID    string
	CustomerName string
	Email        string
	MovieTitle   string
	HallName     string
	SeatLabel    string
	StartTime    time.Time
	Price        float64
}

type Notifier struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func New(cfg utils.EmailConfig, log *zap.Logger) *Notifier {
	return &Notifier{
		cfg: cfg,
		log: log.With(zap.String("component", "notify")),
	}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Booking confirmed</h2>
<p>Hi {{.CustomerName}},</p>
<p>Your booking <strong>{{.BookingID}}</strong> is confirmed:</p>
<ul>
	<li>Movie: {{.MovieTitle}}</li>
	<li>Hall: {{.HallName}}</li>
	{{if .SeatLabel}}<li>Seat: {{.SeatLabel}}</li>{{end}}
	<li>Starts: {{.StartTime.Format "2006-01-02 15:04"}}</li>
	<li>Price: {{printf "%.2f" .Price}}</li>
</ul>
<p>Show the attached QR code at the entrance.</p>
`))

// BookingConfirmed sends the confirmation asynchronously. It returns
// immediately; the caller's transaction is already committed.
func (n *Notifier) BookingConfirmed(ticket BookingTicket) {
	if n.cfg.Host == "" || ticket.Email == "" {
		return
	}

	go n.send(ticket)
}

func (n *Notifier) send(ticket BookingTicket) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, ticket); err != nil {
		n.log.Error("Failed to render confirmation email",
			zap.Error(err),
			zap.String("booking_id", ticket.BookingID),
		)
		return
	}

	png, err := TicketQR(ticket)
	if err != nil {
		n.log.Error("Failed to generate ticket QR code",
			zap.Error(err),
			zap.String("booking_id", ticket.BookingID),
		)
		// Send without the attachment rather than drop the email.
		png = nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", ticket.Email)
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmation %s", ticket.BookingID))
	m.SetBody("text/html", body.String())
	if png != nil {
		m.Attach("ticket.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}))
	}

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		n.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("booking_id", ticket.BookingID),
			zap.String("to", ticket.Email),
		)
		return
	}

	n.log.Info("Confirmation email sent",
		zap.String("booking_id", ticket.BookingID),
		zap.String("to", ticket.Email),
	)
}
