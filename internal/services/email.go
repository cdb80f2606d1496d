package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"gliitz-backend/internal/models"
)

type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	devMode bool
}

func NewEmailService(host, port, user, pass, from string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		devMode: devMode,
	}
}

// SendBookingRequest notifies the concierge desk that a member wants a
// reservation placed. The desk replies to the member directly; this service
// only dispatches.
func (s *EmailService) SendBookingRequest(to string, booking *models.BookingRequest, member *models.User, venueName string) error {
	subject := fmt.Sprintf("[Gliitz] Nouvelle demande %s — %s", booking.Category, member.FullName)

	var lines []string
	lines = append(lines, fmt.Sprintf("Membre : %s (%s)", member.FullName, member.Email))
	if member.Phone != nil && *member.Phone != "" {
		lines = append(lines, "Téléphone : "+*member.Phone)
	}
	lines = append(lines, "Catégorie : "+booking.Category)
	if venueName != "" {
		lines = append(lines, "Établissement : "+venueName)
	}
	if booking.PartySize != nil {
		lines = append(lines, fmt.Sprintf("Nombre de personnes : %d", *booking.PartySize))
	}
	if booking.Timeframe != nil && *booking.Timeframe != "" {
		lines = append(lines, "Quand : "+*booking.Timeframe)
	}
	if booking.Notes != nil && *booking.Notes != "" {
		lines = append(lines, "Notes : "+*booking.Notes)
	}
	lines = append(lines, "", "Référence : "+booking.ID.String())

	body := strings.Join(lines, "\r\n")
	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.devMode {
		log.Printf("📧 [DEV] To: %s | Subject: %s\n%s", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := s.host + ":" + s.port

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
