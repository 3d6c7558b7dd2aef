package service

import (
	"fmt"
	"log"
	"os"
	"strings"

	"turnero/internal/entities"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends the outbound booking notifications: a WhatsApp
// confirmation to the patient via Twilio and a courtesy email to the
// office inbox via SendGrid.
type NotifyService struct {
}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// SendWhatsApp delivers one WhatsApp message through the Twilio API.
// Twilio expects both addresses with the "whatsapp:" prefix.
func (s *NotifyService) SendWhatsApp(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_WHATSAPP_FROM")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("ADVERTENCIA: Twilio credentials (SID, token or from number) are not configured. Message will not be sent.")
		return fmt.Errorf("twilio credentials not fully configured")
	}

	if !strings.HasPrefix(toNumber, "whatsapp:") {
		toNumber = "whatsapp:" + toNumber
	}
	if !strings.HasPrefix(fromNumber, "whatsapp:") {
		fromNumber = "whatsapp:" + fromNumber
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending WhatsApp message to %s via Twilio: %v", toNumber, err)
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Printf("WhatsApp message sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}

// SendBookingEmail mails the office a copy of each confirmed booking.
// Runs in the background and only logs on failure; the booking is already
// committed by the time this is called.
func (s *NotifyService) SendBookingEmail(conf entities.BookingConfirmation) {
	toEmail := os.Getenv("OFFICE_NOTIFY_EMAIL")
	if toEmail == "" {
		return
	}

	subject := fmt.Sprintf("Nuevo turno: %s - %s %s", conf.Practitioner, conf.DateFormatted, conf.Time)
	plainTextBody := fmt.Sprintf(
		"Se reservó un nuevo turno.\n\n"+
			"Médico: %s\n"+
			"Fecha: %s\n"+
			"Hora: %s\n"+
			"Paciente: %s\n"+
			"Teléfono: %s\n",
		conf.Practitioner, conf.DateFormatted, conf.Time, conf.PatientName, conf.PatientPhone,
	)

	go func() {
		if err := sendEmailWithSendGrid(toEmail, "Consultorio", subject, plainTextBody); err != nil {
			log.Printf("ALERTA (async): office email for slot %s failed: %v", conf.SlotID, err)
		}
	}()
}

func sendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		log.Println("ADVERTENCIA: SENDGRID_API_KEY is not configured. Email will not be sent.")
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("ADVERTENCIA: SENDGRID_FROM_EMAIL is not configured. Email will not be sent.")
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Consultorio Médico"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, plainTextContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email through SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (subject: %s). Status: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}
