package services

import (
	"fmt"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient *resend.Client
	clientOnce  = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendLoginCodeEmail delivers a one-time sign-in code to a shopper
func (es *EmailService) SendLoginCodeEmail(email, code string, expiryMinutes float64) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Georgia, serif; line-height: 1.6; color: #3d2c29; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #9c6644; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #fdf8f4; }
				.code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; padding: 20px; background-color: white; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #8a7a72; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Your sign-in code</h1>
				</div>
				<div class="content">
					<p>Use this code to sign in to The Gifting Studio:</p>
					<p class="code">%s</p>
					<p>This code expires in %.0f minutes.</p>
					<p>If you did not request a sign-in code, you can safely ignore this email.</p>
				</div>
				<div class="footer">
					<p>The Gifting Studio | Thoughtful Gifts, Handpicked for You</p>
				</div>
			</div>
		</body>
		</html>
	`, code, expiryMinutes)

	return es.SendEmail([]string{email}, "Your sign-in code for The Gifting Studio", emailBody)
}

// SendOrderConfirmationEmail sends an order confirmation to the shopper
func (es *EmailService) SendOrderConfirmationEmail(email string, order *tables.Order) error {
	var itemsBuilder strings.Builder
	for _, line := range order.Lines {
		lineTotal := fmt.Sprintf("₹%.2f", float64(line.UnitPrice*int64(line.Quantity))/100)
		label := line.ProductName
		if line.Color != "" {
			label = fmt.Sprintf("%s (%s)", label, line.Color)
		}
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s - %s</li>", line.Quantity, label, lineTotal)
	}

	totalFormatted := fmt.Sprintf("₹%.2f", float64(order.TotalAmount)/100)
	addressFormatted := fmt.Sprintf("%s<br>%s<br>%s, %s %s",
		order.ShipName, order.ShipStreet, order.ShipCity, order.ShipState, order.ShipPincode)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Georgia, serif; line-height: 1.6; color: #3d2c29; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #9c6644; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #fdf8f4; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #8a7a72; font-size: 12px; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your order has been received. Below you will find the details.</p>

					<div class="order-details">
						<h3>Order Number: <strong>%s</strong></h3>
						<h4>Order Items:</h4>
						<ul>%s</ul>
						<p><strong>Total: %s</strong> (includes shipping)</p>

						<h4>Delivery Address:</h4>
						<p>%s</p>
					</div>

					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>The Gifting Studio | Thoughtful Gifts, Handpicked for You</p>
				</div>
			</div>
		</body>
		</html>
	`, order.ShipName, order.OrderNumber, itemsBuilder.String(), totalFormatted,
		addressFormatted, es.cfg.Email.SupportEmail)

	subject := fmt.Sprintf("Order confirmation %s", order.OrderNumber)

	return es.SendEmail([]string{email, es.cfg.Email.SupportEmail}, subject, emailBody)
}
