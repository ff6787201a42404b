package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	sendgridClient "github.com/aaravmahajanofficial/bike-storefront/pkg/sendgrid"
	"github.com/go-playground/validator/v10"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
	Drain(ctx context.Context, sessionID string) []models.Toast
}

// ToastInbox is where session toasts wait to be fetched.
type ToastInbox interface {
	Drain(sessionID string) []models.Toast
}

type notificationService struct {
	emailService sendgridClient.EmailService
	inbox        ToastInbox
	validate     *validator.Validate
}

// NewNotificationService wires email delivery and the toast inbox.
// emailService may be nil, in which case confirmation emails are skipped.
func NewNotificationService(emailService sendgridClient.EmailService, inbox ToastInbox, validate *validator.Validate) NotificationService {
	return &notificationService{emailService: emailService, inbox: inbox, validate: validate}
}

func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	if n.emailService == nil {
		return nil
	}

	req := orderConfirmationEmail(order)

	if err := utils.ValidateStruct(n.validate, req); err != nil {
		return errors.ValidationError("Invalid confirmation email").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return errors.ThirdPartyError("Failed to send confirmation email").WithError(err)
	}

	return nil
}

func (n *notificationService) Drain(_ context.Context, sessionID string) []models.Toast {
	return n.inbox.Drain(sessionID)
}

func orderConfirmationEmail(order *models.Order) *models.EmailNotificationRequest {
	var text, rows strings.Builder

	fmt.Fprintf(&text, "Hi %s,\n\nThank you for your order %s.\n\n", order.ShippingInfo.Name, order.ID)

	for _, item := range order.Items {
		fmt.Fprintf(&text, "%d x %s  %s\n", item.Quantity, item.Product.Name, catalog.FormatPrice(item.Subtotal()))
		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>",
			item.Quantity, html.EscapeString(item.Product.Name), catalog.FormatPrice(item.Subtotal()))
	}

	shipping := "Free"
	if order.Summary.Shipping > 0 {
		shipping = catalog.FormatPrice(order.Summary.Shipping)
	}

	fmt.Fprintf(&text, "\nSubtotal: %s\nShipping: %s\nTax: %s\nTotal: %s\n",
		order.Summary.FormattedSubtotal, shipping, order.Summary.FormattedTax, order.Summary.FormattedTotal)

	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thank you for your order <strong>%s</strong>.</p><table>%s</table><p>Total: <strong>%s</strong></p>",
		html.EscapeString(order.ShippingInfo.Name), order.ID, rows.String(), order.Summary.FormattedTotal)

	return &models.EmailNotificationRequest{
		To:          order.ShippingInfo.Email,
		Subject:     fmt.Sprintf("Order confirmed: %s", order.ID),
		Content:     text.String(),
		HTMLContent: htmlContent,
	}
}
