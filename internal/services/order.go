package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/metrics"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/google/uuid"
)

// Mailer delivers transactional email. pkg/sendgrid satisfies it.
type Mailer interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []models.OrderLine) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
}

type orderService struct {
	repo   repository.OrderRepository
	mailer Mailer
}

// NewOrderService builds the checkout service. A nil mailer disables confirmation emails.
func NewOrderService(repo repository.OrderRepository, mailer Mailer) OrderService {
	return &orderService{repo: repo, mailer: mailer}
}

// PlaceOrder freezes the submitted lines into an unpaid order. The cart itself is left untouched.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []models.OrderLine) (*models.Order, error) {

	if len(lines) == 0 {
		return nil, errors.ValidationError("Cart is empty")
	}

	snapshot := make([]models.OrderLine, len(lines))
	var total float64

	for i, line := range lines {
		if strings.TrimSpace(line.Name) == "" {
			return nil, errors.ValidationError("Invalid cart line").WithDetail(fmt.Sprintf("line %d: name is required", i))
		}
		if line.Price < 0 {
			return nil, errors.ValidationError("Invalid cart line").WithDetail(fmt.Sprintf("line %d: price must not be negative", i))
		}
		if line.Quantity < 1 {
			return nil, errors.ValidationError("Invalid cart line").WithDetail(fmt.Sprintf("line %d: quantity must be at least 1", i))
		}

		snapshot[i] = line
		total += line.Price * float64(line.Quantity)
	}

	order := &models.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Lines:       snapshot,
		TotalAmount: total,
		Status:      models.OrderStatusUnpaid,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.RecordOrderPlaced()
	s.sendConfirmation(ctx, order)

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {

	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// sendConfirmation is best effort; a delivery failure never fails the order.
func (s *orderService) sendConfirmation(ctx context.Context, order *models.Order) {
	if s.mailer == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.ID.String()))

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok || claims.Email == "" {
		logger.Debug("No recipient for order confirmation")
		return
	}

	if err := s.mailer.Send(ctx, confirmationEmail(claims.Email, order)); err != nil {
		logger.Warn("Failed to send order confirmation", slog.Any("error", err))
		return
	}

	logger.Info("Order confirmation sent")
}

func confirmationEmail(to string, order *models.Order) *models.EmailMessage {
	var text, markup strings.Builder

	fmt.Fprintf(&text, "Thanks for your order %s.\n\n", order.ID)
	fmt.Fprintf(&markup, "<p>Thanks for your order %s.</p><ul>", order.ID)

	for _, line := range order.Lines {
		fmt.Fprintf(&text, "%d x %s @ %.2f\n", line.Quantity, line.Name, line.Price)
		fmt.Fprintf(&markup, "<li>%d x %s @ %.2f</li>", line.Quantity, html.EscapeString(line.Name), line.Price)
	}

	fmt.Fprintf(&text, "\nTotal: %.2f\nStatus: %s\n", order.TotalAmount, order.Status)
	fmt.Fprintf(&markup, "</ul><p>Total: %.2f<br>Status: %s</p>", order.TotalAmount, order.Status)

	return &models.EmailMessage{
		To:          to,
		Subject:     "Order confirmation",
		Content:     text.String(),
		HTMLContent: markup.String(),
	}
}
