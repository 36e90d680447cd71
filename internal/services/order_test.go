package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/aaravmahajanofficial/shopfront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/shopfront/internal/services"
	svcMocks "github.com/aaravmahajanofficial/shopfront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	userID := uuid.New()
	lines := []models.OrderLine{
		{ProductID: uuid.NewString(), Name: "Teapot", Price: 100, Quantity: 2},
		{ProductID: uuid.NewString(), Name: "Blue Mug", Price: 50, Quantity: 1},
	}

	authedCtx := func(t *testing.T) context.Context {
		claims := &models.Claims{UserID: userID, Email: "ann@example.com"}
		return context.WithValue(t.Context(), middleware.UserContextKey, claims)
	}

	t.Run("Success - Total Computed And Status Unpaid", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		mailer := svcMocks.NewMailer(t)
		orderService := service.NewOrderService(repo, mailer)

		repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.UserID == userID && o.TotalAmount == 250 && o.Status == models.OrderStatusUnpaid && len(o.Lines) == 2
		})).Return(nil).Once()
		mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *models.EmailMessage) bool {
			return msg.To == "ann@example.com" && msg.Subject == "Order confirmation"
		})).Return(nil).Once()

		// Act
		order, err := orderService.PlaceOrder(authedCtx(t), userID, lines)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 250.0, order.TotalAmount)
		assert.Equal(t, models.OrderStatusUnpaid, order.Status)
		assert.NotEqual(t, uuid.Nil, order.ID)
	})

	t.Run("Success - Confirmation Escapes Line Names", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		mailer := svcMocks.NewMailer(t)
		orderService := service.NewOrderService(repo, mailer)

		var sent *models.EmailMessage
		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		mailer.On("Send", mock.Anything, mock.AnythingOfType("*models.EmailMessage")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*models.EmailMessage) }).
			Return(nil).Once()

		// Act
		_, err := orderService.PlaceOrder(authedCtx(t), userID, []models.OrderLine{{Name: "<b>Mug</b>", Price: 10, Quantity: 3}})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Contains(t, sent.Content, "3 x <b>Mug</b> @ 10.00")
		assert.Contains(t, sent.HTMLContent, "<li>3 x &lt;b&gt;Mug&lt;/b&gt; @ 10.00</li>")
		assert.Contains(t, sent.HTMLContent, "Total: 30.00")
	})

	t.Run("Success - Snapshot Is Independent Of Input", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		orderService := service.NewOrderService(repo, nil)
		input := append([]models.OrderLine(nil), lines...)

		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		// Act
		order, err := orderService.PlaceOrder(t.Context(), userID, input)
		input[0].Price = 1

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 100.0, order.Lines[0].Price)
		assert.Equal(t, 250.0, order.TotalAmount)
	})

	t.Run("Success - Mail Failure Does Not Fail Order", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		mailer := svcMocks.NewMailer(t)
		orderService := service.NewOrderService(repo, mailer)

		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		mailer.On("Send", mock.Anything, mock.AnythingOfType("*models.EmailMessage")).Return(errors.New("sendgrid down")).Once()

		// Act
		order, err := orderService.PlaceOrder(authedCtx(t), userID, lines)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, order)
	})

	t.Run("Success - No Recipient Skips Mail", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		mailer := svcMocks.NewMailer(t)
		orderService := service.NewOrderService(repo, mailer)

		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		// Act
		_, err := orderService.PlaceOrder(t.Context(), userID, lines)

		// Assert
		require.NoError(t, err)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		orderService := service.NewOrderService(mocks.NewOrderRepository(t), nil)

		_, err := orderService.PlaceOrder(t.Context(), userID, nil)

		requireAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Invalid Line", func(t *testing.T) {
		orderService := service.NewOrderService(mocks.NewOrderRepository(t), nil)

		_, err := orderService.PlaceOrder(t.Context(), userID, []models.OrderLine{{Name: "Teapot", Price: 10, Quantity: 0}})

		appErr := requireAppErrorCode(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, appErr.Detail, "quantity")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		orderService := service.NewOrderService(repo, nil)

		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(errors.New("db down")).Once()

		// Act
		order, err := orderService.PlaceOrder(t.Context(), userID, lines)

		// Assert
		assert.Nil(t, order)
		requireAppErrorCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		orderService := service.NewOrderService(repo, nil)
		orders := []*models.Order{{ID: uuid.New()}, {ID: uuid.New()}}

		repo.On("ListOrdersByUser", mock.Anything, userID).Return(orders, nil).Once()

		// Act
		result, err := orderService.ListOrders(t.Context(), userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orders, result)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		orderService := service.NewOrderService(repo, nil)

		repo.On("ListOrdersByUser", mock.Anything, userID).Return(nil, errors.New("db down")).Once()

		// Act
		_, err := orderService.ListOrders(t.Context(), userID)

		// Assert
		requireAppErrorCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}
