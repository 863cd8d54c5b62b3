package http

import (
	"log/slog"
	"net/http"

	"titipin/internal/adapters/in/ws"
	"titipin/internal/core/application/usecases/commands"
	"titipin/internal/core/application/usecases/queries"
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the marketplace.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	logger *slog.Logger

	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	submitOfferHandler       commands.SubmitOfferCommandHandler
	acceptOfferHandler       commands.AcceptOfferCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getMyOrdersHandler        queries.GetMyOrdersQueryHandler
	getOrderOffersHandler     queries.GetOrderOffersQueryHandler
	getChatListHandler        queries.GetChatListQueryHandler
	getMessagesHandler        queries.GetMessagesQueryHandler

	wsHandler *ws.Handler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	logger *slog.Logger,
	createOrderHandler commands.CreateOrderCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getOrderOffersHandler queries.GetOrderOffersQueryHandler,
	getChatListHandler queries.GetChatListQueryHandler,
	getMessagesHandler queries.GetMessagesQueryHandler,
	wsHandler *ws.Handler,
) *Server {
	return &Server{
		logger:                    logger.With("component", "http"),
		createOrderHandler:        createOrderHandler,
		submitOfferHandler:        submitOfferHandler,
		acceptOfferHandler:        acceptOfferHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		getAvailableOrdersHandler: getAvailableOrdersHandler,
		getMyOrdersHandler:        getMyOrdersHandler,
		getOrderOffersHandler:     getOrderOffersHandler,
		getChatListHandler:        getChatListHandler,
		getMessagesHandler:        getMessagesHandler,
		wsHandler:                 wsHandler,
	}
}

// RegisterRoutes mounts all endpoints. Everything except the health check
// sits behind the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	api := e.Group("", NewAuthMiddleware(jwtSecret))
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/my", s.GetMyOrders)
	api.POST("/orders/:id/update-status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/offers", s.GetOrderOffers)
	api.POST("/offers", s.SubmitOffer)
	api.POST("/offers/:id/accept", s.AcceptOffer)
	api.GET("/chats/my-list", s.GetChatList)
	api.GET("/chats/:orderId/messages", s.GetMessages)
	api.GET("/ws", s.ServeRealtime)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders - a customer publishes a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	destination, err := kernel.NewAddress(request.Destination)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, principal.UserID, request.ItemDescription, request.Quantity, destination)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetAvailableOrders handles GET /orders/available - orders open for bidding.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, kernel.RoleDeliverer); err != nil {
		return respondError(ctx, s.logger, err)
	}

	orders, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// GetMyOrders handles GET /orders/my - the caller's own orders, role-aware.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetMyOrdersQuery(principal.UserID, principal.Role)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orders, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// SubmitOffer handles POST /offers - a deliverer bids on an order.
// Resubmitting for the same order updates the existing offer's fee; the
// response carries the offer id either way.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, kernel.RoleDeliverer)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var request SubmitOfferRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return respondError(ctx, s.logger, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewSubmitOfferCommand(
		kernel.NewUUID(), orderID, principal.UserID, request.Fee)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	offerID, err := s.submitOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: offerID.String()})
}

// AcceptOffer handles POST /offers/:id/accept - the requester picks the
// winning offer. Losing a concurrent race surfaces as 409.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	offerID, err := s.pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, principal.UserID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	ord, err := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(ord))
}

// UpdateOrderStatus handles POST /orders/:id/update-status - moves the order
// along its lifecycle. Who may request which transition is decided by the
// access policy, not here.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, principal.UserID, principal.Role, target)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	ord, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(ord))
}

// CancelOrder handles POST /orders/:id/cancel - the requester withdraws the
// order before pickup.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	ord, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(ord))
}

// GetOrderOffers handles GET /orders/:id/offers - offers on the caller's
// order, cheapest first.
func (s *Server) GetOrderOffers(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderOffersQuery(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	offers, err := s.getOrderOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, offersFromQuery(offers))
}

// GetChatList handles GET /chats/my-list - the caller's active chat channels.
func (s *Server) GetChatList(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetChatListQuery(principal.UserID, principal.Role)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	chats, err := s.getChatListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, chatSummariesFromQuery(chats))
}

// GetMessages handles GET /chats/:orderId/messages - the channel history,
// oldest first. Participants only.
func (s *Server) GetMessages(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.pathID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetMessagesQuery(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	messages, err := s.getMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, messagesFromQuery(messages))
}

// ServeRealtime handles GET /ws - upgrades to the realtime chat channel.
func (s *Server) ServeRealtime(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return s.wsHandler.Serve(ctx, principal.UserID, principal.Name)
}

func (s *Server) principal(ctx echo.Context) (Principal, error) {
	principal, ok := principalFrom(ctx)
	if !ok {
		return Principal{}, errs.NewAccessDeniedError("authenticate", "unknown")
	}
	return principal, nil
}

// requireRole gates endpoints that only make sense for one side of the
// marketplace. Finer checks (ownership, assignment) live in the access policy.
func (s *Server) requireRole(ctx echo.Context, role kernel.Role) (Principal, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return Principal{}, err
	}

	if principal.Role != role {
		return Principal{}, errs.NewAccessDeniedError(
			"act as "+role.String(), principal.UserID.String())
	}

	return principal, nil
}

func (s *Server) pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
