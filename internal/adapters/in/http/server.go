// Package http exposes the escrow ledger over a JSON API. The caller address
// arrives in the X-Caller-Address header; authorization itself happens in the
// application layer, the transport only parses and forwards the address.
package http

import (
	"net/http"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CallerHeader carries the address the request acts as.
const CallerHeader = "X-Caller-Address"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	payOrderHandler         commands.PayOrderCommandHandler
	shipOrderHandler        commands.MarkOrderAsShippedCommandHandler
	deliverOrderHandler     commands.MarkOrderAsDeliveredCommandHandler
	returnOrderHandler      commands.MarkOrderAsReturnedCommandHandler
	refundOrderHandler      commands.RefundOrderCommandHandler
	settleOrderHandler      commands.UpdateOwnersBalanceCommandHandler
	withdrawHandler         commands.WithdrawOwnersBalanceCommandHandler
	addPartnerHandler       commands.AddDeliveryPartnerCommandHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getOpenOrdersHandler    queries.GetOpenOrdersQueryHandler
	getOrderEventsHandler   queries.GetOrderEventsQueryHandler
	getOwnersBalanceHandler queries.GetOwnersBalanceQueryHandler
	isPartnerHandler        queries.IsDeliveryPartnerQueryHandler
	getOwnerHandler         queries.GetOwnerQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	shipOrderHandler commands.MarkOrderAsShippedCommandHandler,
	deliverOrderHandler commands.MarkOrderAsDeliveredCommandHandler,
	returnOrderHandler commands.MarkOrderAsReturnedCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	settleOrderHandler commands.UpdateOwnersBalanceCommandHandler,
	withdrawHandler commands.WithdrawOwnersBalanceCommandHandler,
	addPartnerHandler commands.AddDeliveryPartnerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderEventsHandler queries.GetOrderEventsQueryHandler,
	getOwnersBalanceHandler queries.GetOwnersBalanceQueryHandler,
	isPartnerHandler queries.IsDeliveryPartnerQueryHandler,
	getOwnerHandler queries.GetOwnerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		payOrderHandler:         payOrderHandler,
		shipOrderHandler:        shipOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		returnOrderHandler:      returnOrderHandler,
		refundOrderHandler:      refundOrderHandler,
		settleOrderHandler:      settleOrderHandler,
		withdrawHandler:         withdrawHandler,
		addPartnerHandler:       addPartnerHandler,
		getOrderHandler:         getOrderHandler,
		getOpenOrdersHandler:    getOpenOrdersHandler,
		getOrderEventsHandler:   getOrderEventsHandler,
		getOwnersBalanceHandler: getOwnersBalanceHandler,
		isPartnerHandler:        isPartnerHandler,
		getOwnerHandler:         getOwnerHandler,
	}
}

// RegisterRoutes binds every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOpenOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/events", s.GetOrderEvents)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.POST("/orders/:id/shipment", s.ShipOrder)
	api.POST("/orders/:id/delivery", s.DeliverOrder)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/refunds", s.RefundOrder)
	api.POST("/settlements", s.SettleOrder)
	api.POST("/settlements/withdrawal", s.Withdraw)
	api.POST("/partners", s.AddPartner)
	api.GET("/partners/:address", s.IsPartner)
	api.GET("/balance", s.GetOwnersBalance)
	api.GET("/owner", s.GetOwner)
}

// caller parses the X-Caller-Address header.
func caller(ctx echo.Context) (kernel.Address, error) {
	raw := ctx.Request().Header.Get(CallerHeader)
	if raw == "" {
		return kernel.Address{}, echo.NewHTTPError(http.StatusUnauthorized,
			CallerHeader+" header is required")
	}

	addr, err := kernel.AddressFromString(raw)
	if err != nil {
		return kernel.Address{}, echo.NewHTTPError(http.StatusUnauthorized,
			CallerHeader+" header is not a valid address")
	}
	return addr, nil
}

func orderIDParam(ctx echo.Context) (kernel.OrderID, error) {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.OrderID{}, echo.NewHTTPError(http.StatusBadRequest,
			"order id is not valid")
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	customer, err := kernel.AddressFromString(req.Customer)
	if err != nil {
		return respondError(ctx, err)
	}
	amount, err := kernel.NewAmount(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}
	number, err := kernel.NewOrderNumber(req.Number)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(from, customer, amount, number)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// PayOrder handles POST /api/v1/orders/:id/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	var req PayOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	amount, err := kernel.NewAmount(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(from, id, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/shipment.
func (s *Server) ShipOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderAsShippedCommand(from, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/delivery.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderAsDeliveredCommand(from, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderAsReturnedCommand(from, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/refunds.
func (s *Server) RefundOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	var req OrderNumberRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	number, err := kernel.NewOrderNumber(req.Number)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRefundOrderCommand(from, number)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SettleOrder handles POST /api/v1/settlements.
func (s *Server) SettleOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	var req OrderNumberRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	number, err := kernel.NewOrderNumber(req.Number)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOwnersBalanceCommand(from, number)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Withdraw handles POST /api/v1/settlements/withdrawal.
func (s *Server) Withdraw(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewWithdrawOwnersBalanceCommand(from)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.withdrawHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddPartner handles POST /api/v1/partners.
func (s *Server) AddPartner(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	var req AddPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	partner, err := kernel.AddressFromString(req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDeliveryPartnerCommand(from, partner)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// IsPartner handles GET /api/v1/partners/:address.
func (s *Server) IsPartner(ctx echo.Context) error {
	addr, err := kernel.AddressFromString(ctx.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "address is not valid")
	}

	query, err := queries.NewIsDeliveryPartnerQuery(addr)
	if err != nil {
		return respondError(ctx, err)
	}

	isPartner, err := s.isPartnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PartnerStatus{Address: addr.String(), IsPartner: isPartner})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(from, id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetOpenOrders handles GET /api/v1/orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOpenOrdersQuery(from)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderEvents handles GET /api/v1/orders/:id/events.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}
	id, err := orderIDParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderEventsQuery(from, id)
	if err != nil {
		return respondError(ctx, err)
	}

	trail, err := s.getOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderEvent, len(trail))
	for i, e := range trail {
		response[i] = OrderEvent{
			Name:       string(e.Name),
			Actor:      e.Actor.String(),
			Status:     e.Status.String(),
			Amount:     e.Amount.Int64(),
			OccurredAt: e.OccurredAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOwnersBalance handles GET /api/v1/balance.
func (s *Server) GetOwnersBalance(ctx echo.Context) error {
	from, err := caller(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOwnersBalanceQuery(from)
	if err != nil {
		return respondError(ctx, err)
	}

	balance, err := s.getOwnersBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Balance{Balance: balance})
}

// GetOwner handles GET /api/v1/owner.
func (s *Server) GetOwner(ctx echo.Context) error {
	owner, err := s.getOwnerHandler.Handle(ctx.Request().Context(), queries.NewGetOwnerQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Owner{Owner: owner.String()})
}

func toOrderResponse(resp queries.GetOrderQueryResponse) Order {
	return Order{
		ID:          resp.ID.String(),
		Number:      resp.Number.String(),
		Customer:    resp.Customer.String(),
		Amount:      resp.Amount.Int64(),
		Status:      resp.Status.String(),
		CreatedAt:   resp.CreatedAt,
		PaidAt:      resp.PaidAt,
		ShippedAt:   resp.ShippedAt,
		DeliveredAt: resp.DeliveredAt,
		ReturnedAt:  resp.ReturnedAt,
		RefundedAt:  resp.RefundedAt,
		ClosedAt:    resp.ClosedAt,
	}
}
