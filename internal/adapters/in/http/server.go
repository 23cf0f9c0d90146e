package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// TotalCountHeader carries the number of orders across all pages of GET /api/v1/orders.
const TotalCountHeader = "X-Total-Count"

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	OrderStatusesChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusesCommand) ([]*order.Order, error)
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	CustomerCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	CustomerUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	CustomerDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error
	}
	CustomerSegmentChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeCustomerSegmentCommand) (*customer.Customer, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	OrdersPageLister interface {
		Handle(ctx context.Context, query queries.GetOrdersPageQuery) (queries.GetOrdersPageQueryResponse, error)
	}
	CustomerOrdersLister interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.GetCustomerOrdersQueryResponse, error)
	}
	CustomerGetter interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (*customer.Customer, error)
	}
	AllCustomersLister interface {
		Handle(ctx context.Context, query queries.GetAllCustomersQuery) ([]queries.GetAllCustomersQueryResponse, error)
	}
	CustomersBySegmentLister interface {
		Handle(
			ctx context.Context,
			query queries.GetCustomersBySegmentQuery,
		) ([]queries.GetCustomersBySegmentQueryResponse, error)
	}
	OrderAnalyticsReporter interface {
		Handle(ctx context.Context, query queries.GetOrderAnalyticsQuery) (services.AnalyticsReport, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder           OrderCreator
	UpdateOrder           OrderUpdater
	ChangeOrderStatus     OrderStatusChanger
	ChangeOrderStatuses   OrderStatusesChanger
	DeleteOrder           OrderDeleter
	CreateCustomer        CustomerCreator
	UpdateCustomer        CustomerUpdater
	DeleteCustomer        CustomerDeleter
	ChangeCustomerSegment CustomerSegmentChanger
	GetOrder              OrderGetter
	GetOrdersPage         OrdersPageLister
	GetCustomerOrders     CustomerOrdersLister
	GetCustomer           CustomerGetter
	GetAllCustomers       AllCustomersLister
	GetCustomersBySegment CustomersBySegmentLister
	GetOrderAnalytics     OrderAnalyticsReporter
}

var _ servers.ServerInterface = (*Server)(nil)

// Server handles HTTP requests by translating them into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID(req.CustomerId)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, toOrderLines(req.Items))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders serves one page of orders, newest first, and reports the overall count
// in the X-Total-Count header.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	page, pageSize := queries.DefaultPage, queries.DefaultPageSize
	if params.Page != nil {
		page = int(*params.Page)
	}
	if params.PageSize != nil {
		pageSize = int(*params.PageSize)
	}

	query, err := queries.NewGetOrdersPageQuery(page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.GetOrdersPage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.OrderSummary, len(result.Items))
	for i, row := range result.Items {
		response[i] = toOrderSummary(row)
	}

	ctx.Response().Header().Set(TotalCountHeader, strconv.FormatInt(result.Total, 10))
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder replaces customer, items and status and reprices the order.
func (s *Server) UpdateOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID(req.CustomerId)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, customerID, toOrderLines(req.Items), status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// ChangeOrderStatus moves the order along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	changed, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(changed))
}

// ChangeOrderStatuses moves every listed order to the same status. Either all of
// them move or none does.
func (s *Server) ChangeOrderStatuses(ctx echo.Context) error {
	var req servers.ChangeOrderStatusesJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, len(req.OrderIds))
	for i, id := range req.OrderIds {
		orderID, err := toKernelID(id)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderIDs[i] = orderID
	}

	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusesCommand(orderIDs, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.handlers.ChangeOrderStatuses.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderAnalytics reports on delivered orders placed between the optional dates.
// The end date is inclusive.
func (s *Server) GetOrderAnalytics(ctx echo.Context, params servers.GetOrderAnalyticsParams) error {
	query, err := queries.NewGetOrderAnalyticsQueryFromStrings(dateParam(params.StartDate), dateParam(params.EndDate))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.handlers.GetOrderAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrderAnalytics(report))
}

// CreateCustomer registers a customer. Purchase history fields are optional
// and let existing customers be migrated with their spend.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	segment := customer.Regular
	if req.Segment != nil {
		parsed, err := customer.ParseSegment(string(*req.Segment))
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		segment = parsed
	}

	var history *commands.PurchaseHistory
	if req.TotalSpent != nil || req.OrderCount != nil || req.LastOrderDate != nil {
		history = &commands.PurchaseHistory{
			TotalSpent:    decimal.Zero,
			OrderCount:    int(valueOf(req.OrderCount)),
			LastOrderDate: req.LastOrderDate,
		}
		if req.TotalSpent != nil {
			history.TotalSpent = *req.TotalSpent
		}
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), commands.CustomerProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     valueOf(req.Phone),
		Segment:   segment,
	}, history)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, toCustomer(created))
}

// ListCustomers lists every customer, or only one tier when segment is given.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	if params.Segment == nil {
		rows, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		return ctx.JSON(http.StatusOK, toCustomers(rows))
	}

	segment, err := customer.ParseSegment(string(*params.Segment))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCustomersBySegmentQuery(segment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.handlers.GetCustomersBySegment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toCustomers(rows))
}

func (s *Server) GetCustomer(ctx echo.Context, id servers.CustomerId) error {
	customerID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	c, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// UpdateCustomer overwrites name, contact details and tier. Purchase history is kept.
func (s *Server) UpdateCustomer(ctx echo.Context, id servers.CustomerId) error {
	customerID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	var req servers.UpdateCustomerJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	segment, err := customer.ParseSegment(string(req.Segment))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, commands.CustomerProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     valueOf(req.Phone),
		Segment:   segment,
	})
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	updated, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(updated))
}

// DeleteCustomer removes a customer. Customers who still have orders are kept
// and the request fails with 409.
func (s *Server) DeleteCustomer(ctx echo.Context, id servers.CustomerId) error {
	customerID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ChangeCustomerSegment(ctx echo.Context, id servers.CustomerId) error {
	customerID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	var req servers.ChangeCustomerSegmentJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	segment, err := customer.ParseSegment(string(req.Segment))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeCustomerSegmentCommand(customerID, segment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	changed, err := s.handlers.ChangeCustomerSegment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(changed))
}

// GetCustomerOrders returns the order history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context, id servers.CustomerId) error {
	customerID, err := toKernelID(id)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.CustomerOrder, len(rows))
	for i, row := range rows {
		response[i] = toCustomerOrder(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func dateParam(d *openapi_types.Date) string {
	if d == nil {
		return ""
	}
	return d.Format(openapi_types.DateFormat)
}
