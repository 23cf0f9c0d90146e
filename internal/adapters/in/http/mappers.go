package http

import (
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toOrderLines(items []servers.LineItemInput) []commands.OrderLine {
	lines := make([]commands.OrderLine, len(items))
	for i, item := range items {
		lines[i] = commands.OrderLine{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    int(item.Quantity),
		}
	}
	return lines
}

func toOrder(o *order.Order) servers.Order {
	items := make([]servers.LineItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.LineItem{
			Id:          toAPIID(item.ID()),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    int32(item.Quantity()), //nolint:gosec // bounded by order.MaxQuantity
			Total:       item.Total(),
		}
	}

	return servers.Order{
		Id:               toAPIID(o.ID()),
		CustomerId:       toAPIID(o.CustomerID()),
		OrderDate:        o.OrderDate(),
		Items:            items,
		TotalAmount:      o.TotalAmount(),
		DiscountedAmount: o.DiscountedAmount(),
		Status:           servers.OrderStatus(o.Status().String()),
		FulfilledAt:      o.FulfilledAt(),
		TrackingNumber:   o.TrackingNumber(),
	}
}

func toCustomerOrder(row queries.GetCustomerOrdersQueryResponse) servers.CustomerOrder {
	return servers.CustomerOrder{
		Id:               toAPIID(row.ID),
		TrackingNumber:   row.TrackingNumber,
		Status:           servers.OrderStatus(row.Status.String()),
		OrderDate:        row.OrderDate,
		TotalAmount:      row.TotalAmount,
		DiscountedAmount: row.DiscountedAmount,
		FulfilledAt:      row.FulfilledAt,
	}
}

func toOrderSummary(row queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:               toAPIID(row.ID),
		TrackingNumber:   row.TrackingNumber,
		CustomerId:       toAPIID(row.CustomerID),
		CustomerName:     row.CustomerName,
		Status:           servers.OrderStatus(row.Status.String()),
		OrderDate:        row.OrderDate,
		TotalAmount:      row.TotalAmount,
		DiscountedAmount: row.DiscountedAmount,
	}
}

func toCustomer(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:            toAPIID(c.ID()),
		FirstName:     c.FirstName(),
		LastName:      c.LastName(),
		Email:         c.Email(),
		Phone:         optional(c.Phone()),
		Segment:       servers.CustomerSegment(c.Segment().String()),
		TotalSpent:    c.TotalSpent(),
		OrderCount:    int32(c.OrderCount()), //nolint:gosec // counts orders, far below MaxInt32
		LastOrderDate: c.LastOrderDate(),
	}
}

func toCustomers(rows []queries.GetCustomersBySegmentQueryResponse) []servers.Customer {
	response := make([]servers.Customer, len(rows))
	for i, row := range rows {
		response[i] = servers.Customer{
			Id:            toAPIID(row.ID),
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Email:         row.Email,
			Segment:       servers.CustomerSegment(row.Segment.String()),
			TotalSpent:    row.TotalSpent,
			OrderCount:    int32(row.OrderCount), //nolint:gosec // see toCustomer
			LastOrderDate: row.LastOrderDate,
		}
	}
	return response
}

func toOrderAnalytics(report services.AnalyticsReport) servers.OrderAnalytics {
	return servers.OrderAnalytics{
		AverageOrderValue:             report.AverageOrderValue,
		AverageFulfillmentTimeSeconds: report.AverageFulfillmentTime.Seconds(),
		AverageFulfillmentTime:        report.AverageFulfillmentTime.String(),
		DeliveredOrders:               report.DeliveredOrders,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
