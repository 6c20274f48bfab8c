package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/domain/entity"
)

const (
	pathOrders   = "/orders/"
	pathCheckout = "/orders/checkout/"
)

func (c *Client) Checkout(ctx context.Context) (*entity.Order, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, pathCheckout, nil)
	if err != nil {
		return nil, transportFailure("Failed to checkout", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to checkout", false)
	}

	var wire orderWire
	if err := c.decodeValid(resp.body, &wire); err != nil {
		return nil, shapeFailure("checkout response", err)
	}

	return c.toOrder(ctx, &wire), nil
}

func (c *Client) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, pathOrders, nil)
	if err != nil {
		return nil, transportFailure("Failed to fetch orders", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to fetch orders", false)
	}

	items, ok := listItems(resp.body)
	if !ok {
		c.log(ctx).Warn("Order listing is not a list", slog.Int("bytes", len(resp.body)))

		return []*entity.Order{}, nil
	}

	orders := make([]*entity.Order, 0, len(items))
	for i, raw := range items {
		var wire orderWire
		if err := c.decodeValid(raw, &wire); err != nil {
			c.log(ctx).Warn("Skipping malformed order", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		orders = append(orders, c.toOrder(ctx, &wire))
	}

	return orders, nil
}

func (c *Client) toOrder(ctx context.Context, wire *orderWire) *entity.Order {
	order := &entity.Order{
		ID:     wire.ID,
		Lines:  c.decodeLines(ctx, wire.Items),
		Total:  parseDecimal(wire.Total),
		Status: entity.OrderStatus(strings.ToLower(strings.TrimSpace(wire.Status))),
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusProcessing
	}
	if created := parseTime(wire.CreatedAt); created != nil {
		order.CreatedAt = *created
	}

	return order
}
