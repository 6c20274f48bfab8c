package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	pathCart       = "/orders/cart/"
	pathCartAdd    = "/orders/cart/add/"
	pathCartReduce = "/orders/cart/reduce/"
	pathCartRemove = "/orders/cart/remove/"
)

// GetCart never fails on a malformed 2xx body: it logs and reports an empty cart.
func (c *Client) GetCart(ctx context.Context) (*entity.Cart, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, pathCart, nil)
	if err != nil {
		return nil, transportFailure("Failed to fetch cart", err)
	}
	if !resp.ok() {
		message := resp.detail()
		if message == "" {
			message = fmt.Sprintf("Failed to fetch cart (%d: %s)", resp.status, http.StatusText(resp.status))
		}

		return nil, fetchFailure(resp, message, false)
	}

	cart := &entity.Cart{Lines: []entity.CartLine{}, Total: decimal.Zero}

	body := bytes.TrimSpace(resp.body)
	if len(body) == 0 || body[0] != '{' {
		c.log(ctx).Warn("Cart response is not an object", slog.Int("bytes", len(body)))

		return cart, nil
	}

	var wire cartWire
	if err := json.Unmarshal(body, &wire); err != nil {
		c.log(ctx).Warn("Cart response could not be decoded", slog.Any("error", err))

		return cart, nil
	}

	cart.ID = wire.ID
	cart.Lines = c.decodeLines(ctx, wire.Items)
	cart.Total = parseDecimal(wire.Total)

	return cart, nil
}

func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*entity.CartLine, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, pathCartAdd, addToCartWire{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, transportFailure("Failed to add to cart", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to add to cart", false)
	}

	return c.decodeLineBody(ctx, resp.body), nil
}

func (c *Client) ReduceFromCart(ctx context.Context, productID int64, quantity int) (*entity.CartLine, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, pathCartReduce, addToCartWire{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, transportFailure("Failed to reduce from cart", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to reduce from cart", false)
	}

	return c.decodeLineBody(ctx, resp.body), nil
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, idPath(pathCartRemove, productID), nil)
	if err != nil {
		return transportFailure("Failed to delete cart item", err)
	}
	if !resp.ok() {
		return fetchFailure(resp, "Failed to delete cart item", false)
	}

	return nil
}

// decodeLineBody returns nil when the mutation succeeded but the echoed line is unusable.
func (c *Client) decodeLineBody(ctx context.Context, body []byte) *entity.CartLine {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	line, ok := c.decodeLine(body)
	if !ok {
		c.log(ctx).Debug("Cart mutation response carries no usable line")

		return nil
	}

	return &line
}

// decodeLines tolerates a missing, null or non-list items field and skips malformed entries.
func (c *Client) decodeLines(ctx context.Context, raw json.RawMessage) []entity.CartLine {
	lines := []entity.CartLine{}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return lines
	}
	if raw[0] != '[' {
		c.log(ctx).Warn("Cart items is not a list")

		return lines
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log(ctx).Warn("Cart items could not be decoded", slog.Any("error", err))

		return lines
	}

	for i, item := range items {
		line, ok := c.decodeLine(item)
		if !ok {
			c.log(ctx).Warn("Skipping malformed cart item", slog.Int("index", i))

			continue
		}
		lines = append(lines, line)
	}

	return lines
}

func (c *Client) decodeLine(raw json.RawMessage) (entity.CartLine, bool) {
	var wire cartItemWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return entity.CartLine{}, false
	}
	if wire.Product == nil || wire.Quantity < 1 {
		return entity.CartLine{}, false
	}
	if err := c.validate.Validate(wire.Product); err != nil {
		return entity.CartLine{}, false
	}

	return entity.CartLine{ID: wire.ID, Product: wire.Product.toEntity(), Quantity: wire.Quantity}, true
}
