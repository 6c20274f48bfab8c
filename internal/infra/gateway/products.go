package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	pathProducts = "/products/"

	// imagesFieldName is the multipart field the backend reads uploaded images from.
	imagesFieldName = "images_upload"
)

// ListProducts skips entries that fail validation instead of failing the whole listing.
func (c *Client) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, pathProducts, nil)
	if err != nil {
		return nil, transportFailure("Failed to fetch products", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to fetch products", false)
	}

	items, ok := listItems(resp.body)
	if !ok {
		c.log(ctx).Warn("Product listing is not a list", slog.Int("bytes", len(resp.body)))

		return []*entity.Product{}, nil
	}

	products := make([]*entity.Product, 0, len(items))
	for i, raw := range items {
		var wire productWire
		if err := c.decodeValid(raw, &wire); err != nil {
			c.log(ctx).Warn("Skipping malformed product", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		product := wire.toEntity()
		products = append(products, &product)
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, idPath(pathProducts, id), nil)
	if err != nil {
		return nil, transportFailure("Failed to fetch product", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to fetch product", false)
	}

	return c.decodeProduct(resp.body)
}

func (c *Client) CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error) {
	resp, err := c.sendDraft(ctx, http.MethodPost, pathProducts, draft)
	if err != nil {
		return nil, transportFailure("Failed to create product", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to create product", true)
	}

	return c.decodeProduct(resp.body)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, draft *entity.ProductDraft) (*entity.Product, error) {
	resp, err := c.sendDraft(ctx, http.MethodPut, idPath(pathProducts, id), draft)
	if err != nil {
		return nil, transportFailure("Failed to update product", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to update product", false)
	}

	return c.decodeProduct(resp.body)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, idPath(pathProducts, id), nil)
	if err != nil {
		return transportFailure("Failed to delete product", err)
	}
	if !resp.ok() {
		return fetchFailure(resp, "Failed to delete product", false)
	}

	return nil
}

func (c *Client) decodeProduct(body []byte) (*entity.Product, error) {
	var wire productWire
	if err := c.decodeValid(body, &wire); err != nil {
		return nil, shapeFailure("product response", err)
	}
	product := wire.toEntity()

	return &product, nil
}

// sendDraft posts a draft as JSON, or as multipart form-data when it carries images.
func (c *Client) sendDraft(ctx context.Context, method, path string, draft *entity.ProductDraft) (*response, error) {
	wire := newDraftWire(draft)
	if len(draft.Images) == 0 {
		return c.doJSON(ctx, method, path, wire)
	}

	body, contentType, err := encodeMultipart(wire, draft.Images)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, method, path, body, contentType)
}

func encodeMultipart(wire draftWire, images []entity.ImageUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range wire.formFields() {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", field.name)
		}
	}

	for i, image := range images {
		if image.Content == nil {
			return nil, "", errors.Errorf("image %d has no content", i)
		}
		filename := filepath.Base(image.Filename)
		if filename == "." || filename == string(filepath.Separator) {
			filename = "image"
		}
		part, err := writer.CreateFormFile(imagesFieldName, filename)
		if err != nil {
			return nil, "", errors.Wrap(err, "create form file")
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", errors.Wrapf(err, "copy image %s", filename)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return &buf, writer.FormDataContentType(), nil
}

// listItems accepts a bare JSON array or a paginated {"results": [...]} envelope.
func listItems(body []byte) ([]json.RawMessage, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, false
	}

	switch body[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, false
		}

		return items, true
	case '{':
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &page); err != nil || len(page.Results) == 0 {
			return nil, false
		}

		return listItems(page.Results)
	default:
		return nil, false
	}
}
