package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

const relatedLimit = 4

func (a *App) handleProducts(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("products")
	model := cmd.String("model", "", "Only show this brand (see: storefront models)")
	query := cmd.String("q", "", "Search name and description")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	products, err := a.catalog.List(ctx, entity.ProductFilter{Model: *model, Query: *query})
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found")

		return nil
	}

	a.printProducts(products)

	return nil
}

func (a *App) handleModels(_ context.Context, args []string) error {
	cmd := a.newFlagSet("models")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	for _, model := range a.catalog.Models() {
		fmt.Fprintln(a.out, model)
	}

	return nil
}

func (a *App) handleProduct(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("product")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}

	product, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printProduct(product, a.catalog.ImageFor(product))

	related, err := a.catalog.Related(ctx, product, relatedLimit)
	if err != nil {
		a.logger.Warn("Related products unavailable", slog.Any("error", err))

		return nil
	}
	if len(related) > 0 {
		fmt.Fprintln(a.out, "\nYou may also like:")
		a.printProducts(related)
	}

	return nil
}

func (a *App) handleQR(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("qr")
	out := cmd.String("out", "", "Write a PNG to this file instead of printing")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}

	product, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	if *out == "" {
		code, err := a.catalog.ShareQRText(product)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, code)

		return nil
	}

	png, err := a.catalog.ShareQR(product)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", *out)
	}
	fmt.Fprintf(a.out, "QR code for %s written to %s\n", product.Name, *out)

	return nil
}

func (a *App) handleProductCreate(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("product-create")
	flags := newDraftFlags(cmd)
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	draft, err := flags.draft()
	if err != nil {
		return err
	}
	closeImages, err := attachImages(draft, *flags.images)
	if err != nil {
		return err
	}
	defer closeImages()

	product, err := a.catalog.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created product %d: %s\n", product.ID, product.Name)

	return nil
}

func (a *App) handleProductUpdate(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("product-update")
	flags := newDraftFlags(cmd)
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}

	draft, err := flags.draft()
	if err != nil {
		return err
	}
	closeImages, err := attachImages(draft, *flags.images)
	if err != nil {
		return err
	}
	defer closeImages()

	product, err := a.catalog.Update(ctx, id, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated product %d: %s\n", product.ID, product.Name)

	return nil
}

func (a *App) handleProductDelete(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("product-delete")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}

	if err := a.catalog.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted product %d\n", id)

	return nil
}

// attachImages opens every path into draft.Images. The returned func closes them.
func attachImages(draft *entity.ProductDraft, paths []string) (func(), error) {
	var files []io.Closer
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()

			return func() {}, errors.Wrapf(err, "open image %s", path)
		}
		files = append(files, f)
		draft.Images = append(draft.Images, entity.ImageUpload{Filename: filepath.Base(path), Content: f})
	}

	return closeAll, nil
}
