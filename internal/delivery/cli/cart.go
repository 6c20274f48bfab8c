package cli

import (
	"context"
	"fmt"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// Cart failures are reported through the notifier, so their errors are marked as already shown.

func (a *App) handleCart(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	a.printCart(a.cart.Refresh(ctx))

	return nil
}

func (a *App) handleCartAdd(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart-add")
	quantity := cmd.Int("quantity", 1, "Units to add")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	product, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	if !product.InStock() {
		return errors.Errorf("%s is out of stock", product.Name)
	}

	if err := a.cart.AddToCart(ctx, product, *quantity); err != nil {
		return reported(err)
	}
	a.printCartSummary(a.cart.State())

	return nil
}

func (a *App) handleCartUpdate(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart-update")
	quantity := cmd.Int("quantity", -1, "New quantity; 0 removes the line")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}
	if *quantity < 0 {
		return errors.Wrap(ErrUsage, "cart-update requires -quantity")
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	a.cart.Refresh(ctx)
	if err := a.cart.UpdateQuantity(ctx, id, *quantity); err != nil {
		return reported(err)
	}
	a.printCart(a.cart.State())

	return nil
}

func (a *App) handleCartReduce(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart-reduce")
	quantity := cmd.Int("quantity", 1, "Units to take off")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	if err := a.cart.ReduceQuantity(ctx, id, *quantity); err != nil {
		return reported(err)
	}
	a.printCart(a.cart.State())

	return nil
}

func (a *App) handleCartRemove(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart-remove")
	id, err := parseWithID(cmd, args)
	if err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	if err := a.cart.RemoveFromCart(ctx, id); err != nil {
		return reported(err)
	}
	a.printCartSummary(a.cart.State())

	return nil
}

func (a *App) handleCartClear(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("cart-clear")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	a.cart.Refresh(ctx)
	if err := a.cart.ClearCart(ctx); err != nil {
		return reported(err)
	}
	a.printCartSummary(a.cart.State())

	return nil
}

func (a *App) handleCheckout(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("checkout")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}
	if err := a.requireSignIn(); err != nil {
		return err
	}

	a.cart.Refresh(ctx)
	order, err := a.cart.Checkout(ctx)
	if err != nil {
		return reported(err)
	}
	a.printOrder(order)

	return nil
}

func (a *App) handleOrders(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("orders")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	orders, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")

		return nil
	}
	for i, order := range orders {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		a.printOrder(order)
	}

	return nil
}

func (a *App) requireSignIn() error {
	if a.auth.IsAuthenticated() {
		return nil
	}

	return errors.WithStack(domainerrors.ErrNotAuthenticated)
}
