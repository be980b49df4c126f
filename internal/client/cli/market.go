package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/services"
)

// Items lists the listings on sale.
func (a *App) Items(ctx context.Context, args []string) error {
	page, err := pageArg(args, "items [page]")
	if err != nil {
		return err
	}
	return a.listItems(ctx, client.ItemQuery{PageNo: page})
}

// Mine lists the signed-in user's own listings.
func (a *App) Mine(ctx context.Context, args []string) error {
	page, err := pageArg(args, "mine [page]")
	if err != nil {
		return err
	}
	if !a.sess.SignedIn() {
		return errNotSignedIn
	}
	return a.listItems(ctx, client.ItemQuery{SellerID: a.userID(), PageNo: page})
}

func (a *App) listItems(ctx context.Context, q client.ItemQuery) error {
	return runOp(ctx, a, func(ctx context.Context) services.Result[*models.ItemPage] {
		return a.market.ListItems(ctx, a.userID(), q)
	}, func(p *models.ItemPage) {
		printlnFn(formatPage(p))
	})
}

func (a *App) Item(ctx context.Context, args []string) error {
	id, err := idArg(args, "item <id>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[*models.Item] {
		return a.market.GetItem(ctx, a.userID(), id)
	}, func(it *models.Item) {
		printlnFn(formatItem(it))
	})
}

// Publish prompts for a new listing and creates it.
func (a *App) Publish(ctx context.Context) error {
	if !a.sess.SignedIn() {
		return errNotSignedIn
	}
	req, err := a.inputItem()
	if err != nil {
		return err
	}
	return a.publish(ctx, req)
}

func (a *App) publish(ctx context.Context, req models.CreateItemRequest) error {
	if !a.sess.SignedIn() {
		return errNotSignedIn
	}
	err := runOp(ctx, a, func(ctx context.Context) services.Result[int64] {
		return a.market.CreateItem(ctx, a.userID(), req)
	}, func(id int64) {
		printlnFn(fmt.Sprintf("Published item %d", id))
	})
	return withReplay(err, func(ctx context.Context) error {
		return a.publish(ctx, req)
	})
}

func (a *App) inputItem() (models.CreateItemRequest, error) {
	var zero models.CreateItemRequest

	name, err := getSimpleText(a.reader, "Enter item name", os.Stdout)
	if err != nil {
		return zero, fmt.Errorf("get name: %w", err)
	}
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return zero, fmt.Errorf("get description: %w", err)
	}
	price, err := a.inputAmount("Enter price")
	if err != nil {
		return zero, err
	}
	postage, err := a.inputAmount("Enter postage (empty for 0)")
	if err != nil {
		return zero, err
	}
	return models.NewCreateItemRequest(name, description, price, postage), nil
}

func (a *App) inputAmount(prompt string) (models.Amount, error) {
	amount, err := GetAmount(a.reader, prompt, os.Stdout)
	if errors.Is(err, ErrNotAnAmount) {
		return models.Amount{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	return amount, err
}

// Buy places an order for an item.
func (a *App) Buy(ctx context.Context, args []string) error {
	id, err := idArg(args, "buy <itemId>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[int64] {
		return a.market.CreateOrder(ctx, a.userID(), id)
	}, func(orderID int64) {
		printlnFn(fmt.Sprintf("Order %d created", orderID))
	})
}

func (a *App) Order(ctx context.Context, args []string) error {
	id, err := idArg(args, "order <id>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[*models.Order] {
		return a.market.GetOrder(ctx, a.userID(), id)
	}, func(o *models.Order) {
		printlnFn(formatOrder(o))
	})
}

func (a *App) Fav(ctx context.Context, args []string) error {
	id, err := idArg(args, "fav <itemId>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[struct{}] {
		return a.market.Favorite(ctx, a.userID(), id)
	}, func(struct{}) {
		printlnFn(fmt.Sprintf("Added item %d to favorites", id))
	})
}

func (a *App) Unfav(ctx context.Context, args []string) error {
	id, err := idArg(args, "unfav <itemId>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[struct{}] {
		return a.market.Unfavorite(ctx, a.userID(), id)
	}, func(struct{}) {
		printlnFn(fmt.Sprintf("Removed item %d from favorites", id))
	})
}
