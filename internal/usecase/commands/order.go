package commands

import (
	"context"
	"errors"

	"servicedesk/internal/domain/order"
	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/clock"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart      = errs.New("cart is empty")
	ErrInvalidService = errs.New("service offering is not available")
	ErrCheckoutFailed = errs.New("checkout failed")
	ErrInvalidStatus  = errs.New("invalid status")
)

type OrderCommands interface {
	// AddToCart appends a line to the actor's session cart. The offering
	// must exist and be active at add time.
	AddToCart(ctx context.Context, actor shared.Actor, req reqdto.AddToCartRequest) error
	// ViewCart joins the session lines against current prices. Display
	// only; checkout re-reads prices inside its transaction.
	ViewCart(ctx context.Context, actor shared.Actor) (*queries.CartView, error)
	// Checkout turns the cart into a ServiceRequest atomically. The cart
	// survives any failure and is cleared only after commit.
	Checkout(ctx context.Context, actor shared.Actor) (*queries.RequestView, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, requestID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	carts CartStore
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, carts CartStore, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:   uow,
		carts: carts,
		clock: clk,
	}
}

func (o *orderCommandsImpl) AddToCart(ctx context.Context, actor shared.Actor, req reqdto.AddToCartRequest) error {
	if !user.CanCheckout(actor.Role) {
		return errs.ErrForbidden
	}

	line, err := order.NewCartLine(req.ServiceID, req.Quantity)
	if err != nil {
		return err
	}

	snap, err := o.uow.CommandReads().OfferingByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInvalidService)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return ErrInvalidService
	}

	o.carts.Add(actor.ID, line)
	return nil
}

func (o *orderCommandsImpl) ViewCart(ctx context.Context, actor shared.Actor) (*queries.CartView, error) {
	if !user.CanCheckout(actor.Role) {
		return nil, errs.ErrForbidden
	}

	lines := o.carts.Lines(actor.ID)
	view := &queries.CartView{Total: order.Total(nil)}

	reads := o.uow.CommandReads()
	var priced []order.PricedLine
	for _, line := range lines {
		snap, err := reads.OfferingByID(ctx, line.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Offering vanished since add; show the line without a price.
				continue
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		pl := order.PricedLine{ServiceID: line.ServiceID, Quantity: line.Quantity, UnitPrice: snap.UnitPrice}
		priced = append(priced, pl)
		view.Lines = append(view.Lines, queries.CartLineView{
			ServiceID:   line.ServiceID,
			ServiceName: snap.Name,
			UnitPrice:   snap.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    pl.Subtotal(),
		})
	}
	view.Total = order.Total(priced)
	return view, nil
}

func (o *orderCommandsImpl) Checkout(ctx context.Context, actor shared.Actor) (*queries.RequestView, error) {
	if !user.CanCheckout(actor.Role) {
		return nil, errs.ErrForbidden
	}

	lines := o.carts.Lines(actor.ID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	req := order.NewServiceRequest(actor.ID, o.clock.Now())
	var items []queries.RequestItemView

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requestID, createErr := tx.Orders().CreateRequest(ctx, tx.DB(), req)
		if createErr != nil {
			return createErr
		}

		var priced []order.PricedLine
		items = items[:0]
		for _, line := range lines {
			// Prices are re-read inside the transaction; the catalog price
			// at checkout wins over whatever the cart displayed.
			snap, readErr := tx.Reads().OfferingByID(ctx, line.ServiceID)
			if readErr != nil {
				if infra.IsKind(readErr, infra.KindNotFound) {
					return errs.Mark(readErr, ErrInvalidService)
				}
				return readErr
			}
			if !snap.IsActive {
				return ErrInvalidService
			}

			item, itemErr := order.NewServiceCartItem(requestID, line.ServiceID, line.Quantity)
			if itemErr != nil {
				return itemErr
			}
			if insErr := tx.Orders().CreateItem(ctx, tx.DB(), item); insErr != nil {
				return insErr
			}

			pl := order.PricedLine{ServiceID: line.ServiceID, Quantity: line.Quantity, UnitPrice: snap.UnitPrice}
			priced = append(priced, pl)
			items = append(items, queries.RequestItemView{
				ServiceID:   line.ServiceID,
				ServiceName: snap.Name,
				Quantity:    line.Quantity,
				UnitPrice:   snap.UnitPrice,
			})
		}

		req.SetTotal(order.Total(priced))
		return tx.Orders().UpdateTotal(ctx, tx.DB(), requestID, req.TotalPrice())
	})
	if err != nil {
		if errors.Is(err, ErrInvalidService) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	// Only a committed checkout consumes the cart.
	o.carts.Clear(actor.ID)

	return &queries.RequestView{
		ID:          req.ID(),
		UserID:      actor.ID,
		Username:    actor.Username,
		RequestDate: req.RequestDate(),
		Status:      req.Status().String(),
		TotalPrice:  req.TotalPrice(),
		Items:       items,
	}, nil
}

func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, requestID uuid.UUID, status string) error {
	if !actor.Role.IsStaff() {
		return errs.ErrForbidden
	}

	newStatus, err := order.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateStatus(ctx, tx.DB(), requestID, newStatus)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
