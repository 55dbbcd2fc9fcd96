package commands

import (
	"context"
	"errors"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/patch"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOfferingInUse = errs.New("service offering is referenced by existing orders")

type CatalogCommands interface {
	CreateOffering(ctx context.Context, actor shared.Actor, req reqdto.CreateOfferingRequest) (uuid.UUID, error)
	UpdateOffering(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateOfferingRequest) error
	DeactivateOffering(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	DeleteOffering(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) CreateOffering(ctx context.Context, actor shared.Actor, req reqdto.CreateOfferingRequest) (uuid.UUID, error) {
	if !user.CanManageCatalog(actor.Role) {
		return uuid.Nil, errs.ErrForbidden
	}

	unit, err := catalog.NewPricingUnit(req.PricingUnit)
	if err != nil {
		return uuid.Nil, err
	}
	requested, err := catalog.NewCategory(req.Category)
	if err != nil {
		return uuid.Nil, err
	}
	category := catalog.EffectiveCategory(actor.Role, requested)

	offering, err := catalog.NewServiceOffering(req.Name, req.Description, req.UnitPrice, unit, category)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Offerings().Create(ctx, tx.DB(), offering)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateOffering(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateOfferingRequest) error {
	unit, err := catalog.NewPricingUnit(req.PricingUnit)
	if err != nil {
		return err
	}
	requested, err := catalog.NewCategory(req.Category)
	if err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().OfferingByID(ctx, id)
		if readErr != nil {
			return readErr
		}

		current, catErr := catalog.NewCategory(snap.Category)
		if catErr != nil {
			return catErr
		}
		if !catalog.CanEditOffering(actor.Role, current) {
			return errs.ErrForbidden
		}

		category := catalog.EffectiveCategory(actor.Role, requested)

		// created_at/updated_at are owned by the database on writes
		offering := catalog.ReconstructServiceOffering(
			snap.ID, snap.Name, "", snap.UnitPrice, unit, current, snap.IsActive,
			time.Time{}, time.Time{},
		)
		if updErr := offering.Update(req.Name, req.Description, req.UnitPrice, unit, category); updErr != nil {
			return updErr
		}
		if !patch.Coalesce(req.IsActive, snap.IsActive) {
			offering.Deactivate()
		}

		return tx.Offerings().Update(ctx, tx.DB(), offering)
	})
	if err != nil {
		return translateCatalogErr(err)
	}
	return nil
}

func (c *catalogCommandsImpl) DeactivateOffering(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.guardedOfferingWrite(ctx, actor, id, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offerings().Deactivate(ctx, tx.DB(), id)
	})
}

func (c *catalogCommandsImpl) DeleteOffering(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.guardedOfferingWrite(ctx, actor, id, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offerings().Delete(ctx, tx.DB(), id)
	})
}

func (c *catalogCommandsImpl) guardedOfferingWrite(ctx context.Context, actor shared.Actor, id uuid.UUID, write func(ctx context.Context, tx shared.Tx) error) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().OfferingByID(ctx, id)
		if readErr != nil {
			return readErr
		}
		current, catErr := catalog.NewCategory(snap.Category)
		if catErr != nil {
			return catErr
		}
		if !catalog.CanEditOffering(actor.Role, current) {
			return errs.ErrForbidden
		}
		return write(ctx, tx)
	})
	if err != nil {
		return translateCatalogErr(err)
	}
	return nil
}

func translateCatalogErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrOfferingInUse)
	case isDomainValidationErr(err):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func isDomainValidationErr(err error) bool {
	return errors.Is(err, catalog.ErrEmptyName) ||
		errors.Is(err, catalog.ErrNegativePrice) ||
		errors.Is(err, catalog.ErrInvalidPricingUnit) ||
		errors.Is(err, catalog.ErrInvalidCategory)
}
