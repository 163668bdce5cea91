package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/link/inventory-platform/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository wraps an InventoryRepository with tracing
type TracingInventoryRepository struct {
	next domain.InventoryRepository
}

func NewTracingInventoryRepository(next domain.InventoryRepository) *TracingInventoryRepository {
	return &TracingInventoryRepository{next: next}
}

func (r *TracingInventoryRepository) Save(ctx context.Context, inventory *domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(inventory.ProductID)),
			attribute.Int("inventory.quantity", inventory.Quantity),
			attribute.String("inventory.location", inventory.Location),
		),
	)
	defer span.End()

	if err := r.next.Save(ctx, inventory); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inventory.ID)))
	return nil
}

func (r *TracingInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("inventory.id", int(id))),
	)
	defer span.End()

	inventory, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return inventory, nil
}

func (r *TracingInventoryRepository) FindByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByProductID",
		trace.WithAttributes(attribute.Int("inventory.product_id", int(productID))),
	)
	defer span.End()

	inventory, err := r.next.FindByProductID(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.quantity", inventory.Quantity))
	return inventory, nil
}

func (r *TracingInventoryRepository) ExistsByProductID(ctx context.Context, productID uint) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ExistsByProductID",
		trace.WithAttributes(attribute.Int("inventory.product_id", int(productID))),
	)
	defer span.End()

	exists, err := r.next.ExistsByProductID(ctx, productID)
	if err != nil {
		recordError(span, err)
		return false, err
	}

	span.SetAttributes(attribute.Bool("inventory.exists", exists))
	return exists, nil
}

func (r *TracingInventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int, at time.Time) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.AdjustQuantity",
		trace.WithAttributes(
			attribute.Int("inventory.id", int(id)),
			attribute.Int("inventory.delta", delta),
		),
	)
	defer span.End()

	inventory, err := r.next.AdjustQuantity(ctx, id, delta, at)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.quantity", inventory.Quantity))
	return inventory, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
