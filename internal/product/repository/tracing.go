package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/link/inventory-platform/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// TracingProductRepository opens a span around every repository call.
type TracingProductRepository struct {
	next domain.ProductRepository
}

func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Save(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(attribute.String("product.name", product.ProductName)),
	)
	defer span.End()

	if err := r.next.Save(ctx, product); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return product, nil
}

func (r *TracingProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ExistsByName",
		trace.WithAttributes(attribute.String("product.name", name)),
	)
	defer span.End()

	exists, err := r.next.ExistsByName(ctx, name)
	if err != nil {
		recordError(span, err)
		return false, err
	}

	span.SetAttributes(attribute.Bool("product.exists", exists))
	return exists, nil
}

func (r *TracingProductRepository) FindAll(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("page.number", req.Number),
			attribute.Int("page.size", req.Size),
			attribute.String("page.sort", req.SortBy),
			attribute.String("page.direction", req.Direction),
		),
	)
	defer span.End()

	page, err := r.next.FindAll(ctx, req)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(page.Items)),
		attribute.Int64("result.total", page.TotalElements),
	)
	return page, nil
}

func (r *TracingProductRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.String("product.name", product.ProductName),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, product); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingProductRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
