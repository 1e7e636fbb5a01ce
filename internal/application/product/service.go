// Package product is the product module: products and their variants,
// options, tags, types, collections and categories.
package product

//go:generate go run ../../../cmd/modulegen generate -m module.toml -o service_gen.go

import (
	"context"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// Service is the product module service. Product operations (Retrieve,
// List, SoftDelete, ...) are promoted from the embedded module service;
// secondary entity operations are generated into service_gen.go.
type Service struct {
	*modulesdk.AbstractModuleService[models.Product, ProductDTO]
	generatedMethods

	logger *zap.Logger
}

// productCreator is implemented by the product entity service
type productCreator interface {
	Create(ctx context.Context, entities []models.Product, sc *modulesdk.Context) ([]models.Product, error)
}

// NewFactory returns the factory of the product module service
func NewFactory(opts ...modulesdk.Option) *modulesdk.Factory[models.Product, ProductDTO] {
	return modulesdk.NewFactory[models.Product, ProductDTO](mainModel, registrations(), linkableKeys, opts...)
}

// NewService builds the product module service on container
func NewService(container *modulesdk.Container, logger *zap.Logger, opts ...modulesdk.Option) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("module", "product"))

	base, err := NewFactory(append([]modulesdk.Option{modulesdk.WithLogger(logger)}, opts...)...).New(container)
	if err != nil {
		return nil, err
	}

	svc := &Service{
		AbstractModuleService: base,
		logger:                logger,
	}
	if err := svc.bindMethods(base); err != nil {
		return nil, err
	}
	return svc, nil
}

// Create creates products with their options and variants and emits
// product.created for each of them
func (s *Service) Create(ctx context.Context, data []CreateProductDTO, sc *modulesdk.Context) ([]ProductDTO, error) {
	if len(data) == 0 {
		return []ProductDTO{}, nil
	}

	var created []models.Product
	err := modulesdk.WithTransaction(ctx, s.BaseRepository(), sc, func(sc *modulesdk.Context) error {
		creator, err := modulesdk.Resolve[productCreator](s.Container(), mainModel.RegistrationName())
		if err != nil {
			return err
		}

		created, err = creator.Create(ctx, toProductModels(data), sc)
		if err != nil {
			return err
		}

		eventName := modulesdk.KebabCase(mainModel.Name) + ".created"
		messages := make([]shared.EventMessage, 0, len(created))
		for _, p := range created {
			messages = append(messages, shared.EventMessage{
				EventName: eventName,
				Data:      map[string]any{"id": p.ID},
			})
		}

		bus := s.EventBus()
		if bus == nil {
			s.logger.Debug("no event bus registered, skipping events", zap.Int("count", len(messages)))
			return nil
		}
		return bus.Emit(ctx, messages...)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("products created", zap.Int("count", len(created)))
	return modulesdk.Serialize[[]ProductDTO](s.BaseRepository(), created, modulesdk.SerializeOptions{Populate: true})
}

func toProductModels(data []CreateProductDTO) []models.Product {
	products := make([]models.Product, 0, len(data))
	for _, d := range data {
		p := models.Product{
			Title:        d.Title,
			Handle:       d.Handle,
			Subtitle:     d.Subtitle,
			Description:  d.Description,
			Status:       models.ProductStatus(d.Status),
			IsGiftcard:   d.IsGiftcard,
			Thumbnail:    d.Thumbnail,
			TypeID:       d.TypeID,
			CollectionID: d.CollectionID,
		}
		if p.Handle == "" {
			p.Handle = modulesdk.KebabCase(d.Title)
		}
		for _, o := range d.Options {
			p.Options = append(p.Options, models.ProductOption{Title: o.Title})
		}
		for _, v := range d.Variants {
			variant := models.ProductVariant{
				Title:           v.Title,
				SKU:             v.SKU,
				Barcode:         v.Barcode,
				ManageInventory: true,
				AllowBackorder:  v.AllowBackorder,
				VariantRank:     v.VariantRank,
			}
			if v.ManageInventory != nil {
				variant.ManageInventory = *v.ManageInventory
			}
			p.Variants = append(p.Variants, variant)
		}
		products = append(products, p)
	}
	return products
}
