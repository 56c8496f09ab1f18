// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/sommelier/internal/core/audit"
	"github.com/taibuivan/sommelier/pkg/pagination"
	"github.com/taibuivan/sommelier/pkg/slice"
)

// Service converts between the canonical and wire forms around every
// repository call. The recommendation service is authoritative for anything
// the conversion does not enforce.
type Service struct {
	repo         Repository
	recorder     audit.Recorder
	restaurantID string
	salesPoints  SalesPointContext
	logger       *slog.Logger
}

// NewService constructs a dish [Service] for one restaurant.
func NewService(repo Repository, recorder audit.Recorder, restaurantID string, salesPoints SalesPointContext, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		recorder:     recorder,
		restaurantID: restaurantID,
		salesPoints:  salesPoints,
		logger:       logger,
	}
}

// ListDishes returns one page of canonical dishes and the filtered total.
func (service *Service) ListDishes(context context.Context, filter Filter, locale string, params pagination.Params) ([]Dish, int, error) {
	records, err := service.repo.ListDishes(context, service.restaurantID)
	if err != nil {
		return nil, 0, err
	}

	dishes := slice.Map(records, func(record RestaurantDish) Dish {
		return ToDomain(record, service.salesPoints, locale)
	})

	if section := strings.TrimSpace(filter.Section); section != "" {
		dishes = slice.Filter(dishes, func(dish Dish) bool {
			return strings.EqualFold(dish.Section, section) ||
				strings.EqualFold(dish.SectionByLocale.FR, section) ||
				strings.EqualFold(dish.SectionByLocale.EN, section)
		})
	}

	start, end := params.Window(len(dishes))
	return append([]Dish{}, dishes[start:end]...), len(dishes), nil
}

// GetDish returns one canonical dish.
func (service *Service) GetDish(context context.Context, id, locale string) (*Dish, error) {
	record, err := service.repo.GetDish(context, service.restaurantID, id)
	if err != nil {
		return nil, err
	}

	dish := ToDomain(*record, service.salesPoints, locale)
	return &dish, nil
}

// CreateDish converts dish, stores it and returns the stored version.
func (service *Service) CreateDish(context context.Context, dish *Dish, locale string) (*Dish, error) {
	payload := ToPayload(*dish, locale)

	record, err := service.repo.CreateDish(context, service.restaurantID, payload)
	if err != nil {
		return nil, err
	}

	created := ToDomain(*record, service.salesPoints, locale)

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionCreate,
		EntityType:   audit.EntityDish,
		EntityID:     created.ID,
		RestaurantID: service.restaurantID,
		After:        payload,
	})
	service.logger.Info("dish_created", slog.String("dish_id", created.ID))

	return &created, nil
}

// UpdateDish replaces dish id. Last write wins.
func (service *Service) UpdateDish(context context.Context, id string, dish *Dish, locale string) (*Dish, error) {
	payload := ToPayload(*dish, locale)

	before, err := service.repo.GetDish(context, service.restaurantID, id)
	if err != nil {
		return nil, err
	}

	record, err := service.repo.UpdateDish(context, service.restaurantID, id, payload)
	if err != nil {
		return nil, err
	}

	updated := ToDomain(*record, service.salesPoints, locale)

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionUpdate,
		EntityType:   audit.EntityDish,
		EntityID:     id,
		RestaurantID: service.restaurantID,
		Before:       before,
		After:        payload,
	})
	service.logger.Info("dish_updated", slog.String("dish_id", id))

	return &updated, nil
}

// DeleteDish removes dish id.
func (service *Service) DeleteDish(context context.Context, id string) error {
	before, err := service.repo.GetDish(context, service.restaurantID, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteDish(context, service.restaurantID, id); err != nil {
		return err
	}

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionDelete,
		EntityType:   audit.EntityDish,
		EntityID:     id,
		RestaurantID: service.restaurantID,
		Before:       before,
	})
	service.logger.Warn("dish_deleted", slog.String("dish_id", id))

	return nil
}
