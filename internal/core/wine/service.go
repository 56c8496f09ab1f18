// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/sommelier/internal/core/audit"
	"github.com/taibuivan/sommelier/pkg/pagination"
	"github.com/taibuivan/sommelier/pkg/slice"
	"github.com/taibuivan/sommelier/pkg/slug"
)

// Service converts between the canonical and wire forms around every
// repository call. It never validates beyond [ToPayload]: the recommendation
// service is authoritative.
type Service struct {
	repo         Repository
	recorder     audit.Recorder
	restaurantID string
	salesPoints  SalesPointContext
	logger       *slog.Logger
}

// NewService constructs a wine [Service] for one restaurant.
func NewService(repo Repository, recorder audit.Recorder, restaurantID string, salesPoints SalesPointContext, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		recorder:     recorder,
		restaurantID: restaurantID,
		salesPoints:  salesPoints,
		logger:       logger,
	}
}

// ListWines returns one page of canonical wines and the filtered total.
func (service *Service) ListWines(context context.Context, filter Filter, locale string, params pagination.Params) ([]Wine, int, error) {
	records, err := service.repo.ListWines(context, service.restaurantID)
	if err != nil {
		return nil, 0, err
	}

	// 1. Convert
	wines := slice.Map(records, func(record RestaurantWine) Wine {
		return ToDomain(record, service.salesPoints, locale)
	})

	// 2. Filter by type
	if len(filter.Types) > 0 {
		wines = slice.Filter(wines, func(wine Wine) bool {
			return slices.Contains(filter.Types, wine.WineType)
		})
	}

	// 3. Page
	start, end := params.Window(len(wines))
	return append([]Wine{}, wines[start:end]...), len(wines), nil
}

// GetWine returns one canonical wine.
func (service *Service) GetWine(context context.Context, id, locale string) (*Wine, error) {
	record, err := service.repo.GetWine(context, service.restaurantID, id)
	if err != nil {
		return nil, err
	}

	wine := ToDomain(*record, service.salesPoints, locale)
	return &wine, nil
}

// CreateWine converts wine, stores it and returns the stored version.
func (service *Service) CreateWine(context context.Context, wine *Wine, locale string) (*Wine, error) {
	payload, err := ToPayload(*wine, locale)
	if err != nil {
		return nil, err
	}

	record, err := service.repo.CreateWine(context, service.restaurantID, payload)
	if err != nil {
		return nil, err
	}

	created := service.fromRecord(*record, wine, locale)

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionCreate,
		EntityType:   audit.EntityWine,
		EntityID:     created.ID,
		RestaurantID: service.restaurantID,
		After:        payload,
	})
	service.logger.Info("wine_created", slog.String("wine_id", created.ID))

	return &created, nil
}

// UpdateWine replaces wine id. Last write wins.
func (service *Service) UpdateWine(context context.Context, id string, wine *Wine, locale string) (*Wine, error) {
	payload, err := ToPayload(*wine, locale)
	if err != nil {
		return nil, err
	}

	// Previous state for the audit trail; also surfaces a 404 before writing.
	before, err := service.repo.GetWine(context, service.restaurantID, id)
	if err != nil {
		return nil, err
	}

	record, err := service.repo.UpdateWine(context, service.restaurantID, id, payload)
	if err != nil {
		return nil, err
	}

	updated := service.fromRecord(*record, wine, locale)

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionUpdate,
		EntityType:   audit.EntityWine,
		EntityID:     id,
		RestaurantID: service.restaurantID,
		Before:       before,
		After:        payload,
	})
	service.logger.Info("wine_updated", slog.String("wine_id", id))

	return &updated, nil
}

// DeleteWine removes wine id.
func (service *Service) DeleteWine(context context.Context, id string) error {
	before, err := service.repo.GetWine(context, service.restaurantID, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteWine(context, service.restaurantID, id); err != nil {
		return err
	}

	service.recorder.Record(context, audit.Change{
		Action:       audit.ActionDelete,
		EntityType:   audit.EntityWine,
		EntityID:     id,
		RestaurantID: service.restaurantID,
		Before:       before,
	})
	service.logger.Warn("wine_deleted", slog.String("wine_id", id))

	return nil
}

// fromRecord converts the stored record back and carries over the in-memory
// keywords, which the wire schema does not hold.
func (service *Service) fromRecord(record RestaurantWine, input *Wine, locale string) Wine {
	wine := ToDomain(record, service.salesPoints, locale)
	wine.Keywords = normalizeKeywords(input.Keywords)
	return wine
}

// normalizeKeywords drops blank keywords and derives missing ids from labels.
func normalizeKeywords(keywords []Keyword) []Keyword {
	normalized := make([]Keyword, 0, len(keywords))
	for _, keyword := range keywords {
		keyword.Label = strings.TrimSpace(keyword.Label)
		if keyword.Label == "" {
			continue
		}
		if keyword.ID == "" {
			keyword.ID = slug.From(keyword.Label)
		}
		normalized = append(normalized, keyword)
	}
	return normalized
}
