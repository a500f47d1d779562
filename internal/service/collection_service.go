package service

import (
	"errors"
	"strings"

	"github.com/AnanduApillAi/kendo-forms/internal/models"
	"github.com/AnanduApillAi/kendo-forms/internal/repository"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
	"github.com/AnanduApillAi/kendo-forms/pkg/cache"
	"github.com/AnanduApillAi/kendo-forms/pkg/logger"
)

type CollectionService struct {
	collectionRepo repository.CollectionRepository
	cache          *cache.Cache
}

func NewCollectionService(collectionRepo repository.CollectionRepository, cacheService *cache.Cache) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		cache:          cacheService,
	}
}

func (s *CollectionService) Create(req models.SaveCollectionRequest) (*models.FormCollection, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("collection name is required")
	}

	state, err := schema.Normalize(rowsToSchema(req.FormState))
	if err != nil {
		return nil, err
	}

	collection := &models.FormCollection{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		FormState:   models.FormState(state),
	}

	if err := s.collectionRepo.Create(collection); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.cacheCollection(collection)

	logger.Info("Collection created", map[string]interface{}{
		"id":   collection.ID,
		"name": collection.Name,
	})
	return collection, nil
}

func (s *CollectionService) Update(id uint, req models.UpdateCollectionRequest) (*models.FormCollection, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("collection name is required")
		}
		collection.Name = name
	}
	if req.Description != nil {
		collection.Description = strings.TrimSpace(*req.Description)
	}
	if req.FormState != nil {
		state, err := schema.Normalize(rowsToSchema(*req.FormState))
		if err != nil {
			return nil, err
		}
		collection.FormState = models.FormState(state)
	}

	if err := s.collectionRepo.Update(collection); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.cacheCollection(collection)
	return collection, nil
}

func (s *CollectionService) Delete(id uint) error {
	if _, err := s.collectionRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.collectionRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateListCache()
	if s.cache != nil {
		s.cache.InvalidateCollection(id)
	}

	logger.Info("Collection deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *CollectionService) GetByID(id uint) (*models.FormCollection, error) {
	if s.cache != nil {
		var cached models.FormCollection
		if err := s.cache.GetCachedCollection(id, &cached); err == nil {
			return &cached, nil
		}
	}

	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cacheCollection(collection)
	return collection, nil
}

func (s *CollectionService) GetAll() ([]models.FormCollection, error) {
	if s.cache != nil {
		var cached []models.FormCollection
		if err := s.cache.GetCachedCollections(&cached); err == nil {
			return cached, nil
		}
	}

	collections, err := s.collectionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.CacheCollections(collections)
	}
	return collections, nil
}

func (s *CollectionService) cacheCollection(collection *models.FormCollection) {
	if s.cache == nil || collection == nil {
		return
	}
	s.cache.CacheCollection(collection.ID, collection)
}

func (s *CollectionService) invalidateListCache() {
	if s.cache == nil {
		return
	}
	s.cache.InvalidateCollectionsList()
}

func rowsToSchema(rows [][]schema.Component) schema.Schema {
	out := make(schema.Schema, len(rows))
	for i, row := range rows {
		out[i] = schema.Row(row)
	}
	return out
}
