package services

import (
	"context"
	"errors"
	"strings"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
	"gorm.io/gorm"
)

type CollectionService struct {
	db *gorm.DB
}

// NewCollectionService creates a new instance of CollectionService
func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// ListCollections returns every collection owned by the collector with the given email.
func (s *CollectionService) ListCollections(ctx context.Context, collectorEmail string) ([]dtos.CollectionSummaryDTO, error) {
	collections := []dtos.CollectionSummaryDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT c.collection_id, c.collection_name, c.date_created
		FROM collections c
		JOIN collectors o ON o.collector_id = c.owner_collector_id
		WHERE o.email = ?
		ORDER BY c.collection_id`,
		collectorEmail,
	).Scan(&collections).Error
	if err != nil {
		return nil, storageError("list collections", err)
	}
	return collections, nil
}

// CreateCollection adds an empty collection, dated today, for the collector.
func (s *CollectionService) CreateCollection(ctx context.Context, name, collectorEmail string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("collection name is required")
	}

	result := s.db.WithContext(ctx).Exec(
		`INSERT INTO collections (collection_name, owner_collector_id, date_created)
		SELECT ?, collector_id, ? FROM collectors WHERE email = ?`,
		name, utils.Today(), collectorEmail,
	)
	if result.Error != nil {
		return storageError("create collection", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// DeleteCollection removes the named collection and its memberships, but only
// when the collector owns it.
func (s *CollectionService) DeleteCollection(ctx context.Context, name, collectorEmail string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collectionIDs []int
		if err := tx.Raw(
			`SELECT c.collection_id
			FROM collections c
			JOIN collectors o ON o.collector_id = c.owner_collector_id
			WHERE c.collection_name = ? AND o.email = ?`,
			name, collectorEmail,
		).Scan(&collectionIDs).Error; err != nil {
			return err
		}
		if len(collectionIDs) == 0 {
			return ErrNotFoundOrUnauthorized
		}

		if err := tx.Exec(`DELETE FROM part_of WHERE collection_id IN ?`, collectionIDs).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM collections WHERE collection_id IN ?`, collectionIDs).Error
	})
	if errors.Is(err, ErrNotFoundOrUnauthorized) {
		return err
	}
	if err != nil {
		return storageError("delete collection", err)
	}
	return nil
}

// AddItemToCollection links an existing item to one of the collector's collections.
func (s *CollectionService) AddItemToCollection(ctx context.Context, collectionName string, itemID int, collectorEmail string) error {
	result := s.db.WithContext(ctx).Exec(
		`INSERT INTO part_of (collection_id, item_id)
		SELECT c.collection_id, i.item_id
		FROM collections c
		JOIN collectors o ON o.collector_id = c.owner_collector_id
		JOIN items i ON i.item_id = ?
		WHERE o.email = ? AND c.collection_name = ?`,
		itemID, collectorEmail, collectionName,
	)
	if result.Error != nil {
		return storageError("add item to collection", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// ListItemsInCollection returns the items of the named collection. A collection
// that does not exist or belongs to someone else yields an empty list.
func (s *CollectionService) ListItemsInCollection(ctx context.Context, collectionName, collectorEmail string) ([]dtos.CollectionItemDTO, error) {
	items := []dtos.CollectionItemDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT i.item_id, i.item_name, i.series_name, i.release_date, i.manufacturer_name, i.country
		FROM collectors o
		JOIN collections c ON c.owner_collector_id = o.collector_id
		JOIN part_of p ON p.collection_id = c.collection_id
		JOIN items i ON i.item_id = p.item_id
		WHERE o.email = ? AND c.collection_name = ?
		ORDER BY i.item_id`,
		collectorEmail, collectionName,
	).Scan(&items).Error
	if err != nil {
		return nil, storageError("list items in collection", err)
	}
	return items, nil
}

// CountItemsByCollection counts members per collection. Collections without
// items are left out of the result.
func (s *CollectionService) CountItemsByCollection(ctx context.Context, collectorEmail string) ([]dtos.CollectionItemCountDTO, error) {
	counts := []dtos.CollectionItemCountDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT c.collection_name, COUNT(p.item_id) AS item_count
		FROM collections c
		JOIN collectors o ON o.collector_id = c.owner_collector_id
		JOIN part_of p ON p.collection_id = c.collection_id
		WHERE o.email = ?
		GROUP BY c.collection_name
		ORDER BY c.collection_name`,
		collectorEmail,
	).Scan(&counts).Error
	if err != nil {
		return nil, storageError("count items by collection", err)
	}
	return counts, nil
}

// GetCollectionValuation sums, per collection, the average appraisal of each
// member item. Collections with no appraised item are omitted.
func (s *CollectionService) GetCollectionValuation(ctx context.Context, collectorEmail string) ([]dtos.CollectionValuationDTO, error) {
	valuations := []dtos.CollectionValuationDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT c.collection_id, c.collection_name, SUM(v.average_value) AS total_value
		FROM collections c
		JOIN collectors o ON o.collector_id = c.owner_collector_id
		JOIN part_of p ON p.collection_id = c.collection_id
		JOIN (
			SELECT item_id, AVG(appraisal_value) AS average_value
			FROM valuations
			GROUP BY item_id
		) v ON v.item_id = p.item_id
		WHERE o.email = ?
		GROUP BY c.collection_id, c.collection_name
		ORDER BY c.collection_id`,
		collectorEmail,
	).Scan(&valuations).Error
	if err != nil {
		return nil, storageError("collection valuation", err)
	}
	return valuations, nil
}
