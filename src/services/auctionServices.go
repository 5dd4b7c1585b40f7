package services

import (
	"context"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"gorm.io/gorm"
)

type AuctionService struct {
	db *gorm.DB
}

// NewAuctionService creates a new instance of AuctionService
func NewAuctionService(db *gorm.DB) *AuctionService {
	return &AuctionService{db: db}
}

// SelectAuctionHousesWithAtLeastItems groups auctions by house and keeps the
// houses offering minItems items or more.
func (s *AuctionService) SelectAuctionHousesWithAtLeastItems(ctx context.Context, minItems int) ([]dtos.AuctionHouseCountDTO, error) {
	if minItems < 1 {
		return nil, validationError("minItems must be a positive integer, got %d", minItems)
	}

	houses := []dtos.AuctionHouseCountDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT a.auction_house, COUNT(inc.item_id) AS total_items
		FROM auctions a
		JOIN includes inc ON inc.auction_id = a.auction_id
		GROUP BY a.auction_house
		HAVING COUNT(inc.item_id) >= ?
		ORDER BY total_items DESC, a.auction_house`,
		minItems,
	).Scan(&houses).Error
	if err != nil {
		return nil, storageError("select auction houses", err)
	}
	return houses, nil
}

// FindAuctionsWithAllItemsFromCollection returns the auctions that include
// every item of the collection. Auctions without items and empty collections
// never match, even though "no item is missing" holds vacuously for them.
func (s *AuctionService) FindAuctionsWithAllItemsFromCollection(ctx context.Context, collectionID int) ([]dtos.AuctionDTO, error) {
	if collectionID < 1 {
		return nil, validationError("collectionID must be a positive integer, got %d", collectionID)
	}

	auctions := []dtos.AuctionDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT a.auction_id, a.auction_house
		FROM auctions a
		WHERE EXISTS (
			SELECT 1 FROM includes inc WHERE inc.auction_id = a.auction_id
		)
		AND EXISTS (
			SELECT 1 FROM part_of p WHERE p.collection_id = ?
		)
		AND NOT EXISTS (
			SELECT 1
			FROM part_of p
			WHERE p.collection_id = ?
			AND NOT EXISTS (
				SELECT 1 FROM includes inc
				WHERE inc.auction_id = a.auction_id AND inc.item_id = p.item_id
			)
		)
		ORDER BY a.auction_id`,
		collectionID, collectionID,
	).Scan(&auctions).Error
	if err != nil {
		return nil, storageError("find auctions with collection items", err)
	}
	return auctions, nil
}
