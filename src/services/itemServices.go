package services

import (
	"context"
	"errors"
	"strings"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/models"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

// NewItemService creates a new instance of ItemService
func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// InsertTradingCard stores a trading card and returns its new item ID.
func (s *ItemService) InsertTradingCard(ctx context.Context, req dtos.InsertTradingCardRequest) (int, error) {
	item, err := newItemModel(req.ItemFields)
	if err != nil {
		return 0, err
	}
	card := models.TradingCardModel{
		Athlete:       strings.TrimSpace(req.Athlete),
		CardVariation: strings.TrimSpace(req.CardVariation),
		Sport:         strings.TrimSpace(req.Sport),
	}
	if card.Athlete == "" || card.CardVariation == "" || card.Sport == "" {
		return 0, validationError("athlete, card variation and sport are required")
	}

	itemID, err := s.insertItem(ctx, item, func(tx *gorm.DB, itemID int) error {
		return tx.Exec(
			`INSERT INTO trading_cards (item_id, athlete, card_variation, sport) VALUES (?, ?, ?, ?)`,
			itemID, card.Athlete, card.CardVariation, card.Sport,
		).Error
	})
	if err != nil {
		return 0, storageError("insert trading card", err)
	}

	logrus.WithFields(logrus.Fields{"item_id": itemID, "athlete": card.Athlete}).Info("trading card inserted")
	return itemID, nil
}

// InsertCoin stores a coin and returns its new item ID.
func (s *ItemService) InsertCoin(ctx context.Context, req dtos.InsertCoinRequest) (int, error) {
	item, err := newItemModel(req.ItemFields)
	if err != nil {
		return 0, err
	}
	coin := models.CoinModel{
		Currency:     strings.TrimSpace(req.Currency),
		Denomination: strings.TrimSpace(req.Denomination),
	}
	if coin.Currency == "" || coin.Denomination == "" {
		return 0, validationError("currency and denomination are required")
	}

	itemID, err := s.insertItem(ctx, item, func(tx *gorm.DB, itemID int) error {
		return tx.Exec(
			`INSERT INTO coins (item_id, currency, denomination) VALUES (?, ?, ?)`,
			itemID, coin.Currency, coin.Denomination,
		).Error
	})
	if err != nil {
		return 0, storageError("insert coin", err)
	}

	logrus.WithFields(logrus.Fields{"item_id": itemID, "currency": coin.Currency, "denomination": coin.Denomination}).Info("coin inserted")
	return itemID, nil
}

// insertItem allocates the next item ID, makes sure the series exists, writes
// the base row and lets specialize write the subtype row, all in one transaction.
func (s *ItemService) insertItem(ctx context.Context, item *models.ItemModel, specialize func(tx *gorm.DB, itemID int) error) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`SELECT COALESCE(MAX(item_id), 0) + 1 FROM items`).Scan(&item.ItemID).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			`INSERT INTO series (series_name, release_date, manufacturer_name) VALUES (?, ?, ?) ON CONFLICT (series_name) DO NOTHING`,
			item.SeriesName, item.ReleaseDate, item.ManufacturerName,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			`INSERT INTO items (item_id, item_name, prev_collector_id, series_name, release_date, manufacturer_name, country) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ItemID, item.ItemName, nullableInt(item.PrevCollectorID), item.SeriesName, item.ReleaseDate, item.ManufacturerName, item.Country,
		).Error; err != nil {
			return err
		}

		return specialize(tx, item.ItemID)
	})
	if err != nil {
		return 0, err
	}
	return item.ItemID, nil
}

// UpdateItem renames an item and/or changes its previous collector, provided
// the item sits in one of the caller's collections. Ownership is part of the
// UPDATE predicate, so no rows changed means not found or not owned.
func (s *ItemService) UpdateItem(ctx context.Context, collectorEmail string, req dtos.UpdateItemRequest) error {
	if req.ItemID <= 0 {
		return validationError("itemID must be a positive integer")
	}

	var newItemName any
	if name := strings.TrimSpace(req.NewItemName); name != "" {
		newItemName = name
	}

	changePrev := req.NewPrevCollectorID.Set
	var newPrevCollectorID any
	if changePrev && !req.NewPrevCollectorID.Null {
		if req.NewPrevCollectorID.Value < 1 {
			return validationError("newPrevCollectorID must be a positive integer or null")
		}
		newPrevCollectorID = req.NewPrevCollectorID.Value
	}

	result := s.db.WithContext(ctx).Exec(
		`UPDATE items
		SET item_name = COALESCE(?, item_name),
			prev_collector_id = CASE WHEN ? THEN ? ELSE prev_collector_id END
		WHERE item_id = ? AND EXISTS (
			SELECT 1
			FROM part_of p
			JOIN collections c ON c.collection_id = p.collection_id
			JOIN collectors o ON o.collector_id = c.owner_collector_id
			WHERE p.item_id = items.item_id AND o.email = ?
		)`,
		newItemName, changePrev, newPrevCollectorID, int(req.ItemID), collectorEmail,
	)
	if result.Error != nil {
		return storageError("update item", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

func newItemModel(fields dtos.ItemFields) (*models.ItemModel, error) {
	releaseDate, err := utils.ParseDate(fields.ReleaseDate)
	if err != nil {
		return nil, validationError("%v", err)
	}

	prev := fields.PrevCollectorID
	if prev.Set && !prev.Null && prev.Value < 1 {
		return nil, validationError("prevCollectorID must be a positive integer")
	}

	item := &models.ItemModel{
		ItemName:         strings.TrimSpace(fields.ItemName),
		PrevCollectorID:  prev.Ptr(),
		SeriesName:       strings.TrimSpace(fields.SeriesName),
		ReleaseDate:      releaseDate,
		ManufacturerName: strings.TrimSpace(fields.ManufacturerName),
		Country:          strings.TrimSpace(fields.Country),
	}
	if item.ItemName == "" || item.SeriesName == "" || item.ManufacturerName == "" || item.Country == "" {
		return nil, validationError("itemName, seriesName, manufacturerName and country are required")
	}
	return item, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
