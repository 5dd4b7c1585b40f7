package models

// All lists every model in foreign key order, ready for AutoMigrate.
func All() []any {
	return []any{
		&CollectorModel{},
		&CollectionModel{},
		&SeriesModel{},
		&ItemModel{},
		&TradingCardModel{},
		&CoinModel{},
		&PartOfModel{},
		&AuctionModel{},
		&IncludesModel{},
		&ValuationModel{},
		&HistoryModel{},
	}
}
