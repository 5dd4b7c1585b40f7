package seed

import (
	"fmt"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoCollectorEmail    = "demo@collectorsvault.local"
	DemoCollectorPassword = "demo"
)

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// Seed makes sure the demo collector exists and, when the catalogue is still
// empty, fills it with demo items, auctions, valuations and history. A
// catalogue that already holds items is never touched, so it is safe to run
// at every start.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		owner, err := seedCollector(tx)
		if err != nil {
			return err
		}

		var itemCount int64
		if err := tx.Raw("SELECT COUNT(*) FROM items").Scan(&itemCount).Error; err != nil {
			return fmt.Errorf("count items: %w", err)
		}
		if itemCount > 0 {
			logrus.WithField("items", itemCount).Info("catalogue already has items, skipping demo catalogue")
			return nil
		}
		return seedCatalogue(tx, owner)
	})
}

func seedCollector(tx *gorm.DB) (*models.CollectorModel, error) {
	var existing models.CollectorModel
	result := tx.Where("email = ?", DemoCollectorEmail).Limit(1).Find(&existing)
	if result.Error != nil {
		return nil, fmt.Errorf("look up demo collector: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logrus.Infof("collector '%s' already exists", DemoCollectorEmail)
		return &existing, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DemoCollectorPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	collector := models.CollectorModel{
		Email:        DemoCollectorEmail,
		Name:         "Demo Collector",
		PasswordHash: string(hashedPassword),
	}
	if err := tx.Raw("SELECT COALESCE(MAX(collector_id), 0) + 1 FROM collectors").Scan(&collector.CollectorID).Error; err != nil {
		return nil, fmt.Errorf("next collector id: %w", err)
	}
	if err := tx.Create(&collector).Error; err != nil {
		return nil, fmt.Errorf("create demo collector: %w", err)
	}
	logrus.Infof("collector '%s' created", DemoCollectorEmail)
	return &collector, nil
}

// seedCatalogue expects an empty items table, so the item IDs below are free.
func seedCatalogue(tx *gorm.DB, owner *models.CollectorModel) error {
	ownerID := owner.CollectorID

	series := []models.SeriesModel{
		{SeriesName: "Topps Chrome", ReleaseDate: date("2019-03-01"), ManufacturerName: "Topps"},
		{SeriesName: "American Eagle", ReleaseDate: date("1986-10-20"), ManufacturerName: "US Mint"},
	}
	items := []models.ItemModel{
		{ItemID: 1, ItemName: "Rookie Card", SeriesName: "Topps Chrome", ReleaseDate: date("2019-03-01"), ManufacturerName: "Topps", Country: "USA"},
		{ItemID: 2, ItemName: "Refractor", PrevCollectorID: &ownerID, SeriesName: "Topps Chrome", ReleaseDate: date("2019-03-01"), ManufacturerName: "Topps", Country: "USA"},
		{ItemID: 3, ItemName: "Silver Eagle", SeriesName: "American Eagle", ReleaseDate: date("1986-10-20"), ManufacturerName: "US Mint", Country: "USA"},
		{ItemID: 4, ItemName: "Gold Eagle", SeriesName: "American Eagle", ReleaseDate: date("1986-10-20"), ManufacturerName: "US Mint", Country: "USA"},
	}
	cards := []models.TradingCardModel{
		{ItemID: 1, Athlete: "Pete Alonso", CardVariation: "Base", Sport: "Baseball"},
		{ItemID: 2, Athlete: "Vladimir Guerrero Jr.", CardVariation: "Refractor", Sport: "Baseball"},
	}
	coins := []models.CoinModel{
		{ItemID: 3, Currency: "USD", Denomination: "1 dollar"},
		{ItemID: 4, Currency: "USD", Denomination: "50 dollars"},
	}
	auctions := []models.AuctionModel{
		{AuctionHouse: "Heritage Auctions", AuctionDate: timePtr(date("2024-05-11"))},
		{AuctionHouse: "Goldin", AuctionDate: timePtr(date("2024-07-02"))},
	}

	// Series may outlive their items, everything else starts empty.
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&series).Error; err != nil {
		return fmt.Errorf("seed series: %w", err)
	}
	for _, step := range []struct {
		name string
		rows any
	}{
		{"items", &items},
		{"trading cards", &cards},
		{"coins", &coins},
		{"auctions", &auctions},
	} {
		if err := tx.Create(step.rows).Error; err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	// Auction, valuation and history IDs come from their sequences.
	heritage, goldin := auctions[0].AuctionID, auctions[1].AuctionID
	includes := []models.IncludesModel{
		{AuctionID: heritage, ItemID: 1}, {AuctionID: heritage, ItemID: 3},
		{AuctionID: goldin, ItemID: 1}, {AuctionID: goldin, ItemID: 2}, {AuctionID: goldin, ItemID: 3},
	}
	valuations := []models.ValuationModel{
		{ItemID: 1, AppraiserName: "PSA", AppraisalValue: 40, AppraisalDate: date("2024-01-15")},
		{ItemID: 1, AppraiserName: "Beckett", AppraisalValue: 60, AppraisalDate: date("2024-02-10")},
		{ItemID: 3, AppraiserName: "NGC", AppraisalValue: 35.5, AppraisalDate: date("2024-03-05")},
	}
	history := []models.HistoryModel{
		{ItemID: 2, PrevCollectorID: &ownerID, PrevCollectorName: owner.Name, AcquireDate: date("2020-06-01"), SellDate: timePtr(date("2023-09-14")), PriceSold: floatPtr(120)},
		{ItemID: 4, PrevCollectorName: "Estate sale", AcquireDate: date("2015-04-22")},
	}
	for _, step := range []struct {
		name string
		rows any
	}{
		{"auction lots", &includes},
		{"valuations", &valuations},
		{"history", &history},
	} {
		if err := tx.Create(step.rows).Error; err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	collection := models.CollectionModel{Name: "Favourites", OwnerCollectorID: ownerID, DateCreated: date("2024-01-01")}
	if err := tx.Where("collection_name = ? AND owner_collector_id = ?", collection.Name, ownerID).
		FirstOrCreate(&collection).Error; err != nil {
		return fmt.Errorf("seed collection: %w", err)
	}
	members := []models.PartOfModel{
		{CollectionID: collection.CollectionID, ItemID: 1},
		{CollectionID: collection.CollectionID, ItemID: 3},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&members).Error; err != nil {
		return fmt.Errorf("seed collection items: %w", err)
	}

	logrus.WithFields(logrus.Fields{"items": len(items), "auctions": len(auctions)}).Info("demo catalogue seeded")
	return nil
}
