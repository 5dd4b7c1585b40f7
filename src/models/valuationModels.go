package models

import "time"

type ValuationModel struct {
	ValuationID    int        `json:"valuationID" gorm:"column:valuation_id;primaryKey;autoIncrement"`
	ItemID         int        `json:"itemID" gorm:"column:item_id;not null;index"`
	Item           *ItemModel `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
	AppraiserName  string     `json:"appraiserName" gorm:"column:appraiser_name;type:varchar(255);not null"`
	AppraisalValue float64    `json:"appraisalValue" gorm:"column:appraisal_value;type:numeric(14,2);not null"`
	AppraisalDate  time.Time  `json:"appraisalDate" gorm:"column:appraisal_date;type:date;not null"`
}

func (ValuationModel) TableName() string { return "valuations" }
