package models

type CollectorModel struct {
	CollectorID  int    `json:"collectorID" gorm:"column:collector_id;primaryKey;autoIncrement:false"`
	Email        string `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Name         string `json:"name" gorm:"column:collector_name;type:varchar(255);not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(100);not null"`
}

func (CollectorModel) TableName() string { return "collectors" }
