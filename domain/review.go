package domain

import "time"

// CREATE TABLE public.reviews (
//     id          TEXT PRIMARY KEY,
//     product_id  TEXT,
//     user_id     TEXT,
//     review      TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Review struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	ProductID string    `gorm:"column:product_id;index" json:"productId"`
	UserID    string    `gorm:"column:user_id" json:"user_id"`
	Review    string    `gorm:"column:review;type:text" json:"review"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
