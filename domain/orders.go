package domain

import "time"

type Orders struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	UserID      string    `gorm:"column:user_id" json:"user_id"`
	ProductID   string    `gorm:"column:product_id;index" json:"productId"`
	Quantity    int       `gorm:"column:quantity" json:"quantity"`
	OrderStatus string    `gorm:"column:order_status" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Orders) TableName() string {
	return "orders"
}
