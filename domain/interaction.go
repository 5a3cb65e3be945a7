package domain

import "time"

// InteractionSource names the collection an interaction was scanned from.
type InteractionSource string

const (
	SourceWishlist InteractionSource = "wishlist"
	SourceCart     InteractionSource = "cart"
	SourceOrders   InteractionSource = "orders"
)

// InteractionSources lists every source in scan order.
var InteractionSources = []InteractionSource{SourceWishlist, SourceCart, SourceOrders}

type Interaction struct {
	ProductID string            `json:"productId"`
	Source    InteractionSource `json:"source"`
}

type WishlistItem struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"column:user_id" json:"user_id"`
	ProductID string    `gorm:"column:product_id;index" json:"productId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

type CartItem struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"column:user_id" json:"user_id"`
	ProductID string    `gorm:"column:product_id;index" json:"productId"`
	Quantity  int       `gorm:"column:quantity" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
