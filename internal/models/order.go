package models

import "time"

// Order is the persisted checkout aggregate. Date is stamped at save time,
// never taken from the submission.
type Order struct {
	ID      int         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string      `gorm:"not null" json:"name"`
	Address string      `gorm:"not null" json:"address"`
	City    string      `gorm:"not null" json:"city"`
	Zip     string      `gorm:"not null" json:"zip"`
	Country string      `gorm:"not null" json:"country"`
	Date    time.Time   `json:"date"`
	Lines   []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
}

// OrderLine snapshots a product reference and quantity at order time, so
// later stock changes never alter a historical order.
type OrderLine struct {
	ID        int      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int      `gorm:"index" json:"order_id"`
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderViewModel is the checkout submission shape. The required tags are the
// form-level field rules enforced at binding time; order lines come from the
// session cart, never from the client.
type OrderViewModel struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Address string `json:"address" form:"address" binding:"required"`
	City    string `json:"city" form:"city" binding:"required"`
	Zip     string `json:"zip" form:"zip" binding:"required"`
	Country string `json:"country" form:"country" binding:"required"`
}
