package models

// Product is the persisted catalog entity. Quantity is the live stock count
// and is never stored as a negative value: the stock-decrement path removes
// the product instead.
type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Details     string  `json:"details"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductViewModel is the form/display shape of a product. Stock and Price
// stay raw strings so validation can tell missing, unparseable and
// out-of-range apart before any numeric conversion happens.
type ProductViewModel struct {
	ID          int    `json:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Details     string `json:"details" form:"details"`
	Stock       string `json:"stock" form:"stock"`
	Price       string `json:"price" form:"price"`
}
