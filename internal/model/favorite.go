package model

type Favorite struct {
	BaseModel
	UserID    string   `db:"user_id" json:"user_id"`
	ProductID string   `db:"product_id" json:"product_id"`
	Product   *Product `db:"-" json:"product,omitempty"`
}
