package model

type User struct {
	BaseModel
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Name         string  `db:"name" json:"name"`
	Phone        *string `db:"phone" json:"phone"`
	CompanyName  string  `db:"company_name" json:"company_name"`
	OrgNumber    *string `db:"org_number" json:"org_number"`
	Address      *string `db:"address" json:"address"`
	PostalCode   *string `db:"postal_code" json:"postal_code"`
	City         *string `db:"city" json:"city"`
	IsApproved   bool    `db:"is_approved" json:"is_approved"`
	IsVerified   bool    `db:"is_verified" json:"is_verified"`
}

type Admin struct {
	BaseModel
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}
