package entity

type PaymentMethod struct {
	Base
	Code     string `db:"code"`
	Name     string `db:"name"`
	IsCash   bool   `db:"is_cash"`
	IsActive bool   `db:"is_active"`
}
