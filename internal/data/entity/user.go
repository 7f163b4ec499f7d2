package entity

// User is both sides of the marketplace: a customer when booking, a provider
// when it owns offerings. There is no separate provider account type.
type User struct {
	Base
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	Phone        *string `db:"phone"`
	IsActive     bool    `db:"is_active"`
}
