package entity

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

type User struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
}
