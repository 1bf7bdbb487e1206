package user

import "time"

type User struct {
	ID        int
	Username  string
	Email     string
	Password  string // хэш
	CreatedAt time.Time
}
