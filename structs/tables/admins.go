package tables

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	tableName    struct{}  `bun:"table:admins,alias:a"`
	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
