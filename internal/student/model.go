package student

import (
	"time"

	"github.com/uptrace/bun"
)

// Student is one stored profile. The ID is assigned by the database on
// insert and never changes afterwards. created_at/updated_at live on the
// table only (maintained by the database) and are deliberately not part
// of this struct.
type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`

	ID          int       `bun:"id,pk,autoincrement" json:"id"`
	FirstName   string    `bun:"first_name,notnull" json:"firstName"`
	LastName    string    `bun:"last_name,notnull" json:"lastName"`
	Email       string    `bun:"email,unique,notnull" json:"email"`
	Phone       string    `bun:"phone,notnull" json:"phone"`
	DateOfBirth time.Time `bun:"date_of_birth,notnull,type:date" json:"dateOfBirth"`
	Major       string    `bun:"major,notnull" json:"major"`
	GPA         float64   `bun:"gpa,notnull" json:"gpa"`
}
