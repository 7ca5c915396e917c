package dbschema

import (
	"time"

	"gorm.io/gorm"
)

// Models returns every entity registered for auto migration, in
// dependency order.
func Models() []any {
	return []any{
		&User{},
		&Role{},
		&UserRole{},
		&RefreshToken{},
		&Card{},
		&Merchant{},
		&Saldo{},
		&Topup{},
		&Transaction{},
		&Transfer{},
		&Withdraw{},
	}
}

func deletedAtToPtr(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func ptrToDeletedAt(t *time.Time) gorm.DeletedAt {
	if t == nil {
		return gorm.DeletedAt{}
	}
	return gorm.DeletedAt{Time: *t, Valid: true}
}
