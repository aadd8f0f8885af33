// Package models contains the persistent entities of userbook, mapped with
// gorm struct tags.
package models

// User is an identity record. The id is assigned by storage and immutable,
// the e-mail is unique across all users. Password holds the bcrypt hash and
// is never serialized or returned through the API.
type User struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Password  string  `gorm:"not null" json:"-"`
	BirthDate *string

	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
