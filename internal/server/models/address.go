package models

// Address belongs to exactly one User. It is written by the seed flow and
// read back as a projection on the user queries.
type Address struct {
	ID           int64  `gorm:"primaryKey"`
	Cep          string `gorm:"not null"`
	Street       string `gorm:"not null"`
	StreetNumber int32  `gorm:"not null"`
	Complement   *string
	Neighborhood string `gorm:"not null"`
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	UserID       int64  `gorm:"not null;index"`
}
