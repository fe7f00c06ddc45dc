package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey"`      // Primary key
	Email     string `gorm:"unique;not null"` // Unique email used for login
	FirstName string `gorm:"not null"`        // First name
	LastName  string `gorm:"not null"`        // Last name
	Password  string `gorm:"not null"`        // Hashed password
	Team      *Team  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-one relationship with Team
}
