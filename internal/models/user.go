package models

import (
    "gorm.io/gorm"
    "golang.org/x/crypto/bcrypt"
)

type User struct {
    gorm.Model      // This embeds ID, CreatedAt, UpdatedAt, and DeletedAt
    Email                string   `json:"email" gorm:"column:email;unique;not null"`
    Password             string   `json:"-" gorm:"-:migration"` // Temporary field for password handling
    PasswordHash         string   `json:"-" gorm:"column:password_hash;not null"`
    FirstName            string   `json:"firstName" gorm:"column:first_name;not null"`
    LastName             string   `json:"lastName" gorm:"column:last_name;not null"`
    Phone                string   `json:"phone" gorm:"column:phone"`
    Bio                  string   `json:"bio" gorm:"column:bio"`
    ProfilePhoto         string   `json:"profilePhoto" gorm:"column:profile_photo"`
    VerificationDocument string   `json:"-" gorm:"column:verification_document"`
    IsVerified           bool     `json:"isVerified" gorm:"column:is_verified;default:false"`
    IsActive             bool     `json:"isActive" gorm:"column:is_active;default:true"`
    Rating               float64  `json:"rating" gorm:"column:rating;default:0"`
    TotalReviews         int      `json:"totalReviews" gorm:"column:total_reviews;default:0"`
    Lat                  *float64 `json:"lat" gorm:"column:lat"`
    Lng                  *float64 `json:"lng" gorm:"column:lng"`
}

// TableName specifies the table name
func (User) TableName() string {
    return "users"
}

func (u *User) HashPassword() error {
    if u.Password == "" {
        return nil
    }
    hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
    if err != nil {
        return err
    }
    u.PasswordHash = string(hashedPassword)
    return nil
}

func (u *User) CheckPassword(password string) error {
    return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
