package entities

type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Roles        string `gorm:"type:varchar(128);not null;default:user" json:"roles"`
	Timestamp
}

func (User) TableName() string {
	return "users"
}
