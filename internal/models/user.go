package models

// User is an account. Deletion is a flag flip, never a row removal: the
// original API kept soft-deleted accounts around and only blocked login.
type User struct {
	BaseModel
	Name         string   `gorm:"column:nome;not null" json:"nome"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string   `gorm:"column:telefone" json:"telefone"`
	Address      string   `gorm:"column:endereco" json:"endereco"`
	PasswordHash string   `gorm:"column:senha;not null" json:"-"`
	Role         UserRole `gorm:"column:tipo;type:varchar(20);not null;default:'cliente'" json:"tipo"`
	Deleted      bool     `gorm:"column:deletado;default:false" json:"deletado"`

	// Relations
	Pets          []Pet          `gorm:"foreignKey:UserID" json:"pets,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
	DeviceTokens  []DeviceToken  `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "usuarios" }
