package models

// PetSize drives the price/duration estimates in the schedule package.
type PetSize string

const (
	PetSizeSmall  PetSize = "pequeno"
	PetSizeMedium PetSize = "medio"
	PetSizeLarge  PetSize = "grande"
	PetSizeGiant  PetSize = "gigante"
)

type Pet struct {
	BaseModel
	Name      string  `gorm:"column:nome;not null" json:"nome"`
	Breed     string  `gorm:"column:raca" json:"raca"`
	Age       int     `gorm:"column:idade" json:"idade"`
	Size      PetSize `gorm:"column:porte;type:varchar(20)" json:"porte"`
	PhotoPath string  `gorm:"column:foto" json:"foto"`
	UserID    uint    `gorm:"not null;index" json:"usuarioId"`
	Deleted   bool    `gorm:"column:deletado;default:false" json:"deletado"`

	Owner *User `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
}

func (Pet) TableName() string { return "pets" }
