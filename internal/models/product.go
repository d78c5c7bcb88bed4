package models

type Product struct {
	BaseModel
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
	Note        string `gorm:"column:observacao;type:text" json:"observacao"`
	ImagePath   string `gorm:"column:imagem;type:text" json:"imagem"`
	Type        int    `gorm:"column:tipo" json:"tipo"`
}

func (Product) TableName() string { return "produtos" }
