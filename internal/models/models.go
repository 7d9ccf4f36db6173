package models

// Role enumerates the two account levels the API knows about.
type Role string

const (
	RoleCliente Role = "cliente"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCliente || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type Categoria struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre string `gorm:"not null"                 json:"nombre"`
}

func (Categoria) TableName() string { return "categorias" }

type Producto struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string  `gorm:"not null"                 json:"nombre"`
	Precio      float64 `gorm:"not null"                 json:"precio"`
	CategoriaID *uint   `gorm:"index"                    json:"categoria_id"`
}

func (Producto) TableName() string { return "productos" }

// ProductoConCategoria is a product list row: the product columns plus the
// LEFT JOINed category name (nil when categoria_id is null or dangling).
type ProductoConCategoria struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	CategoriaID *uint   `json:"categoria_id"`
	Categoria   *string `json:"categoria"`
}

type ImagenProducto struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	URL        string `gorm:"not null"                 json:"url"`
	ProductoID uint   `gorm:"index;not null"           json:"producto_id"`
}

func (ImagenProducto) TableName() string { return "imagenes_productos" }

type Usuario struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre       string `gorm:"not null"                 json:"nombre"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         Role   `gorm:"not null;default:cliente" json:"role"`
}

func (Usuario) TableName() string { return "usuarios" }
