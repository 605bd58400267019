package users

// User es la cuenta dueña de las mascotas. El UID viene del proveedor de
// identidad externo (no lo generamos nosotros).
type User struct {
	UID      string
	Email    string
	Nickname string
	PhotoID  *string
}
