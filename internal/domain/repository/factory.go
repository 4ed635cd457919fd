package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Orders() OrderRepository
	Boxes() BoxRepository
}
