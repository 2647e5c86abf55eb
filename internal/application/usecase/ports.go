package usecase

// Runner serializa los ciclos leer-modificar-escribir de los CRUD sobre el
// storage de archivos compartido.
type Runner interface {
	Run(fn func() error) error
}
