package workflow

// Notifier es el canal de avisos al usuario. Se construye una vez al arrancar
// la aplicación y se pasa por referencia a cada vista que lo necesita; nunca
// se consulta a través de estado global.
type Notifier interface {
	Success(mensaje string)
	Error(mensaje string)
}

// ConfirmFunc pide al usuario una confirmación bloqueante sí/no.
type ConfirmFunc func(mensaje string) bool
