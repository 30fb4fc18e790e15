package cita

// ===============================
// Estados de una cita
// ===============================

type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoConfirmada Estado = "confirmada"
	EstadoCancelada  Estado = "cancelada"
	EstadoCompletada Estado = "completada"
	EstadoAtendida   Estado = "atendida"
)

func EsEstadoValido(s string) bool {
	switch Estado(s) {
	case EstadoPendiente, EstadoConfirmada, EstadoCancelada,
		EstadoCompletada, EstadoAtendida:
		return true
	}
	return false
}

// DeriveEstado reconcilia el estado de una cita cuando el admin manda
// `aceptada` y/o `estado` en una actualización parcial:
//
//   - si viene `aceptada`, el estado se deriva de ella (confirmada /
//     pendiente) salvo que también venga un estado explícito válido,
//     que gana.
//   - si solo viene un estado válido, ese se aplica.
//   - si no viene ninguno, el estado actual se conserva.
func DeriveEstado(actual string, aceptada *bool, propuesto string) string {
	if aceptada != nil {
		derivado := EstadoPendiente
		if *aceptada {
			derivado = EstadoConfirmada
		}
		if EsEstadoValido(propuesto) {
			return propuesto
		}
		return string(derivado)
	}

	if EsEstadoValido(propuesto) {
		return propuesto
	}
	return actual
}
