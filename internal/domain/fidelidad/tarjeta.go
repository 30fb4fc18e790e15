package fidelidad

import "math/rand/v2"

// ===============================
// Reglas de la tarjeta de fidelidad
// ===============================

const (
	// MaxVisitas es el tamaño del ciclo: al llegar aquí se habilita el canje.
	MaxVisitas = 4

	CodigoChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodigoLen   = 4

	// MaxIntentosCodigo acota el sorteo de códigos: con 36^4 códigos
	// posibles agotar los intentos solo ocurre con la tabla saturada.
	MaxIntentosCodigo = 1000
)

func VisitasEnRango(n int) bool {
	return n >= 0 && n <= MaxVisitas
}

// CanjePara indica si un conteo de visitas deja el canje disponible.
func CanjePara(visitas int) bool {
	return visitas == MaxVisitas
}

// NuevoCodigo sortea un código de 4 caracteres [A-Z0-9]. La unicidad la
// verifica el caller contra la base.
func NuevoCodigo() string {
	b := make([]byte, CodigoLen)
	for i := range b {
		b[i] = CodigoChars[rand.IntN(len(CodigoChars))]
	}
	return string(b)
}
