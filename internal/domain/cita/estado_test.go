package cita

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestEsEstadoValido(t *testing.T) {
	for _, s := range []string{"pendiente", "confirmada", "cancelada", "completada", "atendida"} {
		assert.True(t, EsEstadoValido(s), s)
	}

	assert.False(t, EsEstadoValido(""))
	assert.False(t, EsEstadoValido("Pendiente"))
	assert.False(t, EsEstadoValido("agendada"))
}

func TestDeriveEstado(t *testing.T) {
	tests := []struct {
		name      string
		actual    string
		aceptada  *bool
		propuesto string
		want      string
	}{
		{
			name:     "aceptada true deriva confirmada",
			actual:   "pendiente",
			aceptada: boolPtr(true),
			want:     "confirmada",
		},
		{
			name:     "aceptada false deriva pendiente",
			actual:   "confirmada",
			aceptada: boolPtr(false),
			want:     "pendiente",
		},
		{
			name:      "estado explícito válido gana sobre aceptada",
			actual:    "pendiente",
			aceptada:  boolPtr(true),
			propuesto: "cancelada",
			want:      "cancelada",
		},
		{
			name:      "estado inválido junto a aceptada se ignora",
			actual:    "pendiente",
			aceptada:  boolPtr(true),
			propuesto: "lo-que-sea",
			want:      "confirmada",
		},
		{
			name:      "solo estado válido se aplica",
			actual:    "pendiente",
			propuesto: "atendida",
			want:      "atendida",
		},
		{
			name:      "solo estado inválido conserva el actual",
			actual:    "confirmada",
			propuesto: "zzz",
			want:      "confirmada",
		},
		{
			name:   "sin cambios conserva el actual",
			actual: "cancelada",
			want:   "cancelada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveEstado(tt.actual, tt.aceptada, tt.propuesto)
			assert.Equal(t, tt.want, got)
		})
	}
}
