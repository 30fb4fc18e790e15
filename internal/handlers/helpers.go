package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valkirianails/salon-api/internal/httperr"
)

// writeEngineError traduce los códigos de negocio de los engines al
// status HTTP que corresponde; cualquier otro error es un fallo interno
// y no filtra detalles al cliente.
func writeEngineError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeValidation:
		httperr.BadRequest(c, httperr.CodeValidation, "Datos inválidos o incompletos.")
	case httperr.CodeInvalidService:
		httperr.BadRequest(c, httperr.CodeInvalidService,
			"El servicio seleccionado no es válido o no está disponible.")
	case httperr.CodeNoChanges:
		httperr.BadRequest(c, httperr.CodeNoChanges,
			"No se proporcionaron datos para actualizar.")
	case httperr.CodeRedemptionPending:
		httperr.BadRequest(c, httperr.CodeRedemptionPending,
			"No se puede reducir las visitas con un canje disponible. Primero canjee el premio.")
	case httperr.CodeNoRedemptionAvailable:
		httperr.BadRequest(c, httperr.CodeNoRedemptionAvailable,
			"Esta tarjeta no tiene un premio disponible para canjear.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "No encontrado.")
	case httperr.CodeDuplicatePhone:
		httperr.Conflict(c, httperr.CodeDuplicatePhone,
			"Ya existe una tarjeta con este número de teléfono.")
	case httperr.CodeDuplicateName:
		httperr.Conflict(c, httperr.CodeDuplicateName, "El nombre ya está en uso.")
	case httperr.CodeStorageUnavailable:
		httperr.Unavailable(c, httperr.CodeStorageUnavailable,
			"Base de datos no disponible.")
	default:
		httperr.Internal(c, fallbackCode, fallbackMsg)
	}
}

func esFechaValida(fecha string) bool {
	_, err := time.Parse("2006-01-02", fecha)
	return err == nil
}

func esHoraValida(hora string) bool {
	_, err := time.Parse("15:04", hora)
	return err == nil
}
