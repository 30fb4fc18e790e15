package handlers

import (
	"html/template"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/models"
	"github.com/valkirianails/salon-api/internal/textutil"
)

// ======================================================
// VISTA PREVIA PARA REDES SOCIALES
// ======================================================

const (
	previewDefaultTitle       = "Explora Diseños de Uñas Increíbles | Valkiria Nails"
	previewDefaultDescription = "Encuentra tu inspiración en nuestra galería de diseños de uñas. " +
		"Diseños personalizados, colores vibrantes y las últimas tendencias te esperan."
	previewDefaultImage = "https://valkirianails.s3.amazonaws.com/og-default.webp"
)

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="es">
  <head>
    <meta charset="UTF-8" />
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}" />
    <meta property="og:type" content="website" />
    <meta property="og:url" content="{{.URL}}" />
    <meta property="og:title" content="{{.Title}}" />
    <meta property="og:description" content="{{.Description}}" />
    <meta property="og:image" content="{{.Image}}" />
    <meta name="twitter:card" content="summary_large_image" />
    <meta property="twitter:url" content="{{.URL}}" />
    <meta property="twitter:title" content="{{.Title}}" />
    <meta property="twitter:description" content="{{.Description}}" />
    <meta property="twitter:image" content="{{.Image}}" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <h1>{{.Title}}</h1>
    <p>{{.Description}}</p>
    <img src="{{.Image}}" alt="{{.Title}}" style="max-width: 100%; height: auto;" />
  </body>
</html>
`))

type previewData struct {
	Title       string
	Description string
	Image       string
	URL         string
}

type PreviewHandler struct {
	db *gorm.DB
}

func NewPreviewHandler(db *gorm.DB) *PreviewHandler {
	return &PreviewHandler{db: db}
}

// Generate sirve un HTML mínimo con metadatos Open Graph/Twitter para
// que los crawlers de redes sociales muestren el diseño enlazado. Los
// filtros de la query se interpretan igual que en la galería: `search`
// busca por nombre/descripción y cualquier otro parámetro es un slug de
// categoría padre cuyos valores (slugs de subcategoría) deben estar
// todos presentes en el diseño.
func (h *PreviewHandler) Generate(c *gin.Context) {
	disenio := h.buscarDisenio(c)

	data := previewData{
		Title:       previewDefaultTitle,
		Description: previewDefaultDescription,
		Image:       previewDefaultImage,
		URL:         urlCompleta(c),
	}
	if disenio != nil {
		data.Title = disenio.Nombre + " | Valkiria Nails"
		if disenio.Descripcion != nil && *disenio.Descripcion != "" {
			data.Description = *disenio.Descripcion
		}
		if disenio.ImagenURL != "" {
			data.Image = disenio.ImagenURL
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(200)
	if err := previewTmpl.Execute(c.Writer, data); err != nil {
		c.String(500, "Error al generar la vista previa.")
	}
}

// buscarDisenio devuelve el primer diseño activo que cumple todos los
// filtros, o nil si ninguno coincide.
func (h *PreviewHandler) buscarDisenio(c *gin.Context) *models.Disenio {
	q := h.db.
		Preload("Subcategorias", "activo = ?", true).
		Preload("Subcategorias.CategoriaPadre", "activo = ?", true).
		Where("activo = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ?", term, term)
	}

	var disenios []models.Disenio
	if err := q.Order("id DESC").Find(&disenios).Error; err != nil {
		return nil
	}

	filtros := filtrosDeCategorias(c)

	for i := range disenios {
		if cumpleFiltros(&disenios[i], filtros) {
			return &disenios[i]
		}
	}
	return nil
}

// filtrosDeCategorias extrae los parámetros de query que no son de
// paginación ni búsqueda, como pares slugPadre -> slugs requeridos.
func filtrosDeCategorias(c *gin.Context) map[string][]string {
	reservados := map[string]bool{"page": true, "limit": true, "search": true}

	filtros := map[string][]string{}
	for key, values := range c.Request.URL.Query() {
		if reservados[key] || len(values) == 0 {
			continue
		}
		var slugs []string
		for _, v := range values {
			for _, parte := range strings.Split(v, ",") {
				if s := strings.TrimSpace(parte); s != "" {
					slugs = append(slugs, s)
				}
			}
		}
		if len(slugs) > 0 {
			sort.Strings(slugs)
			filtros[key] = slugs
		}
	}
	return filtros
}

func cumpleFiltros(d *models.Disenio, filtros map[string][]string) bool {
	if len(filtros) == 0 {
		return true
	}

	grupos := map[string]map[string]bool{}
	for _, s := range d.Subcategorias {
		if s.CategoriaPadre.ID == 0 {
			continue
		}
		padre := textutil.ToSlug(s.CategoriaPadre.Nombre)
		if grupos[padre] == nil {
			grupos[padre] = map[string]bool{}
		}
		grupos[padre][textutil.ToSlug(s.Nombre)] = true
	}

	for padre, requeridos := range filtros {
		presentes := grupos[padre]
		if presentes == nil {
			return false
		}
		for _, slug := range requeridos {
			if !presentes[slug] {
				return false
			}
		}
	}
	return true
}

func urlCompleta(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
