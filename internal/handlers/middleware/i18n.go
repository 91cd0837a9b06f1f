package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/i18n"
)

// I18nMiddleware detecta o idioma da requisição e publica o catálogo de
// mensagens no contexto
type I18nMiddleware struct {
	catalog *i18n.Catalog
}

// NewI18nMiddleware cria um novo I18nMiddleware
func NewI18nMiddleware(catalog *i18n.Catalog) *I18nMiddleware {
	return &I18nMiddleware{catalog: catalog}
}

// Handle resolve o idioma a partir do parâmetro ?lang= e, na ausência dele,
// do header Accept-Language. Idiomas não suportados caem no padrão.
func (m *I18nMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if !m.catalog.IsSupported(lang) {
			lang = m.catalog.DefaultLanguage()
		}

		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.CatalogContextKey, m.catalog)
		c.Next()
	}
}

// parseAcceptLanguage extrai a primeira tag de idioma do header,
// ignorando pesos (q=)
func parseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	primeiro, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(strings.TrimSpace(primeiro), ";")
	return strings.TrimSpace(tag)
}
