package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/i18n"
)

// T traduz um código de mensagem usando o catálogo e o idioma detectados
// pelo middleware. Fora de uma requisição com i18n configurado, retorna o
// próprio código.
func T(c *gin.Context, code string) string {
	valor, exists := c.Get(i18n.CatalogContextKey)
	if !exists {
		return code
	}

	catalog, ok := valor.(*i18n.Catalog)
	if !ok {
		return code
	}

	lang := c.GetString(i18n.LanguageContextKey)
	if lang == "" {
		lang = catalog.DefaultLanguage()
	}

	return catalog.T(lang, code)
}
