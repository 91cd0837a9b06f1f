package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

// Chaves usadas para propagar o idioma e o catálogo no contexto da requisição
const (
	LanguageContextKey = "language"
	CatalogContextKey  = "i18n_catalog"
)

// Catalog resolve códigos de erro/sucesso para mensagens amigáveis.
// As mensagens ficam embutidas no binário (locales/*.json), uma entrada por código.
type Catalog struct {
	mensagens   map[string]map[string]string // [idioma][código]mensagem
	defaultLang string
}

// NewCatalog carrega os arquivos de locale embutidos.
// defaultLang é o idioma de fallback quando o solicitado não existe.
func NewCatalog(defaultLang string) (*Catalog, error) {
	c := &Catalog{
		mensagens:   make(map[string]map[string]string),
		defaultLang: defaultLang,
	}

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}

		data, err := localesFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", name, err)
		}

		var mensagens map[string]string
		if err := json.Unmarshal(data, &mensagens); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", name, err)
		}

		lang := strings.TrimSuffix(name, ".json")
		c.mensagens[lang] = mensagens
	}

	if _, ok := c.mensagens[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locales", defaultLang)
	}

	return c, nil
}

// T traduz um código para o idioma solicitado.
// Cai para o idioma padrão e, em último caso, retorna o próprio código.
func (c *Catalog) T(lang, code string) string {
	if msg, ok := c.mensagens[lang][code]; ok {
		return msg
	}
	if msg, ok := c.mensagens[c.defaultLang][code]; ok {
		return msg
	}
	return code
}

// DefaultLanguage retorna o idioma padrão configurado
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// IsSupported verifica se um idioma possui catálogo carregado
func (c *Catalog) IsSupported(lang string) bool {
	_, ok := c.mensagens[lang]
	return ok
}

// SupportedLanguages retorna a lista de idiomas disponíveis
func (c *Catalog) SupportedLanguages() []string {
	langs := make([]string, 0, len(c.mensagens))
	for lang := range c.mensagens {
		langs = append(langs, lang)
	}
	return langs
}
