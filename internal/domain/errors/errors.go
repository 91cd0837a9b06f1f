package errors

import "errors"

// Erros de negócio.
// Nota: a mensagem de cada erro é o código enviado no envelope de resposta,
// que também serve de chave de tradução em internal/infrastructure/i18n/locales/*.json
var (
	ErrUsuarioNaoEncontrado    = errors.New("user_not_found")
	ErrMaterialNaoEncontrado   = errors.New("material_not_found")
	ErrComentarioNaoEncontrado = errors.New("comentario_not_found")
	ErrCategoriaNaoEncontrada  = errors.New("categoria_not_found")

	ErrEmailJaExiste     = errors.New("email_exists")
	ErrApelidoJaExiste   = errors.New("nickname_exists")
	ErrCategoriaJaExiste = errors.New("categoria_already_exists")

	ErrCredenciaisInvalidas = errors.New("invalid_credentials")
	ErrNaoAutenticado       = errors.New("unauthenticated")
	ErrNaoAutorizado        = errors.New("unauthorized")
	ErrAcessoNegado         = errors.New("access_denied")
	ErrAdminNecessario      = errors.New("admin_required")

	ErrDataNascimentoInvalida = errors.New("invalid_birthdate")
	ErrPaginacaoInvalida      = errors.New("invalid_pagination")
	ErrDadosInvalidos         = errors.New("invalid_input")
)

// Code retorna o código de erro associado a um erro de domínio.
// Para erros desconhecidos retorna o fallback informado.
func Code(err error, fallback string) string {
	for _, known := range []error{
		ErrUsuarioNaoEncontrado, ErrMaterialNaoEncontrado, ErrComentarioNaoEncontrado,
		ErrCategoriaNaoEncontrada, ErrEmailJaExiste, ErrApelidoJaExiste,
		ErrCategoriaJaExiste, ErrCredenciaisInvalidas, ErrNaoAutenticado,
		ErrNaoAutorizado, ErrAcessoNegado, ErrAdminNecessario,
		ErrDataNascimentoInvalida, ErrPaginacaoInvalida, ErrDadosInvalidos,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallback
}
