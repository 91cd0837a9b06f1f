package auth

import "golang.org/x/crypto/bcrypt"

// SenhaHasher gera e compara digests de senha com bcrypt
type SenhaHasher struct {
	cost int
}

// NewSenhaHasher cria um novo SenhaHasher com o custo default do bcrypt
func NewSenhaHasher() *SenhaHasher {
	return &SenhaHasher{cost: bcrypt.DefaultCost}
}

// Hash gera o digest da senha
func (h *SenhaHasher) Hash(senha string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare verifica se a senha corresponde ao digest armazenado
func (h *SenhaHasher) Compare(digest, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(senha)) == nil
}
