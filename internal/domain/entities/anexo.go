package entities

// AnexoMaterial representa um arquivo anexado a um material.
// Anexos são removidos fisicamente junto com o material (cascade).
type AnexoMaterial struct {
	ID          string
	MaterialID  string
	ArquivoURL  string
	ArquivoType string
}
