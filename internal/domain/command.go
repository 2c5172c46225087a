package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the classified purpose of a user command, produced by the
// external natural-language parser
type Intent string

const (
	IntentCriarReceita       Intent = "criar_receita"
	IntentCriarDespesa       Intent = "criar_despesa"
	IntentCriarTransferencia Intent = "criar_transferencia"
	IntentCriarParcelado     Intent = "criar_parcelado"
	IntentCriarMeta          Intent = "criar_meta"
	IntentCriarOrcamento     Intent = "criar_orcamento"
	IntentConsultarSaldo     Intent = "consultar_saldo"
	IntentConsultarGastos    Intent = "consultar_gastos"
	IntentConsultarCategoria Intent = "consultar_categoria"
)

// IsMutating reports whether the intent writes to the external store
func (i Intent) IsMutating() bool {
	switch i {
	case IntentCriarReceita, IntentCriarDespesa, IntentCriarTransferencia,
		IntentCriarParcelado, IntentCriarMeta, IntentCriarOrcamento:
		return true
	}
	return false
}

// RequiresAccount reports whether the intent needs at least one existing
// account before it can execute
func (i Intent) RequiresAccount() bool {
	switch i {
	case IntentCriarReceita, IntentCriarDespesa, IntentCriarTransferencia, IntentCriarParcelado:
		return true
	}
	return false
}

// CommandEntities holds the structured values the parser extracted from the
// user's text. Absent values are nil/zero.
type CommandEntities struct {
	Valor        *decimal.Decimal
	Categoria    string
	Conta        string
	ContaDestino string
	Data         *time.Time
	Descricao    string
	Parcelas     int
}

// ParsedCommand is the opaque output of the external command parser
type ParsedCommand struct {
	Intent       Intent
	Entities     CommandEntities
	OriginalText string
}
