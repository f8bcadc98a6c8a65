package dispatching

import (
	"errors"
	"fmt"
)

// Erros das ações do painel. A mensagem é exibida como veio, sem retry.
var (
	ErrNotificationIndex = errors.New("notificação não encontrada na lista exibida")
	ErrNothingToUndo     = errors.New("não há lista anterior para restaurar")
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrMissingTarget     = errors.New("destinatário do alerta não informado")
	ErrEmptyMessage      = errors.New("mensagem do alerta vazia")
	ErrInvalidUpload     = errors.New("arquivo CSV inválido")
	ErrUploadFailed      = errors.New("falha ao enviar e processar o arquivo")
	ErrStoreOperation    = errors.New("erro ao gravar no document store")
	ErrBackendOperation  = errors.New("erro ao chamar o backend")
)

// DispatchError é um erro com contexto adicional para as ações
type DispatchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DispatchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func NewDispatchError(err error, code string, details string) *DispatchError {
	return &DispatchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
