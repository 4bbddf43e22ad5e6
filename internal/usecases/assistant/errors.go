package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrNoInsightArray      = errors.New("nenhuma lista de insights encontrada na resposta")
	ErrInvalidInsightArray = errors.New("lista de insights inválida")
	ErrEmptyQuestion       = errors.New("pergunta vazia")
	ErrNoInsightsYet       = errors.New("nenhum insight gerado ainda")
)

// ParseError é absorvido pelo fallback e nunca chega ao usuário
type ParseError struct {
	Err   error
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err, e.Cause)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
