package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed = errors.New("requisição de geração falhou")
	ErrEmptyResponse = errors.New("resposta de geração sem texto")
)

// GenerationError envolve ErrRequestFailed ou ErrEmptyResponse com o contexto da falha
type GenerationError struct {
	Err        error
	StatusCode int
	Cause      error
}

func (e *GenerationError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("%s (status %d)", e.Err, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err, e.Cause)
	default:
		return e.Err.Error()
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError indica se o erro veio do serviço de geração
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrRequestFailed) || errors.Is(err, ErrEmptyResponse)
}
