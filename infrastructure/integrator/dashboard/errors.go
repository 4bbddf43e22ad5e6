package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed   = errors.New("falha ao obter dados do dashboard")
	ErrUnsuccessful  = errors.New("dashboard respondeu success=false")
	ErrCalendarFetch = errors.New("falha ao acessar o calendário")
)

// FetchError descreve uma falha ao buscar o snapshot na API do dashboard
type FetchError struct {
	Err        error
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Err, e.StatusCode, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err, e.Cause)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
