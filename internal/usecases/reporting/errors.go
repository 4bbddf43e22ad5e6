package reporting

import "errors"

var (
	ErrDemoModeOnly = errors.New("série sintética disponível apenas em modo demonstração")
	ErrEmptyPalette = errors.New("paleta de cores vazia")
)
