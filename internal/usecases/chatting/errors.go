package chatting

import "errors"

var (
	ErrSessionBusy     = errors.New("sessão aguardando resposta")
	ErrNotAwaiting     = errors.New("sessão não está aguardando resposta")
	ErrSessionNotFound = errors.New("sessão não encontrada")
	ErrEmptyQuestion   = errors.New("pergunta vazia")
)
