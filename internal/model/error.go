package model

import "errors"

var (
	ErrValidation      = errors.New("dati non validi")
	ErrNotFound        = errors.New("record non trovato")
	ErrMissingAPIKey   = errors.New("chiave API DeepSeek non configurata")
	ErrBadGateway      = errors.New("servizio AI non raggiungibile")
	ErrInvalidResponse = errors.New("risposta AI non valida")
	ErrStorage         = errors.New("salvataggio non riuscito")
)
