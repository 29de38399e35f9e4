package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("record not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnprocessable = errors.New("unprocessable entity")
)

// NotFoundError indica que un id no resuelve a ningún registro.
// El mensaje replica el formato expuesto por la API: Couldn't find Item with 'id'=1.
type NotFoundError struct {
	Entity string
	ID     string
	msg    string
}

// NewNotFound construye el error para la entidad e id indicados.
func NewNotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

// NewNotFoundMessage construye un NotFound con mensaje libre ("Merchant not found").
func NewNotFoundMessage(entity, msg string) *NotFoundError {
	return &NotFoundError{Entity: entity, msg: msg}
}

func (e *NotFoundError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("Couldn't find %s with 'id'=%s", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError agrupa los campos que no pasaron la validación de presencia.
type ValidationError struct {
	Messages []string
}

// NewValidation construye el error con uno o más mensajes ("Name can't be blank").
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InputError es un parámetro de consulta inválido o ambiguo; el mensaje se expone tal cual.
type InputError struct {
	msg  string
	kind error
}

// NewInputError construye un error de entrada con mensaje fijo (400).
func NewInputError(msg string) *InputError {
	return &InputError{msg: msg, kind: ErrInvalidInput}
}

// NewUnprocessable construye un error de entrada que la API responde con 422.
func NewUnprocessable(msg string) *InputError {
	return &InputError{msg: msg, kind: ErrUnprocessable}
}

func (e *InputError) Error() string { return e.msg }

func (e *InputError) Is(target error) bool { return target == e.kind }
