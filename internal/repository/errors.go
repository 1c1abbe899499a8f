package repository

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrFAQNotFound             = errors.New("faq not found")
	ErrMessageTemplateNotFound = errors.New("message template not found")
	ErrAppointmentNotFound     = errors.New("appointment not found")
)

// NotFoundError names the missing row and matches its entity sentinel with errors.Is.
type NotFoundError struct {
	Entity string
	ID     int64
	err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.err
}

func NotFound(sentinel error, entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id, err: sentinel}
}
