package core

import "errors"

var (
	ErrNotFound         = errors.New("tasklist: not found")
	ErrDuplicateRoute   = errors.New("tasklist: duplicate route")
	ErrTemplateNotFound = errors.New("tasklist: template not found")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsTemplateError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
