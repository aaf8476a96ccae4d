package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrMemberNotFound возвращается, когда мастер не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrDuplicateName возвращается, когда услуга с таким именем уже существует
	ErrDuplicateName = errors.New("service name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
