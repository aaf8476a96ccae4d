package team

import "errors"

var (
	// ErrMemberNotFound возвращается, когда мастер не найден
	ErrMemberNotFound = errors.New("team.repository: team member not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("team.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("team.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("team.repository: failed to scan row")
)
