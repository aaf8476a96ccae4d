package content

import "errors"

var (
	// ErrImageNotFound возвращается, когда фото не найдено
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrSettingsNotFound возвращается, когда настройки еще не созданы
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrFileTooLarge возвращается, когда загружаемый файл превышает лимит
	ErrFileTooLarge = errors.New("uploaded file is too large")

	// ErrUnsupportedFileType возвращается для файлов с неподдерживаемым расширением
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
