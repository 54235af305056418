package space

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("space.repository: space not found")

	// ErrSlugExists возвращается при попытке создать пространство с занятым slug
	ErrSlugExists = errors.New("space.repository: slug already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("space.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("space.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("space.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации JSON колонок
	ErrEncode = errors.New("space.repository: failed to encode json column")
)
