package export

import "errors"

var (
	// ErrBuildWorkbook возвращается при ошибке построения xlsx файла
	ErrBuildWorkbook = errors.New("export: failed to build workbook")
)
