package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// ContentType MIME тип xlsx файла
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// Exporter строит xlsx выгрузки (табель и планинг)
type Exporter struct{}

// NewExporter создает новый экземпляр экспортера
func NewExporter() *Exporter {
	return &Exporter{}
}

// sheet обертка над листом excelize с курсором строк
type sheet struct {
	file   *excelize.File
	name   string
	row    int
	header int
	bad    int
}

// newWorkbook создает файл с первым листом name
func newWorkbook(name string) (*excelize.File, *sheet, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, name); err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: rename sheet: %v", ErrBuildWorkbook, err)
	}

	s, err := newSheet(f, name)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, s, nil
}

// addSheet добавляет новый лист в файл
func addSheet(f *excelize.File, name string) (*sheet, error) {
	if _, err := f.NewSheet(name); err != nil {
		return nil, fmt.Errorf("%w: new sheet %s: %v", ErrBuildWorkbook, name, err)
	}
	return newSheet(f, name)
}

func newSheet(f *excelize.File, name string) (*sheet, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: header style: %v", ErrBuildWorkbook, err)
	}

	bad, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#C00000"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: error style: %v", ErrBuildWorkbook, err)
	}

	return &sheet{file: f, name: name, row: 1, header: header, bad: bad}, nil
}

// writeHeader пишет строку заголовков, фиксирует ее и задает ширину колонок
func (s *sheet) writeHeader(titles []string, width float64) error {
	if err := s.writeRow(stringValues(titles)); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return fmt.Errorf("%w: header range: %v", ErrBuildWorkbook, err)
	}
	if err := s.file.SetCellStyle(s.name, "A1", last, s.header); err != nil {
		return fmt.Errorf("%w: header style: %v", ErrBuildWorkbook, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(titles))
	if err != nil {
		return fmt.Errorf("%w: header columns: %v", ErrBuildWorkbook, err)
	}
	if err := s.file.SetColWidth(s.name, "A", lastCol, width); err != nil {
		return fmt.Errorf("%w: column width: %v", ErrBuildWorkbook, err)
	}

	err = s.file.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("%w: freeze header: %v", ErrBuildWorkbook, err)
	}

	return nil
}

// writeRow пишет значения в текущую строку и переводит курсор
func (s *sheet) writeRow(values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, s.row, err)
	}
	if err := s.file.SetSheetRow(s.name, cell, &values); err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, s.row, err)
	}
	s.row++
	return nil
}

// markLastRow подсвечивает последнюю записанную строку как ошибочную
func (s *sheet) markLastRow(columns int) error {
	row := s.row - 1
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, row, err)
	}
	if err := s.file.SetCellStyle(s.name, first, last, s.bad); err != nil {
		return fmt.Errorf("%w: row %d style: %v", ErrBuildWorkbook, row, err)
	}
	return nil
}

// finish сериализует файл в байты
func finish(f *excelize.File) ([]byte, error) {
	defer func() { _ = f.Close() }()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrBuildWorkbook, err)
	}
	return buf.Bytes(), nil
}

// hours переводит минуты в часы с двумя знаками
func hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func stringValues(values []string) []interface{} {
	result := make([]interface{}, 0, len(values))
	for _, v := range values {
		result = append(result, v)
	}
	return result
}
