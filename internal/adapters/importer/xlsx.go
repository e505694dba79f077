package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/customerdesk/internal/domain"
)

// Submitter es la única dependencia: validar y agregar un cliente.
type Submitter interface {
	Submit(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
}

type RowIssue struct {
	Row    int          `json:"row"`
	Field  domain.Field `json:"field,omitempty"`
	Reason string       `json:"reason"`
}

type Report struct {
	Timestamp time.Time  `json:"timestamp"`
	Sheet     string     `json:"sheet"`
	Created   []uint     `json:"created"`
	Rejected  []RowIssue `json:"rejected"`
	Failed    []RowIssue `json:"failed"`
}

func (r *Report) Summary() string {
	return fmt.Sprintf("%d created, %d rejected, %d failed", len(r.Created), len(r.Rejected), len(r.Failed))
}

var ErrMissingColumns = errors.New("missing columns")

// ImportXLSX lee la primera hoja: una fila de encabezado con los seis campos
// (cualquier orden, sin distinguir mayúsculas) y un cliente por fila.
// Una falla de persistencia se registra en el reporte y no corta la importación.
func ImportXLSX(ctx context.Context, r io.Reader, sub Submitter) (*Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rep := &Report{Timestamp: time.Now(), Sheet: sheets[0]}

	rows, err := f.GetRows(rep.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", rep.Sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", rep.Sheet, ErrMissingColumns)
	}

	cols, err := headerColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", rep.Sheet, err)
	}
	// Valores sin formato: una celda de fecha llega como número de serie de Excel.
	rawRows, err := f.GetRows(rep.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", rep.Sheet, err)
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rowNum := i + 2
		if blankRow(row) {
			continue
		}
		values := make(map[string]string, len(cols))
		for field, idx := range cols {
			if idx < len(row) {
				values[string(field)] = row[idx]
			}
		}
		if idx := cols[domain.FieldBirthday]; i+1 < len(rawRows) && idx < len(rawRows[i+1]) {
			if d, ok := serialDate(rawRows[i+1][idx], date1904); ok {
				values[string(domain.FieldBirthday)] = d
			}
		}

		c, err := sub.Submit(ctx, domain.CustomerInputFromMap(values))
		var ve *domain.ValidationError
		switch {
		case err == nil:
			rep.Created = append(rep.Created, c.ID)
		case errors.As(err, &ve):
			rep.Rejected = append(rep.Rejected, RowIssue{Row: rowNum, Field: ve.Field, Reason: ve.Reason})
		default:
			log.Error().Err(err).Int("row", rowNum).Msg("import row failed")
			rep.Failed = append(rep.Failed, RowIssue{Row: rowNum, Reason: err.Error()})
		}
	}
	return rep, nil
}

func headerColumns(header []string) (map[domain.Field]int, error) {
	cols := make(map[domain.Field]int, len(domain.FieldOrder))
	for idx, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		for _, f := range domain.FieldOrder {
			if key == string(f) {
				if _, dup := cols[f]; !dup {
					cols[f] = idx
				}
			}
		}
	}
	var missing []string
	for _, f := range domain.FieldOrder {
		if _, ok := cols[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

// serialDate convierte un número de serie de Excel a YYYY-MM-DD. Un texto como
// "2001-09-15" no es un número y se deja para la validación normal.
func serialDate(raw string, date1904 bool) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial <= 0 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
