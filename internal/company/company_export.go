package company

import (
	"html"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ExcelContentType = "application/vnd.ms-excel"
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ExportFileName        = "companies_reestr.xls"
	ExportFileNameUnicode = "компании_реестр.xls"
	WorkbookFileName      = "companies_reestr.xlsx"
	WorkbookFileNameUTF8  = "компании_реестр.xlsx"

	ExportSheetName = "Реестр"
)

var exportHeader = []string{"Компания", "ИНН", "ОГРН", "Реестр"}

func exportRow(c Company) []string {
	return []string{c.Name, c.INN, c.OGRN, RegistryFlag(c.Reestr)}
}

// BuildExcelHTML renders rows as an HTML table that spreadsheet software
// opens as an .xls document.
func BuildExcelHTML(rows []Company) []byte {
	var b strings.Builder

	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel">`)
	b.WriteString(`<head><meta charset="UTF-8"><style>td{mso-number-format:"\@";}</style></head>`)
	b.WriteString(`<body><table border="1"><thead><tr>`)
	for _, h := range exportHeader {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range exportRow(row) {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(textCell(cell)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table></body></html>")
	return []byte(b.String())
}

// textCell keeps spreadsheet software from reading a value as a formula
func textCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

// BuildWorkbook renders rows as a native .xlsx workbook with a single sheet
func BuildWorkbook(rows []Company) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ExportSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(exportHeader))
	for _, h := range exportHeader {
		header = append(header, h)
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := exportRow(row)
		values := make([]interface{}, 0, len(cells))
		for _, cell := range cells {
			values = append(values, cell)
		}
		if err := f.SetSheetRow(ExportSheetName, "A"+strconv.Itoa(i+2), &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContentDisposition builds an attachment header with an ASCII fallback name
// and an RFC 5987 encoded UTF-8 name.
func ContentDisposition(asciiName, utf8Name string) string {
	return `attachment; filename="` + asciiName + `"; filename*=UTF-8''` + encodeRFC5987(utf8Name)
}

func encodeRFC5987(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '-', c == '_', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}
