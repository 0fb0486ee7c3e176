package company_test

import (
	"bytes"
	"strings"
	"testing"

	"go-reestr/internal/company"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportRows() []company.Company {
	return []company.Company{
		{ID: 1, Name: "ООО Ромашка", INN: "7701234567", OGRN: "1027700000000", Reestr: true},
		{ID: 2, Name: `АО "Лютик" & <сыновья>`, INN: "7800000000", OGRN: "1027800000000", Reestr: false},
	}
}

func TestBuildExcelHTML(t *testing.T) {
	t.Run("one table row per company plus header", func(t *testing.T) {
		out := string(company.BuildExcelHTML(exportRows()))

		assert.Equal(t, 3, strings.Count(out, "<tr>"))
		assert.Contains(t, out, "<th>Компания</th><th>ИНН</th><th>ОГРН</th><th>Реестр</th>")
	})

	t.Run("registry flag maps to Да and Нет only", func(t *testing.T) {
		out := string(company.BuildExcelHTML(exportRows()))

		assert.Contains(t, out, "<td>1027700000000</td><td>Да</td>")
		assert.Contains(t, out, "<td>1027800000000</td><td>Нет</td>")
		assert.NotContains(t, out, "true")
		assert.NotContains(t, out, "false")
	})

	t.Run("cells are escaped", func(t *testing.T) {
		out := string(company.BuildExcelHTML(exportRows()))

		assert.Contains(t, out, "АО &#34;Лютик&#34; &amp; &lt;сыновья&gt;")
		assert.NotContains(t, out, "<сыновья>")
	})

	t.Run("formula-like values stay text", func(t *testing.T) {
		out := string(company.BuildExcelHTML([]company.Company{
			{Name: `=HYPERLINK("http://x")`, INN: "+7701", OGRN: "@sum", Reestr: true},
			{Name: "ООО Минус-Плюс", INN: "-1", OGRN: "1027700000000"},
		}))

		assert.Contains(t, out, `mso-number-format:"\@"`)
		assert.Contains(t, out, "<td>&#39;=HYPERLINK(&#34;http://x&#34;)</td><td>&#39;+7701</td><td>&#39;@sum</td>")
		assert.Contains(t, out, "<td>ООО Минус-Плюс</td><td>&#39;-1</td>")
		assert.NotContains(t, out, "<td>=")
	})

	t.Run("empty export keeps header", func(t *testing.T) {
		out := string(company.BuildExcelHTML(nil))

		assert.Equal(t, 1, strings.Count(out, "<tr>"))
	})
}

func TestBuildWorkbook(t *testing.T) {
	body, err := company.BuildWorkbook(exportRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{company.ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(company.ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Компания", "ИНН", "ОГРН", "Реестр"}, rows[0])
	assert.Equal(t, []string{"ООО Ромашка", "7701234567", "1027700000000", "Да"}, rows[1])
	assert.Equal(t, "Нет", rows[2][3])
}

func TestContentDisposition(t *testing.T) {
	got := company.ContentDisposition(company.ExportFileName, company.ExportFileNameUnicode)

	assert.Equal(t,
		`attachment; filename="companies_reestr.xls"; filename*=UTF-8''%D0%BA%D0%BE%D0%BC%D0%BF%D0%B0%D0%BD%D0%B8%D0%B8_%D1%80%D0%B5%D0%B5%D1%81%D1%82%D1%80.xls`,
		got,
	)
}

func TestRegistryFlag(t *testing.T) {
	assert.Equal(t, "Да", company.RegistryFlag(true))
	assert.Equal(t, "Нет", company.RegistryFlag(false))
}
