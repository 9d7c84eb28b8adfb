package viewer

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, title, body string) []string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, RenderSection(&out, title, body))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRenderSection_Box(t *testing.T) {
	lines := render(t, "🏗️ Estructura", "Texto con emoji 🏪 y acentos á.")

	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "╔"+strings.Repeat("═", BoxWidth)+"╗", lines[0])
	assert.Contains(t, lines[1], "TIENDA AURELION - 🏗️ ESTRUCTURA")

	// todas as linhas da caixa têm a mesma largura de exibição
	for _, line := range lines[:len(lines)-1] {
		assert.Equal(t, BoxWidth+2, runewidth.StringWidth(line), line)
	}
	assert.Equal(t, "📊 Contenido: 1 líneas informativas", lines[len(lines)-1])
}

func TestRenderSection_Content(t *testing.T) {
	body := strings.Join([]string{
		`<p align="center"><img src="logo.png"></p>`,
		"![logo](img/logo.png) Bienvenidos",
		"### Tablas",
		"| campo | tipo |",
		"|-------|------|",
		"| id | int |",
		"#### detalle",
		"",
		"# titulo ignorado",
	}, "\n")

	output := strings.Join(render(t, "Sección", body), "\n")

	assert.NotContains(t, output, "<p")
	assert.NotContains(t, output, "logo.png")
	assert.Contains(t, output, "Bienvenidos")
	assert.Contains(t, output, "📌 Tablas")
	assert.Contains(t, output, "╠"+strings.Repeat("─", BoxWidth)+"╣")
	assert.Contains(t, output, "| campo | tipo |")
	assert.NotContains(t, output, "|-------|")
	assert.Contains(t, output, "📌 detalle")
	assert.NotContains(t, output, "titulo ignorado")
	assert.Contains(t, output, "📊 Contenido: 3 líneas informativas")
}

func TestRenderSection_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("a", ContentWidth*2+10)

	lines := render(t, "x", long)

	// borda, título, borda, 3 pedaços, borda, rodapé
	require.Len(t, lines, 8)
	assert.Equal(t, "║ "+strings.Repeat("a", ContentWidth)+" ║", lines[3])
	assert.Equal(t, "║ "+strings.Repeat("a", ContentWidth)+" ║", lines[4])
	assert.Equal(t, "║ "+runewidth.FillRight(strings.Repeat("a", 10), ContentWidth)+" ║", lines[5])
}

func TestRenderSection_LongTableRowAsIs(t *testing.T) {
	row := "| " + strings.Repeat("x", 80) + " |"

	lines := render(t, "x", row)

	assert.Equal(t, "║ "+row+" ║", lines[3])
}

func TestWrap_WideRunes(t *testing.T) {
	parts := wrap(strings.Repeat("🏪", 40), ContentWidth)

	require.Len(t, parts, 2)
	assert.Equal(t, 66, runewidth.StringWidth(parts[0]))
	assert.Equal(t, 14, runewidth.StringWidth(parts[1]))
}

func TestInformativeLines(t *testing.T) {
	assert.Equal(t, 0, InformativeLines(""))
	assert.Equal(t, 2, InformativeLines("# t\nuno\n\n---\n|---|---|\ndos"))
}
