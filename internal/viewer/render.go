package viewer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	BoxWidth     = 68
	ContentWidth = BoxWidth - 2

	titlePrefix   = "🏪 TIENDA AURELION - "
	subheadingPin = "📌 "
)

var (
	htmlTag       = regexp.MustCompile(`<[^>]+>`)
	markdownImage = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
)

// CleanBody remove tags HTML e imagens markdown
func CleanBody(body string) string {
	body = markdownImage.ReplaceAllString(body, "")
	return htmlTag.ReplaceAllString(body, "")
}

// RenderSection escreve a seção numa caixa de BoxWidth colunas de exibição,
// seguida do total de linhas informativas
func RenderSection(w io.Writer, title, body string) error {
	var b strings.Builder

	b.WriteString(border('╔', '═', '╗'))
	b.WriteString(boxLine(center(titlePrefix+strings.ToUpper(title), ContentWidth)))
	b.WriteString(border('╠', '═', '╣'))

	cleaned := CleanBody(body)
	for _, raw := range strings.Split(cleaned, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "###"):
			b.WriteString(border('╠', '─', '╣'))
			b.WriteString(boxLine(subheadingPin + strings.TrimSpace(strings.TrimLeft(line, "#"))))
			b.WriteString(border('╠', '─', '╣'))
		case strings.HasPrefix(line, "#"):
			continue
		case isTableSeparator(line):
			continue
		case strings.HasPrefix(line, "|"):
			b.WriteString(boxLine(line))
		default:
			for _, part := range wrap(line, ContentWidth) {
				b.WriteString(boxLine(part))
			}
		}
	}

	b.WriteString(border('╚', '═', '╝'))
	b.WriteString(fmt.Sprintf("📊 Contenido: %d líneas informativas\n", InformativeLines(cleaned)))

	_, err := io.WriteString(w, b.String())
	return err
}

// InformativeLines conta as linhas com conteúdo que não são títulos nem separadores
func InformativeLines(body string) int {
	count := 0
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.Contains(line, "---") {
			continue
		}
		count++
	}
	return count
}

func isTableSeparator(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Contains(line, "---")
}

func border(left, fill, right rune) string {
	return string(left) + strings.Repeat(string(fill), BoxWidth) + string(right) + "\n"
}

// boxLine completa a linha até a largura da caixa; linhas de tabela maiores
// que a caixa saem como estão
func boxLine(text string) string {
	return "║ " + runewidth.FillRight(text, ContentWidth) + " ║\n"
}

func center(text string, width int) string {
	text = runewidth.Truncate(text, width, "…")
	padding := width - runewidth.StringWidth(text)
	left := padding / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}

// wrap quebra a linha em pedaços de no máximo width colunas de exibição
func wrap(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	parts := make([]string, 0)
	var (
		current strings.Builder
		used    int
	)
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && used > 0 {
			parts = append(parts, current.String())
			current.Reset()
			used = 0
		}
		current.WriteRune(r)
		used += rw
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
