package viewer

import (
	"fmt"
	"strings"
)

// IntroTitle é o título dado ao texto anterior ao primeiro "## "
const IntroTitle = "📖 INTRODUCCIÓN"

// DefaultExpectedSections são as seções que a documentação da loja deve ter
var DefaultExpectedSections = []string{
	"🏗️ ESTRUCTURA DE LA BASE DE DATOS",
	"📊 DETALLE ESTRUCTURAL POR TABLA",
	"📈 ESCALA Y VOLUMEN DE DATOS",
	"🔢 TIPOS DE DATOS Y DOMINIOS",
	"🎯 CARACTERÍSTICAS TÉCNICAS",
	"📊 POTENCIAL ANALÍTICO",
	"📋 PREGUNTAS CLAVE",
}

type Section struct {
	Title string
	Body  string
}

// Document guarda as seções na ordem do arquivo e os avisos do parse
type Document struct {
	Sections []Section
	Warnings []string
}

const (
	headingPrefix = "## "
	divOpen       = "<div"
	divClose      = "</div>"
)

// ParseSections divide o conteúdo em seções. Cada "## " abre uma seção que
// termina no próximo "## " ou no "</div>" que fecha o bloco do documento.
// Pares <div>...</div> dentro de uma seção fazem parte do corpo. Seções
// vazias são descartadas e seções esperadas ausentes viram avisos; o parse
// nunca falha.
func ParseSections(content string, expected []string) Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	doc := Document{}

	first := firstHeading(lines)
	if intro := parseIntro(lines[:first]); intro != "" {
		doc.Sections = append(doc.Sections, Section{Title: IntroTitle, Body: intro})
	}

	var (
		current *Section
		body    []string
	)
	closeSection := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Body == "" {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("seção vazia descartada: %s", current.Title))
		} else {
			doc.Sections = append(doc.Sections, *current)
		}
		current = nil
		body = nil
	}

	depth := 0
	dropped := 0
	for _, line := range lines[first:] {
		if isHeading(line) {
			closeSection()
			current = &Section{Title: strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))}
			depth = 0
			continue
		}

		if current == nil {
			if strings.TrimSpace(line) != "" {
				dropped++
			}
			continue
		}

		if idx := unmatchedDivClose(line, &depth); idx >= 0 {
			body = append(body, line[:idx])
			closeSection()
			if strings.TrimSpace(line[idx+len(divClose):]) != "" {
				dropped++
			}
			continue
		}

		body = append(body, line)
	}
	closeSection()

	if dropped > 0 {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("%d linha(s) fora do bloco do documento ignorada(s)", dropped))
	}

	doc.Warnings = append(doc.Warnings, missingSections(doc.Sections, expected)...)

	return doc
}

// unmatchedDivClose percorre as tags <div e </div> da linha atualizando a
// profundidade e devolve a posição do primeiro </div> sem abertura
// correspondente na seção, ou -1.
func unmatchedDivClose(line string, depth *int) int {
	pos := 0
	for pos < len(line) {
		open := strings.Index(line[pos:], divOpen)
		closing := strings.Index(line[pos:], divClose)

		switch {
		case open < 0 && closing < 0:
			return -1
		case closing < 0 || (open >= 0 && open < closing):
			*depth++
			pos += open + len(divOpen)
		default:
			if *depth == 0 {
				return pos + closing
			}
			*depth--
			pos += closing + len(divClose)
		}
	}
	return -1
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, headingPrefix)
}

func firstHeading(lines []string) int {
	for i, line := range lines {
		if isHeading(line) {
			return i
		}
	}
	return len(lines)
}

// parseIntro usa o conteúdo do <div> inicial quando existir, senão o texto puro
func parseIntro(lines []string) string {
	intro := strings.Join(lines, "\n")

	if start := strings.Index(intro, divOpen); start >= 0 {
		rest := intro[start:]
		if end := strings.Index(rest, ">"); end >= 0 {
			intro = rest[end+1:]
		} else {
			intro = ""
		}
	}

	if end := strings.Index(intro, divClose); end >= 0 {
		intro = intro[:end]
	}

	return strings.TrimSpace(intro)
}

func missingSections(sections []Section, expected []string) []string {
	present := make(map[string]struct{}, len(sections))
	for _, section := range sections {
		present[section.Title] = struct{}{}
	}

	warnings := make([]string, 0)
	for _, title := range expected {
		if _, ok := present[title]; !ok {
			warnings = append(warnings, fmt.Sprintf("seção esperada não encontrada: %s", title))
		}
	}
	return warnings
}
