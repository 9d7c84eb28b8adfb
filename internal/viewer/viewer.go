package viewer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNoSections = errors.New("nenhuma seção encontrada no documento")

var exitWords = map[string]struct{}{
	"salir": {},
	"exit":  {},
	"q":     {},
	"quit":  {},
}

const (
	menuRule    = "======================================================================"
	summaryStar = "⭐"
	goodbye     = "\n👋 ¡Hasta luego! Gracias por usar el visor de Tienda Aurelion"
)

// Viewer conduz o menu interativo sobre um documento já dividido em seções
type Viewer struct {
	doc  Document
	name string
}

func New(doc Document, name string) *Viewer {
	return &Viewer{doc: doc, name: name}
}

// Run mostra o resumo e o menu até o usuário sair ou a entrada terminar
func (v *Viewer) Run(in io.Reader, out io.Writer) error {
	if len(v.doc.Sections) == 0 {
		fmt.Fprintln(out, "\n⚠️  No se pudieron cargar las secciones.")
		return ErrNoSections
	}

	scanner := bufio.NewScanner(in)
	total := len(v.doc.Sections)

	v.printSummary(out)

	for {
		v.printMenu(out)
		fmt.Fprint(out, "\n🎯 Selecciona una sección (número): ")

		if !scanner.Scan() {
			fmt.Fprintln(out, goodbye)
			return scanner.Err()
		}
		option := strings.TrimSpace(scanner.Text())

		if _, ok := exitWords[strings.ToLower(option)]; ok {
			fmt.Fprintln(out, goodbye)
			return nil
		}

		number, err := strconv.Atoi(option)
		if err != nil {
			fmt.Fprintln(out, "❌ Por favor, ingresa un número válido.")
			continue
		}

		switch {
		case number == total+1:
			fmt.Fprintln(out, goodbye)
			return nil
		case number >= 1 && number <= total:
			section := v.doc.Sections[number-1]
			fmt.Fprintf(out, "\n📖 Cargando sección %d...\n", number)
			if err := RenderSection(out, section.Title, section.Body); err != nil {
				return err
			}

			fmt.Fprint(out, "\n⏎ Presiona Enter para continuar...")
			if !scanner.Scan() {
				fmt.Fprintln(out, goodbye)
				return scanner.Err()
			}
		default:
			fmt.Fprintln(out, "❌ Opción no válida. Intenta nuevamente.")
		}
	}
}

func (v *Viewer) printSummary(out io.Writer) {
	stars := strings.Repeat(summaryStar, 35)
	fmt.Fprintf(out, "\n%s\n", stars)
	fmt.Fprintln(out, "⭐           RESUMEN EJECUTIVO - DOCUMENTACIÓN AURELION           ⭐")
	fmt.Fprintln(out, stars)
	if v.name != "" {
		fmt.Fprintf(out, "📖 Documento: %s\n", v.name)
	}
	fmt.Fprintf(out, "📊 Total de secciones disponibles: %d\n", len(v.doc.Sections))
	fmt.Fprintln(out, stars)
}

func (v *Viewer) printMenu(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", menuRule)
	fmt.Fprintln(out, "           🏪 VISOR DE DOCUMENTACIÓN - TIENDA AURELION")
	fmt.Fprintln(out, menuRule)
	fmt.Fprintln(out, "📑 Secciones disponibles:")
	fmt.Fprintln(out, strings.Repeat("-", 50))

	for i, section := range v.doc.Sections {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, section.Title)
	}

	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "  %2d. 🚪 Salir del programa\n", len(v.doc.Sections)+1)
	fmt.Fprintln(out, menuRule)
}
