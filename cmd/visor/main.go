package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/internal/viewer"
)

func main() {
	logrus.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run devolve o código de saída do processo
func run(args []string, in io.Reader, out io.Writer) int {
	flags := flag.NewFlagSet("visor", flag.ContinueOnError)
	flags.SetOutput(out)
	file := flags.String("file", "", "arquivo de documentação (padrão: "+strings.Join(viewer.DefaultCandidates, ", ")+")")
	dir := flags.String("dir", ".", "diretório onde procurar a documentação")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	candidates := viewer.DefaultCandidates
	if *file != "" {
		candidates = []string{*file}
	}

	fmt.Fprintln(out, "\n🔍 Iniciando Visor de Documentación - Tienda Aurelion...")

	path, content, err := viewer.LoadDocument(*dir, candidates)
	if err != nil {
		logrus.WithError(err).Error("Não foi possível abrir a documentação")
		if errors.Is(err, viewer.ErrDocumentNotFound) {
			fmt.Fprintln(out, "❌ No se encontró el archivo de documentación.")
			fmt.Fprintln(out, "💡 Archivos buscados:", strings.Join(candidates, ", "))
		}
		return 1
	}

	fmt.Fprintf(out, "📖 Cargando: %s\n", filepath.Base(path))

	doc := viewer.ParseSections(content, viewer.DefaultExpectedSections)
	for _, warning := range doc.Warnings {
		logrus.WithField("document", path).Warn(warning)
	}

	if len(doc.Sections) > 0 {
		fmt.Fprintf(out, "✅ Se cargaron %d secciones de la documentación\n", len(doc.Sections))
	}

	if err := viewer.New(doc, filepath.Base(path)).Run(in, out); err != nil {
		logrus.WithError(err).Error("Visor encerrado com erro")
		return 1
	}
	return 0
}
