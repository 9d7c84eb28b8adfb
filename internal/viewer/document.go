// Package viewer implementa o visor de documentação em terminal: localiza o
// markdown da loja, divide em seções e permite navegar por elas num menu.
package viewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCandidates são os nomes procurados, em ordem de preferência
var DefaultCandidates = []string{"DOCUMENTACION.md", "documentacion.md", "DOCUMENTACION.MD"}

var ErrDocumentNotFound = errors.New("documento não encontrado")

// FindDocument retorna o caminho do primeiro candidato que existe em dir
func FindDocument(dir string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	for _, candidate := range candidates {
		path := candidate
		if !filepath.IsAbs(candidate) {
			path = filepath.Join(dir, candidate)
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, nil
	}

	return "", fmt.Errorf("%w: arquivos buscados: %s", ErrDocumentNotFound, strings.Join(candidates, ", "))
}

// LoadDocument localiza e lê o documento
func LoadDocument(dir string, candidates []string) (string, string, error) {
	path, err := FindDocument(dir, candidates)
	if err != nil {
		return "", "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	return path, string(content), nil
}
