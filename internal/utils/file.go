package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// LerArquivo lê um arquivo de programa e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErro("erro ao ler arquivo", 0, 0, err.Error())
	}
	return string(bytesConteudo), nil
}

// EscreverArquivo grava a saída gerada, criando o diretório se preciso
func EscreverArquivo(nomeArquivo string, conteudo []byte) error {
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErro("erro ao criar diretório", 0, 0, err.Error())
	}

	if err := os.WriteFile(nomeArquivo, conteudo, 0644); err != nil {
		return NovoErro("erro ao escrever arquivo", 0, 0, err.Error())
	}

	return nil
}

// TrocarExtensao substitui a extensão do arquivo; extensão vazia só remove
func TrocarExtensao(nomeArquivo, extensao string) string {
	return strings.TrimSuffix(nomeArquivo, filepath.Ext(nomeArquivo)) + extensao
}
