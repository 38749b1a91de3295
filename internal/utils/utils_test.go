package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/khevencolino/Faisca/internal/lexer"
	"github.com/khevencolino/Faisca/internal/parser"
)

func TestSublinhar(t *testing.T) {
	testes := []struct {
		nome        string
		fonte       string
		inicio, fim int
		esperado    string
	}{
		{"coluna um", "1@2;", 1, 2, "1@2;\n ^"},
		{"inicio", "@;", 0, 1, "@;\n^"},
		{"token longo", "a = 123 @", 4, 7, "a = 123 @\n    ^^^"},
		{"fim da entrada", "1+", 2, 3, "1+\n  ^"},
		{"segunda linha", "a=1;\nb=@;", 7, 8, "b=@;\n  ^"},
		{"intervalo vazio", "1;", 1, 1, "1;\n ^"},
		{"tab", "\t1@;", 2, 3, "\t1@;\n\t ^"},
	}

	for _, tt := range testes {
		t.Run(tt.nome, func(t *testing.T) {
			if obtido := Sublinhar(tt.fonte, tt.inicio, tt.fim); obtido != tt.esperado {
				t.Errorf("esperado\n%q\nobtido\n%q", tt.esperado, obtido)
			}
		})
	}
}

func TestFormatarDiagnosticoLexico(t *testing.T) {
	fonte := "1@2;"
	_, err := lexer.Tokenizar(fonte)
	if err == nil {
		t.Fatalf("esperado erro léxico")
	}
	esperado := "caractere inválido '@' em linha 1, coluna 2\n1@2;\n ^"
	if obtido := FormatarDiagnostico(fonte, err); obtido != esperado {
		t.Errorf("esperado\n%s\nobtido\n%s", esperado, obtido)
	}
}

func TestFormatarDiagnosticoSintatico(t *testing.T) {
	fonte := "1+"
	tokens, err := lexer.Tokenizar(fonte)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	_, err = parser.Analisar(tokens)
	if err == nil {
		t.Fatalf("esperado erro sintático")
	}
	// Embrulhado continua sendo reconhecido
	obtido := FormatarDiagnostico(fonte, fmt.Errorf("etapa: %w", err))
	esperado := "esperado número, variável ou '(' antes do fim em linha 1, coluna 3\n1+\n  ^"
	if obtido != esperado {
		t.Errorf("esperado\n%s\nobtido\n%s", esperado, obtido)
	}
}

func TestFormatarDiagnosticoSemPosicao(t *testing.T) {
	err := errors.New("falha qualquer")
	if obtido := FormatarDiagnostico("1;", err); obtido != "falha qualquer" {
		t.Errorf("esperado mensagem simples, obtido %q", obtido)
	}
}

func TestCompilerError(t *testing.T) {
	if msg := NovoErro("falha", 2, 3, "detalhe").Error(); msg != "falha em linha 2, coluna 3 (detalhe)" {
		t.Errorf("mensagem inesperada: %q", msg)
	}
	if msg := NovoErro("falha", 0, 0, "detalhe").Error(); msg != "falha: detalhe" {
		t.Errorf("mensagem inesperada: %q", msg)
	}
}

func TestArquivos(t *testing.T) {
	nome := filepath.Join(t.TempDir(), "saida", "programa.s")
	if err := EscreverArquivo(nome, []byte("main:\n")); err != nil {
		t.Fatalf("erro ao escrever: %v", err)
	}
	conteudo, err := LerArquivo(nome)
	if err != nil {
		t.Fatalf("erro ao ler: %v", err)
	}
	if conteudo != "main:\n" {
		t.Errorf("conteúdo inesperado: %q", conteudo)
	}

	if _, err := LerArquivo(filepath.Join(t.TempDir(), "nao-existe")); err == nil {
		t.Errorf("esperado erro ao ler arquivo inexistente")
	}
}

func TestTrocarExtensao(t *testing.T) {
	if obtido := TrocarExtensao("dir/programa.fsc", ".s"); obtido != "dir/programa.s" {
		t.Errorf("obtido %q", obtido)
	}
	if obtido := TrocarExtensao("programa.s", ""); obtido != "programa" {
		t.Errorf("obtido %q", obtido)
	}
}
