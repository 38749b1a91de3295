package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/backends/bytecode"
	"github.com/khevencolino/Faisca/internal/lexer"
	"github.com/khevencolino/Faisca/internal/parser"
)

func programaDe(t *testing.T, fonte string) parser.Programa {
	t.Helper()
	tokens, err := lexer.Tokenizar(fonte)
	if err != nil {
		t.Fatalf("%q: %v", fonte, err)
	}
	programa, err := parser.Analisar(tokens)
	if err != nil {
		t.Fatalf("%q: %v", fonte, err)
	}
	return programa
}

var programas = []struct {
	fonte    string
	esperado int64
}{
	{"a=3;b=5;a+b;", 8},
	{"42;", 42},
	{"5+20-4;", 21},
	{"5+6*7;", 47},
	{"5*(9-6);", 15},
	{"(3+5)/2;", 4},
	{"-3*+5+20;", 5},
	{"-7/2;", -3},
	{"0==1;", 0},
	{"0!=1;", 1},
	{"1<2;", 1},
	{"2<=1;", 0},
	{"2>1;", 1},
	{"1>=2;", 0},
	{"a=b=3;a+b;", 6},
	{"z=7;y=z*z;y-z;", 42},
	{"a=1;(a=5)+a;", 10},
	{"q;", 0},
	{"1<2==1;", 1},
	{"", 0},
	{strings.Repeat("1+(", 300) + "1" + strings.Repeat(")", 300) + ";", 301},
}

func TestAvaliar(t *testing.T) {
	interpretador := NewInterpreterBackend()
	for _, tt := range programas {
		resultado, err := interpretador.Avaliar(programaDe(t, tt.fonte))
		if err != nil {
			t.Fatalf("%q: erro inesperado: %v", tt.fonte, err)
		}
		if resultado != tt.esperado {
			t.Errorf("%q: esperado %d, obtido %d", tt.fonte, tt.esperado, resultado)
		}
	}
}

func TestConcordaComVM(t *testing.T) {
	for _, tt := range programas {
		programa := programaDe(t, tt.fonte)

		esperado, err := NewInterpreterBackend().Avaliar(programa)
		if err != nil {
			t.Fatalf("%q: %v", tt.fonte, err)
		}
		instrucoes, err := bytecode.NewBytecodeBackend().Gerar(programa)
		if err != nil {
			t.Fatalf("%q: %v", tt.fonte, err)
		}
		obtido, err := bytecode.NewVM().Execute(instrucoes)
		if err != nil {
			t.Fatalf("%q: %v", tt.fonte, err)
		}
		if obtido != esperado {
			t.Errorf("%q: interpretador %d, VM %d", tt.fonte, esperado, obtido)
		}
	}
}

func TestEstadoNaoVazaEntreExecucoes(t *testing.T) {
	interpretador := NewInterpreterBackend()
	if _, err := interpretador.Avaliar(programaDe(t, "a=9;")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	resultado, err := interpretador.Avaliar(programaDe(t, "a;"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if resultado != 0 {
		t.Errorf("esperado 0, obtido %d", resultado)
	}
}

func TestErros(t *testing.T) {
	testes := []struct {
		fonte string
		tipo  backends.TipoErroGeracao
	}{
		{"1/0;", backends.ERRO_EXECUCAO},
		{"a=0;5/a;", backends.ERRO_EXECUCAO},
		{"1=2;", backends.NO_NAO_SUPORTADO},
		{"(a+b)=2;", backends.NO_NAO_SUPORTADO},
	}

	for _, tt := range testes {
		_, err := NewInterpreterBackend().Avaliar(programaDe(t, tt.fonte))
		var erroGeracao *backends.ErroGeracao
		if !errors.As(err, &erroGeracao) {
			t.Fatalf("%q: esperado ErroGeracao, obtido %v", tt.fonte, err)
		}
		if erroGeracao.Tipo != tt.tipo {
			t.Errorf("%q: tipo esperado %d, obtido %d", tt.fonte, tt.tipo, erroGeracao.Tipo)
		}
	}
}

func TestCompileEscreveResultados(t *testing.T) {
	var saida bytes.Buffer
	if err := NewInterpreterBackend().Compile(&saida, programaDe(t, "a=2;a*3;")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	texto := saida.String()
	for _, trecho := range []string{"--- Statement 1 ---", "--- Statement 2 ---", "Resultado: 2", "Resultado: 6", "Resultado final: 6", "a[-8]"} {
		if !strings.Contains(texto, trecho) {
			t.Errorf("saída sem %q:\n%s", trecho, texto)
		}
	}
}
