package lexer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTokenizarEspacos(t *testing.T) {
	tokens, err := Tokenizar("  1  ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	esperado := []Token{
		NovoToken(NUMBER, "1", NovoSpan(2, 3)),
		NovoToken(EOF, "", NovoSpan(5, 5)),
	}
	if len(tokens) != len(esperado) {
		t.Fatalf("esperado %d tokens, obtido %d: %v", len(esperado), len(tokens), tokens)
	}
	for i := range esperado {
		if tokens[i] != esperado[i] {
			t.Errorf("token %d: esperado %v, obtido %v", i, esperado[i], tokens[i])
		}
	}
}

func TestTokenizarOperadores(t *testing.T) {
	testes := []struct {
		fonte string
		tipos []TokenType
	}{
		{"+-*/()", []TokenType{PLUS, MINUS, MULTIPLY, DIVIDE, LPAREN, RPAREN, EOF}},
		{"== != >= > <= <", []TokenType{EQUAL, NOT_EQUAL, GREATER_EQUAL, GREATER, LESS_EQUAL, LESS, EOF}},
		{"a=b==c;", []TokenType{IDENTIFIER, ASSIGN, IDENTIFIER, EQUAL, IDENTIFIER, SEMICOLON, EOF}},
		{"<<=>>=", []TokenType{LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF}},
		{"ab", []TokenType{IDENTIFIER, IDENTIFIER, EOF}},
		{"", []TokenType{EOF}},
	}

	for _, tt := range testes {
		tokens, err := Tokenizar(tt.fonte)
		if err != nil {
			t.Fatalf("%q: erro inesperado: %v", tt.fonte, err)
		}
		if len(tokens) != len(tt.tipos) {
			t.Fatalf("%q: esperado %d tokens, obtido %d: %v", tt.fonte, len(tt.tipos), len(tokens), tokens)
		}
		for i, tipo := range tt.tipos {
			if tokens[i].Type != tipo {
				t.Errorf("%q: token %d: esperado %s, obtido %s", tt.fonte, i, tipo, tokens[i].Type)
			}
		}
	}
}

func TestTokenizarSpans(t *testing.T) {
	tokens, err := Tokenizar(" 100\t200\n300 +  \n")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	spans := []Span{{1, 4}, {5, 8}, {9, 12}, {13, 14}, {17, 17}}
	if len(tokens) != len(spans) {
		t.Fatalf("esperado %d tokens, obtido %d", len(spans), len(tokens))
	}
	for i, span := range spans {
		if tokens[i].Span != span {
			t.Errorf("token %d: esperado span %s, obtido %s", i, span, tokens[i].Span)
		}
	}
	if tokens[0].Value != "100" || tokens[2].Value != "300" {
		t.Errorf("valores numéricos incorretos: %v", tokens)
	}
}

func TestTokenizarComparacaoDoisCaracteres(t *testing.T) {
	tokens, err := Tokenizar("1<=2")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if tokens[1].Type != LESS_EQUAL || tokens[1].Span != NovoSpan(1, 3) {
		t.Errorf("esperado LESS_EQUAL@(1,3), obtido %v", tokens[1])
	}
}

func TestTokenizarCaractereInvalido(t *testing.T) {
	_, err := Tokenizar("1@2;")
	var erroLexico *ErroLexico
	if !errors.As(err, &erroLexico) {
		t.Fatalf("esperado *ErroLexico, obtido %v", err)
	}
	if erroLexico.Tipo != CARACTERE_INVALIDO {
		t.Fatalf("esperado CARACTERE_INVALIDO, obtido %v", erroLexico.Tipo)
	}
	if erroLexico.Caractere != '@' || erroLexico.Span != NovoSpan(1, 2) {
		t.Errorf("esperado '@'@(1,2), obtido '%c'@%s", erroLexico.Caractere, erroLexico.Span)
	}
	inicio, fim := erroLexico.Intervalo()
	if inicio != 1 || fim != 2 {
		t.Errorf("intervalo incorreto: (%d,%d)", inicio, fim)
	}
}

func TestTokenizarRejeitaMaiusculas(t *testing.T) {
	_, err := Tokenizar("A;")
	var erroLexico *ErroLexico
	if !errors.As(err, &erroLexico) || erroLexico.Tipo != CARACTERE_INVALIDO {
		t.Fatalf("esperado CARACTERE_INVALIDO, obtido %v", err)
	}
}

func TestTokenizarExclamacao(t *testing.T) {
	_, err := Tokenizar("1!")
	var erroLexico *ErroLexico
	if !errors.As(err, &erroLexico) || erroLexico.Tipo != FIM_INESPERADO {
		t.Fatalf("'!' no fim: esperado FIM_INESPERADO, obtido %v", err)
	}

	_, err = Tokenizar("1!2")
	if !errors.As(err, &erroLexico) || erroLexico.Tipo != CARACTERE_INVALIDO {
		t.Fatalf("'!' sem '=': esperado CARACTERE_INVALIDO, obtido %v", err)
	}
	if erroLexico.Span != NovoSpan(1, 2) {
		t.Errorf("esperado span (1,2), obtido %s", erroLexico.Span)
	}
}

func TestTokenizarNumeroGrande(t *testing.T) {
	if _, err := Tokenizar("18446744073709551615"); err != nil {
		t.Fatalf("maior uint64 deveria ser aceito: %v", err)
	}

	_, err := Tokenizar("18446744073709551616")
	var erroLexico *ErroLexico
	if !errors.As(err, &erroLexico) || erroLexico.Tipo != NUMERO_INVALIDO {
		t.Fatalf("esperado NUMERO_INVALIDO, obtido %v", err)
	}
}

func TestPosicaoEm(t *testing.T) {
	pos := PosicaoEm("a=1;\nb=@;", 7)
	if pos.Line != 2 || pos.Column != 3 {
		t.Errorf("esperado linha 2, coluna 3, obtido %s", pos)
	}
}

func TestImprimirTokens(t *testing.T) {
	tokens, err := Tokenizar("a=1;")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	var saida bytes.Buffer
	ImprimirTokens(&saida, tokens)
	texto := saida.String()
	if !strings.Contains(texto, "IDENTIFIER") || strings.Contains(texto, "EOF") {
		t.Errorf("tabela inesperada:\n%s", texto)
	}
	for _, c := range []string{"variável", "número", "pontuação"} {
		if !strings.Contains(texto, c) {
			t.Errorf("tabela sem categoria %q:\n%s", c, texto)
		}
	}
}
