package interpreter

import (
	"fmt"
	"io"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

type InterpreterBackend struct {
	variaveis    [parser.TotalVariaveis]int64
	visualizador *parser.VisualizadorArvore
}

func NewInterpreterBackend() *InterpreterBackend {
	return &InterpreterBackend{
		visualizador: parser.NovoVisualizador(),
	}
}

func (i *InterpreterBackend) GetName() string      { return "Interpretador AST" }
func (i *InterpreterBackend) GetExtension() string { return "" }

// Compile interpreta cada statement escrevendo a árvore e o resultado em w
func (i *InterpreterBackend) Compile(w io.Writer, programa parser.Programa) error {
	debug.Printf("Interpretando diretamente da AST...\n")
	i.variaveis = [parser.TotalVariaveis]int64{}

	var ultimoResultado int64
	for idx, stmt := range programa {
		if _, err := fmt.Fprintf(w, "--- Statement %d ---\n%s\n", idx+1, i.visualizador.CriarArvore(stmt)); err != nil {
			return backends.NovoErroEscrita(err)
		}

		resultado, err := i.interpretar(stmt)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "Resultado: %d\n", resultado); err != nil {
			return backends.NovoErroEscrita(err)
		}
		ultimoResultado = resultado
	}

	if _, err := fmt.Fprintf(w, "Resultado final: %d\n", ultimoResultado); err != nil {
		return backends.NovoErroEscrita(err)
	}
	return nil
}

// Avaliar executa o programa e devolve o valor do último statement.
// Variáveis nunca atribuídas valem 0.
func (i *InterpreterBackend) Avaliar(programa parser.Programa) (int64, error) {
	i.variaveis = [parser.TotalVariaveis]int64{}

	var ultimoResultado int64
	for _, stmt := range programa {
		resultado, err := i.interpretar(stmt)
		if err != nil {
			return 0, err
		}
		ultimoResultado = resultado
	}
	return ultimoResultado, nil
}

// interpretar executa uma expressão e retorna o resultado
func (i *InterpreterBackend) interpretar(expressao parser.Expressao) (int64, error) {
	resultado := expressao.Aceitar(i)
	if erro := backends.ComoErro(resultado); erro != nil {
		return 0, erro
	}
	return resultado.(int64), nil
}

// Implementa interface Visitante
func (i *InterpreterBackend) Constante(constante *parser.Constante) interface{} {
	return constante.Valor
}

func (i *InterpreterBackend) Variavel(variavel *parser.Variavel) interface{} {
	return i.variaveis[variavel.Local.Indice()]
}

func (i *InterpreterBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	alvo, err := backends.AlvoDaAtribuicao(atribuicao)
	if err != nil {
		return err
	}

	valor, err := i.interpretar(atribuicao.OperandoDireito)
	if err != nil {
		return err
	}

	i.variaveis[alvo.Local.Indice()] = valor
	return valor
}

func (i *InterpreterBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerdo, err := i.interpretar(operacao.OperandoEsquerdo)
	if err != nil {
		return err
	}
	direito, err := i.interpretar(operacao.OperandoDireito)
	if err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		return esquerdo + direito
	case parser.SUBTRACAO:
		return esquerdo - direito
	case parser.MULTIPLICACAO:
		return esquerdo * direito
	case parser.DIVISAO:
		if direito == 0 {
			return backends.NovoErroExecucao(operacao, "divisão por zero")
		}
		return esquerdo / direito
	case parser.IGUALDADE:
		return booleano(esquerdo == direito)
	case parser.DIFERENCA:
		return booleano(esquerdo != direito)
	case parser.MENOR_QUE:
		return booleano(esquerdo < direito)
	case parser.MENOR_IGUAL:
		return booleano(esquerdo <= direito)
	default:
		return backends.NovoErroNoNaoSuportado(operacao, "operador desconhecido")
	}
}

func booleano(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
