package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte a AST para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(expressao Expressao) *tree.Tree {
	switch expr := expressao.(type) {
	case *Constante:
		// Folha da árvore: apenas o número
		return tree.NewTree(tree.NodeString(strconv.FormatInt(expr.Valor, 10)))

	case *Variavel:
		// Folha da árvore: letra e offset no frame
		return tree.NewTree(tree.NodeString(fmt.Sprintf("%s[-%d]", expr.Nome, expr.Local.Offset)))

	case *Atribuicao:
		arvore := tree.NewTree(tree.NodeString("="))
		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoEsquerdo))
		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoDireito))
		return arvore

	case *OperacaoBinaria:
		// Nó interno: operador com dois filhos
		arvore := tree.NewTree(tree.NodeString(expr.Operador.String()))
		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoEsquerdo))
		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoDireito))
		return arvore

	default:
		return tree.NewTree(tree.NodeString("?"))
	}
}

// ImprimirArvore escreve a árvore de cada statement
func (v *VisualizadorArvore) ImprimirArvore(w io.Writer, programa Programa) {
	fmt.Fprintln(w, "=== Árvore Sintática ===")
	for i, stmt := range programa {
		fmt.Fprintf(w, "--- Statement %d: %s ---\n", i+1, stmt)
		fmt.Fprintln(w, v.CriarArvore(stmt))
	}
	fmt.Fprintln(w)
}

// adicionarSubarvore adiciona uma subárvore como filho
func (v *VisualizadorArvore) adicionarSubarvore(pai *tree.Tree, filho *tree.Tree) {
	// AddChild só recebe o valor; os netos são copiados em seguida
	novoFilho := pai.AddChild(filho.Val())
	v.copiarFilhos(filho, novoFilho)
}

// copiarFilhos copia todos os filhos de uma árvore para outra
func (v *VisualizadorArvore) copiarFilhos(origem *tree.Tree, destino *tree.Tree) {
	for i := 0; ; i++ {
		filho, err := origem.Child(i)
		if err != nil {
			break // Não há mais filhos
		}

		novoFilho := destino.AddChild(filho.Val())
		v.copiarFilhos(filho, novoFilho)
	}
}
