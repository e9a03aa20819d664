// Package features extracts advisory structural facts from submitted code
// using tree-sitter. The output decorates analysis responses; it never
// influences classification (the classifier is a keyword scorer on purpose)
// and it never fails the pipeline: unparseable code yields zero features.
package features

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"go.uber.org/zap"

	"github.com/algolens/algolens/api/schemas"
)

const (
	langPython     = "python"
	langJavaScript = "javascript"
)

// Extractor parses code on a best-effort basis.
type Extractor struct {
	logger *zap.Logger
}

// New creates a feature extractor.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger.Named("features")}
}

// Extract parses the code with the grammar matching its guessed language and
// collects function names, loop/branch counts and a recursion flag. Any
// parse failure degrades to features carrying only the language guess.
func (e *Extractor) Extract(ctx context.Context, code string) schemas.CodeFeatures {
	lang := guessLanguage(code)
	feats := schemas.CodeFeatures{Language: lang}
	if strings.TrimSpace(code) == "" {
		return feats
	}

	parser := sitter.NewParser()
	if lang == langJavaScript {
		parser.SetLanguage(javascript.GetLanguage())
	} else {
		parser.SetLanguage(python.GetLanguage())
	}

	source := []byte(code)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		e.logger.Debug("tree-sitter parse failed", zap.Error(err))
		return feats
	}
	defer tree.Close()

	root := tree.RootNode()
	feats.SyntaxErrors = root.HasError()

	var calls []string
	walk(root, func(n *sitter.Node) {
		switch n.Type() {
		case "function_definition", "function_declaration", "method_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				feats.Functions = append(feats.Functions, name.Content(source))
			}
		case "for_statement", "while_statement", "do_statement", "for_in_statement":
			feats.LoopCount++
		case "if_statement", "conditional_expression", "ternary_expression":
			feats.BranchCount++
		case "call", "call_expression":
			if fn := n.ChildByFieldName("function"); fn != nil {
				calls = append(calls, fn.Content(source))
			}
		}
	})

	for _, name := range feats.Functions {
		for _, callee := range calls {
			if callee == name {
				feats.Recursive = true
			}
		}
	}

	return feats
}

// walk visits every named node in the tree, depth first.
func walk(n *sitter.Node, visit func(*sitter.Node)) {
	visit(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), visit)
	}
}

// guessLanguage picks a grammar from surface syntax. Python is the default:
// the service historically fronted Python submissions.
func guessLanguage(code string) string {
	if strings.Contains(code, "def ") || strings.Contains(code, "elif ") {
		return langPython
	}
	if strings.Contains(code, "function ") || strings.Contains(code, "=>") ||
		strings.Contains(code, "const ") || strings.Contains(code, "let ") {
		return langJavaScript
	}
	return langPython
}
