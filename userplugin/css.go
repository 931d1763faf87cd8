package userplugin

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/huandu/xstrings"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/agiangrant/twin/style"
)

// CSSReader parses plugin stylesheets into rule tables.
type CSSReader struct {
	log *zap.Logger
}

// NewCSSReader creates a reader. A nil logger disables logging.
func NewCSSReader(log *zap.Logger) *CSSReader {
	if log == nil {
		log = zap.NewNop()
	}
	return &CSSReader{log: log.Named("plugin-css")}
}

// Read parses a stylesheet. Rules inside "@layer base", "@layer components"
// or "@layer utilities" go to that layer, everything else to layer.
// Property names are converted to camelCase; custom properties are kept.
func (r *CSSReader) Read(src io.Reader, layer Layer, source string) (*Data, error) {
	p := css.NewParser(parse.NewInput(src), false)
	data := &Data{}
	walk := &cssWalk{p: p, data: data, log: r.log.With(zap.String("source", source))}
	if err := walk.rules(data.Layer(layer), true); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	r.log.Debug("Parsed plugin stylesheet",
		zap.String("source", source),
		zap.Int("base", data.Base.Len()),
		zap.Int("components", data.Components.Len()),
		zap.Int("utilities", data.Utilities.Len()))
	return data, nil
}

type cssWalk struct {
	p    *css.Parser
	data *Data
	log  *zap.Logger
}

// rules reads rulesets and block at-rules into dst until the enclosing block
// (or the input) ends.
func (w *cssWalk) rules(dst *style.Tree, top bool) error {
	for {
		gt, _, raw := w.p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := w.p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil

		case css.EndAtRuleGrammar:
			return nil

		case css.BeginRulesetGrammar:
			selector := normalizeSelector(string(raw) + joinTokens(w.p.Values()))
			decls, err := w.declarations()
			if err != nil {
				return err
			}
			merge(dst, selector, decls)

		case css.BeginAtRuleGrammar:
			name := string(raw)
			prelude := normalizePrelude(joinTokens(w.p.Values()))
			if name == "@layer" && top {
				layer, err := ParseLayer(prelude)
				if err != nil {
					return err
				}
				if err := w.rules(w.data.Layer(layer), false); err != nil {
					return err
				}
				continue
			}
			block := style.New()
			if err := w.rules(block, false); err != nil {
				return err
			}
			if block.Len() > 0 {
				merge(dst, strings.TrimSpace(name+" "+prelude), block)
			}

		case css.AtRuleGrammar:
			w.log.Debug("Skipping @-rule", zap.String("rule", string(raw)))
		}
	}
}

func (w *cssWalk) declarations() (*style.Tree, error) {
	decls := style.New()
	for {
		gt, _, raw := w.p.Next()
		switch gt {
		case css.EndRulesetGrammar:
			return decls, nil
		case css.ErrorGrammar:
			if err := w.p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return decls, nil
		case css.DeclarationGrammar:
			decls.Set(camelCase(string(raw)), joinTokens(w.p.Values()))
		case css.CustomPropertyGrammar:
			decls.Set(string(raw), joinTokens(w.p.Values()))
		}
	}
}

func merge(dst *style.Tree, key string, sub *style.Tree) {
	if existing, ok := dst.Sub(key); ok {
		existing.Merge(sub)
		return
	}
	dst.SetTree(key, sub)
}

func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
		if t.TokenType == css.CommaToken {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

var (
	combinator = regexp.MustCompile(`\s*([>+~])\s*`)
	colonSpace = regexp.MustCompile(`:(\S)`)
	spaces     = regexp.MustCompile(`\s+`)
)

// normalizeSelector puts single spaces around combinators; the tokenizer
// drops the whitespace that follows them.
func normalizeSelector(s string) string {
	s = combinator.ReplaceAllString(s, " $1 ")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// normalizePrelude turns "(min-width:640px)" back into "(min-width: 640px)"
// so keys line up with the compiler's own media queries.
func normalizePrelude(s string) string {
	return colonSpace.ReplaceAllString(s, ": $1")
}

// camelCase converts a CSS property to the camelCase form used in trees.
// Vendor prefixes keep a leading capital: -webkit-box → WebkitBox.
func camelCase(prop string) string {
	switch {
	case strings.HasPrefix(prop, "--"):
		return prop
	case strings.HasPrefix(prop, "-"):
		return xstrings.ToPascalCase(prop[1:])
	default:
		return xstrings.ToCamelCase(prop)
	}
}
