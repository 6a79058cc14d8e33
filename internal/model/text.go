package model

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Metadata holds the hashtags and mentions found in a record's description.
type Metadata struct {
	Tags     []string `json:"tags" yaml:"tags"`
	Mentions []string `json:"mentions" yaml:"mentions"`
}

var (
	tagPattern     = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_&/])#([\p{L}\p{N}_-]+)`)
	mentionPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_.])@([\p{L}\p{N}_-]+)`)
)

// markupChars are the characters that can start inline markdown. Strings
// without any of them are returned by PlainText unchanged.
const markupChars = "*_[]`<>\\!~\n"

var markdown = goldmark.New()

// ExtractMetadata collects #hashtags and @mentions from text. Values are
// lower-cased and deduplicated, in order of first appearance.
func ExtractMetadata(s string) Metadata {
	return Metadata{
		Tags:     collect(tagPattern, s),
		Mentions: collect(mentionPattern, s),
	}
}

func collect(re *regexp.Regexp, s string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		v := strings.Trim(strings.ToLower(m[1]), "-_")
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// PlainText renders markdown to a single line of plain text: link targets,
// emphasis markers and block structure are dropped, link labels are kept.
func PlainText(s string) string {
	if !strings.ContainsAny(s, markupChars) {
		return s
	}

	src := []byte(s)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(b.String()), " ")
}
