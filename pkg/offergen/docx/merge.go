package docx

import (
	"bytes"
	"encoding/xml"
	"html"
	"regexp"
	"sort"
	"strings"
)

var (
	paragraphTagRe = regexp.MustCompile(`<(/?)w:p(?:\s[^>]*)?>`)
	textNodeRe     = regexp.MustCompile(`(?s)(<w:t(?:\s[^>]*[^/>])?>)(.*?)</w:t>`)
	placeholderRe  = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.\-]+)\s*\}\}`)
)

// paragraph holds the text nodes that belong directly to one <w:p>,
// as submatch indexes of textNodeRe into the part.
type paragraph struct {
	nodes [][]int
}

// paragraphs splits a part into paragraphs in order of their opening tag.
// Text of a paragraph nested in another one (text boxes) belongs to the
// inner paragraph only.
func paragraphs(part []byte) []paragraph {
	nodes := textNodeRe.FindAllSubmatchIndex(part, -1)
	tags := paragraphTagRe.FindAllSubmatchIndex(part, -1)

	var out []paragraph
	var open []int
	ni := 0
	for _, tag := range tags {
		for ; ni < len(nodes) && nodes[ni][0] < tag[0]; ni++ {
			if len(open) > 0 {
				top := open[len(open)-1]
				out[top].nodes = append(out[top].nodes, nodes[ni])
			}
		}
		switch {
		case bytes.HasSuffix(part[tag[0]:tag[1]], []byte("/>")):
		case tag[3] > tag[2]:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		default:
			out = append(out, paragraph{})
			open = append(open, len(out)-1)
		}
	}
	return out
}

func (p paragraph) texts(part []byte) []string {
	texts := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		texts[i] = html.UnescapeString(string(part[n[4]:n[5]]))
	}
	return texts
}

func (p paragraph) text(part []byte) string {
	return strings.Join(p.texts(part), "")
}

type edit struct {
	start, end int
	text       string
}

// Merge replaces {{ name }} placeholders in a WordprocessingML part.
// Placeholders without a value render empty and are returned in missing.
//
// Word often splits typed text across several runs. When a placeholder spans
// runs, the paragraph text is moved into its first run and the other runs are
// emptied, so that paragraph keeps the formatting of its first run only.
func Merge(part []byte, values map[string]string) (out []byte, missing []string) {
	seen := make(map[string]bool)
	subst := func(text string) string {
		return placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
			return values[placeholderRe.FindStringSubmatch(m)[1]]
		})
	}

	var edits []edit
	for _, p := range paragraphs(part) {
		texts := p.texts(part)
		joined := strings.Join(texts, "")
		if !strings.Contains(joined, "{{") {
			continue
		}
		for _, m := range placeholderRe.FindAllStringSubmatch(joined, -1) {
			if _, ok := values[m[1]]; !ok && !seen[m[1]] {
				seen[m[1]] = true
				missing = append(missing, m[1])
			}
		}

		merged := make([]string, len(texts))
		for i, t := range texts {
			merged[i] = subst(t)
		}
		if whole := subst(joined); strings.Join(merged, "") != whole {
			// A placeholder spans runs.
			merged = make([]string, len(texts))
			merged[0] = whole
		}

		for i, n := range p.nodes {
			if merged[i] == texts[i] {
				continue
			}
			var buf bytes.Buffer
			buf.WriteString(preserveSpace(string(part[n[2]:n[3]])))
			xml.EscapeText(&buf, []byte(merged[i]))
			buf.WriteString("</w:t>")
			edits = append(edits, edit{start: n[0], end: n[1], text: buf.String()})
		}
	}
	if len(edits) == 0 {
		return part, missing
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	var buf bytes.Buffer
	last := 0
	for _, e := range edits {
		buf.Write(part[last:e.start])
		buf.WriteString(e.text)
		last = e.end
	}
	buf.Write(part[last:])
	return buf.Bytes(), missing
}

func preserveSpace(open string) string {
	if strings.Contains(open, "xml:space") {
		return open
	}
	return strings.TrimSuffix(open, ">") + ` xml:space="preserve">`
}

// names returns the placeholder names of a part in order of first appearance.
func names(part []byte, seen map[string]bool) []string {
	var out []string
	for _, p := range paragraphs(part) {
		for _, m := range placeholderRe.FindAllStringSubmatch(p.text(part), -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				out = append(out, m[1])
			}
		}
	}
	return out
}
