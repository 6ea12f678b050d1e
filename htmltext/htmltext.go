// Package htmltext flattens the HTML that Google My Maps puts in placemark
// descriptions into plain text.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elements that end a line of text
var block = map[atom.Atom]bool{
	atom.P:   true,
	atom.Div: true,
	atom.Li:  true,
	atom.Tr:  true,
	atom.H1:  true,
	atom.H2:  true,
	atom.H3:  true,
}

// Plain returns desc as plain text. <br> and block elements become line
// breaks, images and scripts are dropped and entities are decoded. Text with
// no markup is returned unchanged.
func Plain(desc string) (string, error) {
	if !strings.ContainsAny(desc, "<&") {
		return desc, nil
	}
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return "", fmt.Errorf("parsing description html: %w", err)
	}
	dom.Find("script, style, img").Remove()

	var sb strings.Builder
	for _, n := range dom.Find("body").Nodes {
		write(&sb, n)
	}
	return tidy(sb.String()), nil
}

func write(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(strings.NewReplacer("\n", " ", "\t", " ", "\r", "").Replace(n.Data))
		return
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		write(sb, c)
	}
	if n.Type == html.ElementNode && block[n.DataAtom] {
		sb.WriteString("\n")
	}
}

// tidy trims every line and collapses runs of blank lines.
func tidy(s string) string {
	var lines []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(lines) > 0 {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		blank = false
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
