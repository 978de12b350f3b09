package render

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/five82/roster/internal/view"
)

// Element ids of the page skeleton.
const (
	idLeaderSection = "leader-section"
	idMemberSection = "members-section"
	idSearch        = "searchInput"
	idPrev          = "prevBtn"
	idNext          = "nextBtn"
	idPageInfo      = "pageInfo"
	idLoading       = "loading-message"
)

// Document is a Surface backed by an HTML node tree. Hidden elements carry
// the hidden attribute; they stay in the tree.
type Document struct {
	title   string
	columns int

	root     *html.Node
	search   *html.Node
	loading  *html.Node
	sections map[Group]*html.Node
	cards    map[Group][]*html.Node
	controls *html.Node
	prev     *html.Node
	next     *html.Node
	pageInfo *html.Node
}

var _ Surface = (*Document)(nil)

// NewDocument builds an empty roster page. columns is the number of cards
// per grid row.
func NewDocument(title string, columns int) *Document {
	if columns <= 0 {
		columns = 1
	}
	d := &Document{
		title:    title,
		columns:  columns,
		sections: make(map[Group]*html.Node),
		cards:    make(map[Group][]*html.Node),
	}
	d.build()
	return d
}

func (d *Document) build() {
	d.root = &html.Node{Type: html.DocumentNode}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := elem(atom.Html, attr("lang", "en"))
	d.root.AppendChild(htmlEl)

	head := elem(atom.Head)
	head.AppendChild(elem(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(elem(atom.Title), d.title))
	head.AppendChild(withText(elem(atom.Style), stylesheet(d.columns)))
	htmlEl.AppendChild(head)

	body := elem(atom.Body)
	htmlEl.AppendChild(body)

	page := elem(atom.Div, attr("id", "members-page"))
	body.AppendChild(page)

	d.search = elem(atom.Input,
		attr("type", "text"),
		attr("id", idSearch),
		attr("placeholder", "Search members..."),
		attr("value", ""))
	page.AppendChild(d.search)

	d.loading = withText(elem(atom.P, attr("id", idLoading), attr("hidden", "")), LoadingText)
	page.AppendChild(d.loading)

	for _, g := range []Group{GroupLeader, GroupMember} {
		id := idLeaderSection
		if g == GroupMember {
			id = idMemberSection
		}
		sec := elem(atom.Div, attr("id", id), attr("class", "member-section"))
		d.sections[g] = sec
		page.AppendChild(sec)
	}

	d.controls = elem(atom.Div, attr("class", "pagination-controls"), attr("hidden", ""))
	d.prev = withText(elem(atom.Button, attr("id", idPrev)), "Previous")
	d.pageInfo = elem(atom.Span, attr("id", idPageInfo))
	d.next = withText(elem(atom.Button, attr("id", idNext)), "Next")
	d.controls.AppendChild(d.prev)
	d.controls.AppendChild(d.pageInfo)
	d.controls.AppendChild(d.next)
	page.AppendChild(d.controls)
}

// SetSearch reflects the current search text in the input value.
func (d *Document) SetSearch(text string) {
	setAttr(d.search, "value", text)
}

// ReplaceSection implements Surface.
func (d *Document) ReplaceSection(g Group, sec Section) {
	container, ok := d.sections[g]
	if !ok {
		return
	}
	clearChildren(container)
	d.cards[g] = nil

	if sec.Title != "" {
		container.AppendChild(withText(elem(atom.H2), sec.Title))
	}
	for _, f := range sec.Cards {
		card := CardNode(f)
		container.AppendChild(card)
		d.cards[g] = append(d.cards[g], card)
	}
	if sec.Message != "" {
		container.AppendChild(withText(elem(atom.P), sec.Message))
	}
}

// ShowSection implements Surface.
func (d *Document) ShowSection(g Group, shown bool) {
	if sec, ok := d.sections[g]; ok {
		setHidden(sec, !shown)
	}
}

// ShowCard implements Surface.
func (d *Document) ShowCard(g Group, index int, shown bool) {
	cards := d.cards[g]
	if index < 0 || index >= len(cards) {
		return
	}
	setHidden(cards[index], !shown)
}

// SetPager implements Surface.
func (d *Document) SetPager(p view.Pager) {
	setHidden(d.controls, p.Hidden)
	if p.Hidden {
		return
	}
	clearChildren(d.pageInfo)
	d.pageInfo.AppendChild(&html.Node{Type: html.TextNode, Data: p.Label()})
	setBool(d.prev, "disabled", !p.PrevEnabled)
	setBool(d.next, "disabled", !p.NextEnabled)
}

// SetLoading implements Surface.
func (d *Document) SetLoading(loading bool) {
	setHidden(d.loading, !loading)
}

// Render writes the full page.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// RenderSection writes only the markup of one section.
func (d *Document) RenderSection(w io.Writer, g Group) error {
	sec, ok := d.sections[g]
	if !ok {
		return fmt.Errorf("unknown section %q", g)
	}
	if err := html.Render(w, sec); err != nil {
		return fmt.Errorf("render section %s: %w", g, err)
	}
	return nil
}

// CardNode builds the markup for one fragment.
func CardNode(f Fragment) *html.Node {
	class := "member-card"
	if f.Leader {
		class += " leader-card"
	}
	card := elem(atom.Div, attr("class", class), attr("data-name", f.Name))
	card.AppendChild(elem(atom.Img,
		attr("src", f.Image),
		attr("alt", f.Alt),
		attr("class", "profile-pic")))

	info := elem(atom.Div, attr("class", "member-info"))
	info.AppendChild(withText(elem(atom.H3, attr("class", "memberName")), f.Name))
	info.AppendChild(withText(externalLink(f.Profile), f.LinkLabel))
	card.AppendChild(info)

	icon := externalLink(f.Profile)
	icon.Attr = append(icon.Attr, attr("class", "profile-link"))
	icon.AppendChild(elem(atom.I, attr("class", "fab fa-facebook-f")))
	card.AppendChild(icon)
	return card
}

func externalLink(href string) *html.Node {
	return elem(atom.A,
		attr("href", href),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"))
}

func stylesheet(columns int) string {
	return ".member-section{display:grid;gap:1rem;grid-template-columns:repeat(" +
		strconv.Itoa(columns) + ",1fr)}" +
		".member-card{display:flex;align-items:center;gap:.75rem}" +
		".profile-pic{width:64px;height:64px;border-radius:50%}" +
		".pagination-controls{display:flex;gap:1rem;justify-content:center}" +
		"[hidden]{display:none!important}"
}

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, attr(key, val))
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}

func setBool(n *html.Node, key string, on bool) {
	if on {
		setAttr(n, key, "")
		return
	}
	removeAttr(n, key)
}

func setHidden(n *html.Node, hidden bool) {
	setBool(n, "hidden", hidden)
}
