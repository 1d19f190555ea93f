// seehuhn.de/go/pdfnav - navigation support for PDF viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdf-links lists the named destinations and the links of a PDF file, and
// checks that all internal links lead to a page of the document.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/term"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfnav"
	"seehuhn.de/go/pdfnav/links"
	"seehuhn.de/go/pdfnav/pdfdoc"
	"seehuhn.de/go/pdfnav/tools/internal/buildinfo"
	"seehuhn.de/go/pdfnav/view"
	"seehuhn.de/go/pdfnav/viewer"
)

// settings holds the command line options.
type settings struct {
	config   string
	password string
	names    bool
	links    bool
	check    bool
	dest     string
	page     int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdf-links: ")

	set := &settings{}
	flag.StringVar(&set.config, "config", "", "read settings from the TOML `file`")
	flag.StringVar(&set.password, "p", "", "PDF password")
	flag.BoolVar(&set.names, "names", false, "list the named destinations")
	flag.BoolVar(&set.links, "links", false, "list the links on all pages")
	flag.BoolVar(&set.check, "check", false, "check that all internal links can be resolved")
	flag.StringVar(&set.dest, "dest", "", "go to the named destination `name`")
	flag.IntVar(&set.page, "page", 0, "go to page `n`")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-links - show the destinations and links of a PDF file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-links"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-links [options] <file.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-links -names -links manual.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-links -check -config pdf-links.toml manual.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-links -dest chapter.2 manual.pdf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if !set.names && !set.links && !set.check && set.dest == "" && set.page == 0 {
		set.names = true
	}

	err := run(context.Background(), os.Stdout, os.Stderr, flag.Arg(0), set)
	if err != nil {
		log.Fatal(err)
	}
}

// run carries out the actions selected in set for the file fname.
// Tables are written to stdout, broken links are reported on stderr.
func run(ctx context.Context, stdout, stderr io.Writer, fname string, set *settings) error {
	cfg, err := loadConfig(set.config)
	if err != nil {
		return err
	}

	opt := &pdf.ReaderOptions{
		ReadPassword: passwordReader(set.password),
	}
	r, err := pdf.Open(fname, opt)
	if err != nil {
		return err
	}
	defer r.Close()

	doc, err := pdfdoc.New(r)
	if err != nil {
		return err
	}

	s := pdfnav.New(cfg.options())
	s.SetDocument(doc)
	v := &viewer.Headless{}
	s.SetViewer(v)

	out := newTable(stdout)
	defer out.Flush()

	if set.names {
		lang := r.GetMeta().Catalog.Lang
		err := listNames(ctx, out, r, doc, s, lang)
		if err != nil {
			return err
		}
	}

	var pages [][]*links.Link
	if set.links || set.check {
		pages, err = links.ExtractAll(r, doc)
		if err != nil {
			return err
		}
	}
	if set.links {
		err := listLinks(ctx, out, r, s, pages)
		if err != nil {
			return err
		}
	}

	if set.dest != "" {
		err := s.GoToDestination(ctx, pdfnav.Named(set.dest))
		if err != nil {
			return err
		}
		showTarget(out, r, v.Last())
	}
	if set.page != 0 {
		err := s.GoToPage(set.page)
		if err != nil {
			return err
		}
		showTarget(out, r, v.Last())
	}

	if set.check {
		problems, err := links.Check(ctx, s, pages, cfg.Check.Workers)
		if err != nil {
			return err
		}
		out.Flush()
		for _, p := range problems {
			fmt.Fprintf(stderr, "page %d, link %d: %v\n", p.PageIndex+1, p.Index+1, p.Err)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d broken links: %w", len(problems), errBrokenLinks)
		}
	}

	return nil
}

var errBrokenLinks = errors.New("internal links cannot be resolved")

// listNames shows all named destinations, sorted according to the language
// of the document.
func listNames(ctx context.Context, out *table, r pdf.Getter, doc *pdfdoc.Document, s *pdfnav.LinkService, lang language.Tag) error {
	var names []string
	for name := range doc.Names() {
		names = append(names, name)
	}
	sortNames(names, lang)

	out.Row("NAME", "PAGE", "VIEW")
	for _, name := range names {
		t, err := s.Resolve(ctx, pdfnav.Named(name))
		if errors.Is(err, context.Canceled) {
			return err
		} else if err != nil {
			out.Row(name, "-", err.Error())
			continue
		}
		out.Row(name, strconv.Itoa(t.PageNumber), describeView(r, t.Dest))
	}
	out.Row()
	return nil
}

// sortNames sorts names in the collation order of the given language.
// English is used if the language is not known.
func sortNames(names []string, lang language.Tag) {
	if lang == language.Und {
		lang = language.English
	}
	collate.New(lang).SortStrings(names)
}

func listLinks(ctx context.Context, out *table, r pdf.Getter, s *pdfnav.LinkService, pages [][]*links.Link) error {
	out.Row("PAGE", "RECT", "KIND", "TARGET")
	for pageIndex, ll := range pages {
		for _, l := range ll {
			box := fmt.Sprintf("%g %g %g %g", l.Rect.LLx, l.Rect.LLy, l.Rect.URx, l.Rect.URy)
			var target string
			switch l.Kind {
			case links.Internal:
				t, err := s.Resolve(ctx, l.Dest)
				if errors.Is(err, context.Canceled) {
					return err
				} else if err != nil {
					target = err.Error()
				} else {
					target = fmt.Sprintf("page %d, %s", t.PageNumber, describeView(r, t.Dest))
				}
			case links.External:
				if !s.ExternalLinkEnabled() {
					target = l.URL + " (disabled)"
					break
				}
				a := &pdfnav.Anchor{}
				s.AddLinkAttributes(a, l.URL, l.NewWindow)
				target = a.HTML()
			case links.NamedAction, links.Unsupported:
				target = string(l.Action)
			}
			out.Row(strconv.Itoa(pageIndex+1), box, l.Kind.String(), target)
		}
	}
	out.Row()
	return nil
}

func showTarget(out *table, r pdf.Getter, t *pdfnav.Target) {
	if t == nil {
		return
	}
	out.Row("page", strconv.Itoa(t.PageNumber))
	if t.Dest != nil {
		out.Row("view", describeView(r, t.Dest))
	}
}

func describeView(r pdf.Getter, dest pdfnav.Explicit) string {
	if dest == nil {
		return "-"
	}
	v, err := view.Decode(r, dest)
	if err != nil {
		return "invalid view: " + err.Error()
	}
	return view.Format(v)
}

// passwordReader returns a function which supplies passwords for
// encrypted files.  The password from the command line is tried first,
// afterwards the user is asked on the terminal.
func passwordReader(passwd string) func([]byte, int) string {
	return func(_ []byte, try int) string {
		if try == 0 && passwd != "" {
			return passwd
		}
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return ""
		}
		fmt.Fprint(os.Stderr, "password: ")
		res, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return ""
		}
		return string(res)
	}
}

// table writes tab separated rows.  If the output is a terminal, the columns
// are aligned.
type table struct {
	w  io.Writer
	tw *tabwriter.Writer
}

func newTable(w io.Writer) *table {
	t := &table{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tw = tabwriter.NewWriter(f, 0, 8, 2, ' ', 0)
		t.w = t.tw
	}
	return t
}

// Row writes one row.  A row without fields is written as an empty line.
func (t *table) Row(fields ...string) {
	for i, field := range fields {
		if i > 0 {
			io.WriteString(t.w, "\t")
		}
		io.WriteString(t.w, field)
	}
	io.WriteString(t.w, "\n")
}

// Flush writes buffered rows to the output.
func (t *table) Flush() {
	if t.tw != nil {
		t.tw.Flush()
	}
}
