package price

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// ErrNotLocated is returned by Locate while the price region cannot be found.
var ErrNotLocated = errors.New("price region not located")

// ErrLost is returned by Read when a previously located region has
// disappeared, typically because the page re-rendered.
var ErrLost = errors.New("price region lost")

// Source provides best-effort access to the market price rendered by the host
// page. The observer does not care how the value is obtained, only that
// Locate finds the region and Read returns the current value.
type Source interface {
	// Locate searches the rendered content for the price region.
	// Returns ErrNotLocated while the region cannot be found.
	Locate(ctx context.Context) error

	// Read returns the currently rendered price. Returns ErrLost when the
	// previously located region has disappeared.
	Read(ctx context.Context) (float64, error)
}

// HTMLSource reads the price from the token page's rendered HTML. The page is
// fetched on every read; the price is the first localized decimal found next
// to a label element (the platform renders a "Price" caption above the value).
type HTMLSource struct {
	httpClient *http.Client
	pageURL    string
	label      string
}

// NewHTMLSource creates an HTMLSource for the given token page URL. label is
// the caption text identifying the price region, "Price" on the live site.
func NewHTMLSource(pageURL, label string) *HTMLSource {
	return &HTMLSource{
		httpClient: &http.Client{},
		pageURL:    pageURL,
		label:      label,
	}
}

// Locate fetches the page and checks that the price region is present.
func (s *HTMLSource) Locate(ctx context.Context) error {
	if _, err := s.extract(ctx); err != nil {
		return ErrNotLocated
	}
	return nil
}

// Read fetches the page and returns the rendered price value.
func (s *HTMLSource) Read(ctx context.Context) (float64, error) {
	value, err := s.extract(ctx)
	if err != nil {
		return 0, ErrLost
	}
	return value, nil
}

// extract fetches the page and walks the parse tree for the labelled value.
func (s *HTMLSource) extract(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("page request failed with status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return 0, err
	}

	text, ok := findLabelledValue(doc, s.label)
	if !ok {
		return 0, fmt.Errorf("no %q region in page", s.label)
	}

	value, err := ParseLocalizedDecimal(text)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// findLabelledValue searches the parse tree for an element whose text equals
// the label and returns the first value text rendered after it. The value is
// taken from a `title` attribute when present (the platform renders the full
// precision there), else from the following text content.
func findLabelledValue(doc *html.Node, label string) (string, bool) {
	var labelled *html.Node

	var findLabel func(n *html.Node)
	findLabel = func(n *html.Node) {
		if labelled != nil {
			return
		}
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == label {
			labelled = n.Parent
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findLabel(c)
		}
	}
	findLabel(doc)

	if labelled == nil || labelled.Parent == nil {
		return "", false
	}

	// The value sits in a sibling subtree of the label within the same
	// container. Search the container, skipping the label itself.
	var value string
	var findValue func(n *html.Node) bool
	findValue = func(n *html.Node) bool {
		if n == labelled {
			return false
		}
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "title" && strings.TrimSpace(attr.Val) != "" {
					value = strings.TrimSpace(attr.Val)
					return true
				}
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				value = text
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findValue(c) {
				return true
			}
		}
		return false
	}

	for sibling := labelled.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		if findValue(sibling) {
			return value, true
		}
	}

	return "", false
}
