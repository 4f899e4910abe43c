package ticket

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Placeholder names understood by the ticket template.  Each one must
// appear in the template at least once.
const (
	PhCompanyName   = "companyName"
	PhAddress       = "address"
	PhTicketNumber  = "ticketNumber"
	PhDate          = "date"
	PhTime          = "time"
	PhItems         = "items"
	PhSubtotal      = "subtotal"
	PhTax           = "tax"
	PhTotal         = "total"
	PhFooterMessage = "footerMessage"
)

var placeholders = []string{
	PhCompanyName, PhAddress, PhTicketNumber, PhDate, PhTime,
	PhItems, PhSubtotal, PhTax, PhTotal, PhFooterMessage,
}

//go:embed templates/ticket.html
var defaultTemplate string

// Template is a parsed ticket document with {{name}} placeholders.
type Template struct {
	t    *fasttemplate.Template
	uses map[string]int
}

// DefaultTemplate compiles the template shipped with the binary.
func DefaultTemplate() (*Template, error) {
	return CompileTemplate(defaultTemplate)
}

// LoadTemplate reads and compiles a template file.
func LoadTemplate(path string) (*Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read template: %v", ErrGeneration, err)
	}
	return CompileTemplate(string(b))
}

// CompileTemplate parses src and checks that every known placeholder is
// present and no unknown one is used.  A placeholder may occur any
// number of times; Render replaces all occurrences.
func CompileTemplate(src string) (*Template, error) {
	t, err := fasttemplate.NewTemplate(src, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("%w: parse template: %v", ErrGeneration, err)
	}
	uses := make(map[string]int)
	_, _ = t.ExecuteFunc(io.Discard, func(_ io.Writer, tag string) (int, error) {
		uses[strings.TrimSpace(tag)]++
		return 0, nil
	})

	known := make(map[string]bool, len(placeholders))
	var missing []string
	for _, p := range placeholders {
		known[p] = true
		if uses[p] == 0 {
			missing = append(missing, p)
		}
	}
	var unknown []string
	for tag := range uses {
		if !known[tag] {
			unknown = append(unknown, tag)
		}
	}
	sort.Strings(unknown)
	if len(missing) > 0 || len(unknown) > 0 {
		return nil, fmt.Errorf("%w: template placeholders missing=%v unknown=%v", ErrGeneration, missing, unknown)
	}
	return &Template{t: t, uses: uses}, nil
}

// Occurrences reports how many times name appears in the template.
func (t *Template) Occurrences(name string) int { return t.uses[name] }

// Render substitutes every placeholder occurrence from values.  Values
// are written verbatim; escaping is the caller's job.
func (t *Template) Render(values map[string]string) (string, error) {
	var sb strings.Builder
	_, err := t.t.ExecuteFunc(&sb, func(w io.Writer, tag string) (int, error) {
		v, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return 0, fmt.Errorf("no value for placeholder %q", tag)
		}
		return io.WriteString(w, v)
	})
	if err != nil {
		return "", fmt.Errorf("%w: render: %v", ErrGeneration, err)
	}
	return sb.String(), nil
}
