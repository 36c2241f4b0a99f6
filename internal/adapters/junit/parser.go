// Package junit reads JUnit XML test reports.
package junit

import (
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportParser = (*Parser)(nil)

// Parser implements ports.ReportParser.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

type testCase struct {
	ClassName string    `xml:"classname,attr"`
	Name      string    `xml:"name,attr"`
	Failure   *struct{} `xml:"failure"`
	Error     *struct{} `xml:"error"`
	Skipped   *struct{} `xml:"skipped"`
}

// Parse reads the report at path.
func (p *Parser) Parse(reportPath string) (domain.TestResults, error) {
	f, err := os.Open(reportPath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrReportMissing, "path", reportPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportParseFailed.Error()), "path", reportPath)
	}
	defer f.Close() //nolint:errcheck // Read-only

	results, err := Decode(f)
	if err != nil {
		return nil, zerr.With(err, "path", reportPath)
	}
	return results, nil
}

// Decode collects every <testcase> element regardless of nesting depth.
func Decode(r io.Reader) (domain.TestResults, error) {
	results := make(domain.TestResults)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrReportParseFailed.Error())
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "testcase" {
			continue
		}
		var tc testCase
		if err := dec.DecodeElement(&tc, &start); err != nil {
			return nil, zerr.Wrap(err, domain.ErrReportParseFailed.Error())
		}

		id := TestID(tc.ClassName, tc.Name)
		switch {
		case tc.Failure != nil:
			results[id] = domain.OutcomeFailed
		case tc.Error != nil:
			results[id] = domain.OutcomeError
		case tc.Skipped == nil:
			results[id] = domain.OutcomePassed
		}
	}
}

// TestID converts a JUnit classname and name into a pytest-style node id.
// A classname containing an uppercase letter is read as module.Class; otherwise it is
// a dotted module path.
func TestID(className, name string) string {
	if className == "" {
		return name
	}
	parts := strings.Split(className, ".")
	if strings.IndexFunc(className, unicode.IsUpper) < 0 {
		return path.Join(parts...) + ".py::" + name
	}

	class := parts[len(parts)-1]
	file := class + ".py"
	if len(parts) > 1 {
		file = path.Join(parts[:len(parts)-1]...) + ".py"
	}
	return file + "::" + class + "::" + name
}
