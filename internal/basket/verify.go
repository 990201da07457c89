package basket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Report summarises a dataset that passed Verify.
type Report struct {
	Lines      int64
	ItemTokens int64
	MinBasket  int
	MaxBasket  int
}

// VerifyFile opens path and runs Verify over it.
func VerifyFile(path string, p Params) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w: open %s: %w", ErrIOFailure, path, err)
	}
	defer f.Close()

	return Verify(f, p)
}

// Verify checks that r holds exactly p.Customers lines, each terminated by
// '\n', that line i starts with the customer id i, and that each line carries
// between 1 and p.MaxBasket item ids in [1, p.Items]. Tokens must be plain
// decimal digits without sign or leading zeros, separated by single spaces.
func Verify(r io.Reader, p Params) (Report, error) {
	if err := p.validateCounts(); err != nil {
		return Report{}, err
	}

	br := bufio.NewReader(r)

	var report Report
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				return report, fmt.Errorf("%w: line %d: missing final newline", ErrMalformedDataset, report.Lines+1)
			}
			break
		}
		if err != nil {
			return report, fmt.Errorf("%w: read: %w", ErrIOFailure, err)
		}

		lineNo := report.Lines
		if lineNo >= int64(p.Customers) {
			return report, fmt.Errorf("%w: more than %d lines", ErrMalformedDataset, p.Customers)
		}

		basketSize, err := verifyLine(strings.TrimSuffix(line, "\n"), lineNo, p)
		if err != nil {
			return report, fmt.Errorf("%w: line %d: %w", ErrMalformedDataset, lineNo+1, err)
		}

		if report.Lines == 0 || basketSize < report.MinBasket {
			report.MinBasket = basketSize
		}
		report.MaxBasket = max(report.MaxBasket, basketSize)
		report.ItemTokens += int64(basketSize)
		report.Lines++
	}

	if report.Lines != int64(p.Customers) {
		return report, fmt.Errorf("%w: got %d lines, want %d", ErrMalformedDataset, report.Lines, p.Customers)
	}
	return report, nil
}

// verifyLine returns the basket size of a well-formed line.
func verifyLine(line string, customer int64, p Params) (int, error) {
	tokens := strings.Split(line, " ")
	items := len(tokens) - 1
	if items < 1 || items > p.MaxBasket {
		return 0, fmt.Errorf("%d items, want between 1 and %d", items, p.MaxBasket)
	}

	if want := strconv.FormatInt(customer, 10); tokens[0] != want {
		return 0, fmt.Errorf("customer id %q, want %s", tokens[0], want)
	}

	for _, tok := range tokens[1:] {
		if !isCanonicalDecimal(tok) {
			return 0, fmt.Errorf("item %q is not a plain decimal integer", tok)
		}
		item, err := strconv.Atoi(tok)
		if err != nil || item < 1 || item > p.Items {
			return 0, fmt.Errorf("item %s outside [1, %d]", tok, p.Items)
		}
	}
	return items, nil
}

// isCanonicalDecimal reports whether s is what strconv.Itoa would produce
// for a non-negative int: digits only, no leading zero except "0" itself.
func isCanonicalDecimal(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
