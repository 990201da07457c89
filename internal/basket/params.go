package basket

import (
	"fmt"
	"strconv"
	"strings"
)

// Params describes one dataset to generate.
type Params struct {
	OutputPath string
	Customers  int // number of transaction lines
	Items      int // size of the item universe, ids are 1..Items
	MaxBasket  int // baskets hold 1..MaxBasket items
}

// ArgNames lists the positional arguments accepted by ParseParams, in order.
var ArgNames = []string{"output_path", "num_customers", "num_items", "max_basket"}

// ParseParams builds Params from the four positional arguments
// <output_path> <num_customers> <num_items> <max_basket>.
func ParseParams(args []string) (Params, error) {
	if len(args) != len(ArgNames) {
		return Params{}, fmt.Errorf("%w: expected %d arguments (%s), got %d",
			ErrInvalidArgument, len(ArgNames), strings.Join(ArgNames, " "), len(args))
	}

	p := Params{OutputPath: args[0]}
	counts := []*int{&p.Customers, &p.Items, &p.MaxBasket}
	for i, dst := range counts {
		n, err := parseCount(ArgNames[i+1], args[i+1])
		if err != nil {
			return Params{}, err
		}
		*dst = n
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a decimal integer", ErrInvalidArgument, name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s: must be positive, got %d", ErrInvalidArgument, name, n)
	}
	return n, nil
}

// Validate reports an ErrInvalidArgument if p cannot describe a dataset.
func (p Params) Validate() error {
	if p.OutputPath == "" {
		return fmt.Errorf("%w: output_path: must not be empty", ErrInvalidArgument)
	}
	return p.validateCounts()
}

func (p Params) validateCounts() error {
	checks := []struct {
		name  string
		value int
	}{
		{"num_customers", p.Customers},
		{"num_items", p.Items},
		{"max_basket", p.MaxBasket},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s: must be positive, got %d", ErrInvalidArgument, c.name, c.value)
		}
	}
	return nil
}
