package main

import (
	"errors"
	"io"
	"strconv"

	"github.com/aatomu/frac"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type fraction = frac.Fraction[int64]

type operation struct {
	name string
	fn   func(a, b fraction) (fraction, error)
}

// apply runs the operation, turning the panic Add, Sub and Mul raise when a
// denominator product wraps to zero into an error.
func (op operation) apply(a, b fraction) (r fraction, err error) {
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = e
		}
	}()
	return op.fn(a, b)
}

// operations returns the table columns in order. Mod has no checked form.
func operations(checked bool) []operation {
	if checked {
		return []operation{
			{"A+B", fraction.CheckedAdd},
			{"A-B", fraction.CheckedSub},
			{"A*B", fraction.CheckedMul},
			{"A/B", fraction.CheckedDiv},
			{"A mod B", fraction.Mod},
		}
	}
	return []operation{
		{"A+B", func(a, b fraction) (fraction, error) { return a.Add(b), nil }},
		{"A-B", func(a, b fraction) (fraction, error) { return a.Sub(b), nil }},
		{"A*B", func(a, b fraction) (fraction, error) { return a.Mul(b), nil }},
		{"A/B", fraction.Div},
		{"A mod B", fraction.Mod},
	}
}

// renderTable writes one row per ordered pair of distinct operands and
// returns how many cells could not be computed.
func renderTable(w io.Writer, fractions []fraction, checked bool, locale string) (failed int) {
	tag, err := language.Parse(locale)
	if err != nil {
		log.WithField("locale", locale).Warn("Unknown locale, using English, error:", err)
		tag = language.English
	}
	p := message.NewPrinter(tag)

	ops := operations(checked)
	header := []string{"A", "B"}
	for _, op := range ops {
		header = append(header, op.name)
	}
	header = append(header, "Cmp", "A/B ≈")

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)

	for i, a := range fractions {
		for j, b := range fractions {
			if i == j {
				continue
			}
			data := []string{formatFraction(p, a), formatFraction(p, b)}
			for _, op := range ops {
				r, err := op.apply(a, b)
				if err != nil {
					log.WithFields(log.Fields{"a": a, "b": b, "op": op.name}).Debug(err)
					data = append(data, errorCell(err))
					failed++
					continue
				}
				data = append(data, formatFraction(p, r))
			}
			data = append(data, strconv.Itoa(a.Compare(b)))
			if b.IsZero() {
				data = append(data, "-")
			} else {
				data = append(data, p.Sprintf("%.4f", a.Float64()/b.Float64()))
			}
			table.Append(data)
		}
	}
	table.Render()
	return failed
}

func formatFraction(p *message.Printer, f fraction) string {
	if f.Den == 1 {
		return p.Sprintf("%d", f.Num)
	}
	return p.Sprintf("%d/%d", f.Num, f.Den)
}

func errorCell(err error) string {
	switch {
	case errors.Is(err, frac.ErrDivisionByZero):
		return "undefined"
	case errors.Is(err, frac.ErrOverflow):
		return "overflow"
	default:
		return "error"
	}
}
