// Released under an MIT license. See LICENSE.

package commands

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Localized returns a mapping of names to functions that format numbers
// and times. Locale is used when a call does not name one.
func Localized(locale string) map[string]func(cell.I) cell.I {
	if locale == "" {
		locale = DefaultLocale
	}

	return map[string]func(cell.I) cell.I{
		"eztime": func(args cell.I) cell.I { return eztime(args, locale) },
		"fmtcur": func(args cell.I) cell.I { return fmtcur(args, locale) },
		"fmtnum": func(args cell.I) cell.I { return fmtnum(args, locale) },
		"fmtpct": func(args cell.I) cell.I { return fmtpct(args, locale) },
	}
}

// (fmtcur value code) or (fmtcur value code locale)
func fmtcur(args cell.I, locale string) cell.I {
	v := validate.Fixed(args, 2, 3)

	code := common.String(v[1])

	cur, err := currency.ParseISO(code)
	if err != nil {
		panic("invalid currency code: " + code)
	}

	p := printer(v[2:], locale)

	return str.New(p.Sprintf("%v", currency.Symbol(cur.Amount(arith(v[0]).Float64()))))
}

// (fmtnum value) or (fmtnum value locale)
func fmtnum(args cell.I, locale string) cell.I {
	v := validate.Fixed(args, 1, 2)

	p := printer(v[1:], locale)

	n := arith(v[0])
	if !n.Inexact() {
		if i := exact(v[0]); i.IsInt64() {
			return str.New(p.Sprintf("%v", number.Decimal(i.Int64())))
		}
	}

	return str.New(p.Sprintf("%v", number.Decimal(n.Float64())))
}

// (fmtpct value) or (fmtpct value locale). A value of 1 is 100%.
func fmtpct(args cell.I, locale string) cell.I {
	v := validate.Fixed(args, 1, 2)

	p := printer(v[1:], locale)

	return str.New(p.Sprintf("%v", number.Percent(arith(v[0]).Float64())))
}

func printer(v []cell.I, locale string) *message.Printer {
	if len(v) > 0 {
		locale = common.String(v[0])
	}

	tag, err := language.Parse(locale)
	if err != nil {
		panic("unknown locale " + locale)
	}

	return message.NewPrinter(tag)
}
