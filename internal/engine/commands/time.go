// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/goodsign/monday"
	"github.com/lestrrat-go/strftime"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

const defaultPattern = "%Y-%m-%d @ %H:%M:%S"

//nolint:gochecknoglobals
var (
	now    = time.Now
	offset = regexp2.MustCompile(`^(-?[0-9]*):(-?[0-9]*):(-?[0-9]*)`, regexp2.None)

	// Directives whose text depends on the locale.
	localized = map[byte]string{
		'A': "Monday",
		'B': "January",
		'a': "Mon",
		'b': "Jan",
		'c': "Mon Jan _2 15:04:05 2006",
		'h': "Jan",
		'p': "PM",
	}

	locales = map[string]monday.Locale{
		"bg":    monday.LocaleBgBG,
		"bg_bg": monday.LocaleBgBG,
		"cs":    monday.LocaleCsCZ,
		"cs_cz": monday.LocaleCsCZ,
		"da":    monday.LocaleDaDK,
		"da_dk": monday.LocaleDaDK,
		"de":    monday.LocaleDeDE,
		"de_at": monday.LocaleDeDE,
		"de_ch": monday.LocaleDeDE,
		"de_de": monday.LocaleDeDE,
		"el":    monday.LocaleElGR,
		"el_gr": monday.LocaleElGR,
		"en":    monday.LocaleEnUS,
		"en_gb": monday.LocaleEnGB,
		"en_us": monday.LocaleEnUS,
		"es":    monday.LocaleEsES,
		"es_es": monday.LocaleEsES,
		"fi":    monday.LocaleFiFI,
		"fi_fi": monday.LocaleFiFI,
		"fr":    monday.LocaleFrFR,
		"fr_ca": monday.LocaleFrCA,
		"fr_fr": monday.LocaleFrFR,
		"hu":    monday.LocaleHuHU,
		"hu_hu": monday.LocaleHuHU,
		"id":    monday.LocaleIdID,
		"id_id": monday.LocaleIdID,
		"it":    monday.LocaleItIT,
		"it_it": monday.LocaleItIT,
		"ja":    monday.LocaleJaJP,
		"ja_jp": monday.LocaleJaJP,
		"ko":    monday.LocaleKoKR,
		"ko_kr": monday.LocaleKoKR,
		"nb":    monday.LocaleNbNO,
		"nb_no": monday.LocaleNbNO,
		"nl":    monday.LocaleNlNL,
		"nl_be": monday.LocaleNlBE,
		"nl_nl": monday.LocaleNlNL,
		"nn":    monday.LocaleNnNO,
		"nn_no": monday.LocaleNnNO,
		"pl":    monday.LocalePlPL,
		"pl_pl": monday.LocalePlPL,
		"pt":    monday.LocalePtPT,
		"pt_br": monday.LocalePtBR,
		"pt_pt": monday.LocalePtPT,
		"ro":    monday.LocaleRoRO,
		"ro_ro": monday.LocaleRoRO,
		"ru":    monday.LocaleRuRU,
		"ru_ru": monday.LocaleRuRU,
		"sv":    monday.LocaleSvSE,
		"sv_se": monday.LocaleSvSE,
		"th":    monday.LocaleThTH,
		"th_th": monday.LocaleThTH,
		"tr":    monday.LocaleTrTR,
		"tr_tr": monday.LocaleTrTR,
		"uk":    monday.LocaleUkUA,
		"uk_ua": monday.LocaleUkUA,
		"zh":    monday.LocaleZhCN,
		"zh_cn": monday.LocaleZhCN,
		"zh_tw": monday.LocaleZhTW,
	}
)

// (eztime), (eztime pattern), (eztime pattern offset) or
// (eztime pattern offset locale) formats the current UTC time.
// The offset is H:M:S and any part may be empty or negative.
func eztime(args cell.I, locale string) cell.I {
	v := validate.Fixed(args, 0, 3)

	t := now().UTC()

	pattern := defaultPattern
	if len(v) > 0 {
		if p := common.String(v[0]); p != "" {
			pattern = p
		}
	}

	if len(v) > 1 {
		t = t.Add(shift(common.String(v[1])))
	}

	if len(v) > 2 { //nolint:gomnd
		locale = common.String(v[2])
	}

	return str.New(formatTime(t, pattern, mondayLocale(locale)))
}

// (time) returns the seconds since the Unix epoch.
func seconds(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Float(float64(now().UnixNano()) / float64(time.Second))
}

// mondayLocale maps a locale such as "de-AT" or "pt_BR" to a monday.Locale.
func mondayLocale(locale string) monday.Locale {
	k := strings.ReplaceAll(strings.ToLower(locale), "-", "_")

	if l, ok := locales[k]; ok {
		return l
	}

	if l, ok := locales[strings.Split(k, "_")[0]]; ok {
		return l
	}

	return monday.LocaleEnUS
}

func shift(s string) time.Duration {
	m, err := offset.FindStringMatch(s)
	if m == nil || err != nil {
		panic(`(eztime) invalid offset string "` + s + `". Please use H:M:S format.`)
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var d time.Duration

	for i, g := range m.Groups()[1:] {
		part := g.String()
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			panic(`(eztime) invalid offset string "` + s + `". Please use H:M:S format.`)
		}

		d += time.Duration(n) * units[i]
	}

	return d
}

// formatTime formats t with the strftime directives in pattern. Names of
// days and months are in locale. Unknown directives are kept as written.
func formatTime(t time.Time, pattern string, locale monday.Locale) string {
	ss := strftime.NewSpecificationSet()

	for d, layout := range localized {
		layout := layout

		_ = ss.Set(d, strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return append(b, monday.Format(t, layout, locale)...)
		}))
	}

	_ = ss.Set('G', strftime.AppendFunc(isoYear))
	_ = ss.Set('U', week(0))
	_ = ss.Set('W', week(1))
	_ = ss.Set('f', strftime.Microseconds())
	_ = ss.Set('s', strftime.UnixSeconds())

	s, err := strftime.Format(escape(pattern, ss), t, strftime.WithSpecificationSet(ss))
	if err != nil {
		panic(err.Error())
	}

	return s
}

// escape doubles each % that does not start a directive known to ss.
func escape(pattern string, ss strftime.SpecificationSet) string {
	var b strings.Builder

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)

			continue
		}

		if i+1 < len(pattern) {
			if _, err := ss.Lookup(pattern[i+1]); err == nil {
				b.WriteByte(c)
				b.WriteByte(pattern[i+1])
				i++

				continue
			}
		}

		b.WriteString("%%")
	}

	return b.String()
}

func isoYear(b []byte, t time.Time) []byte {
	y, _ := t.ISOWeek()

	return strconv.AppendInt(b, int64(y), 10)
}

// week numbers the weeks of the year that start on day first (0 is Sunday).
// Days before the first such day are in week 0.
func week(first int) strftime.Appender {
	return strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		yday := t.YearDay() - 1
		wday := (int(t.Weekday()) - first + 7) % 7 //nolint:gomnd

		n := (yday + 7 - wday) / 7 //nolint:gomnd
		if n < 10 {                //nolint:gomnd
			b = append(b, '0')
		}

		return strconv.AppendInt(b, int64(n), 10)
	})
}
