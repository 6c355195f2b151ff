// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/goodsign/monday"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

func frozen(t *testing.T) {
	t.Helper()

	saved := now
	now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	}

	t.Cleanup(func() { now = saved })
}

func ez(args ...string) string {
	v := make([]cell.I, len(args))
	for i, s := range args {
		v[i] = str.New(s)
	}

	return str.To(eztime(list.New(v...), DefaultLocale)).String()
}

func TestEztimeDefault(t *testing.T) {
	frozen(t)

	if s := ez(); s != "2024-03-05 @ 14:07:09" {
		t.Fatalf("Expected 2024-03-05 @ 14:07:09; got %q", s)
	}

	if s := ez(""); s != "2024-03-05 @ 14:07:09" {
		t.Fatalf("Expected the default pattern for an empty one; got %q", s)
	}
}

func TestEztimeOffset(t *testing.T) {
	frozen(t)

	for offset, want := range map[string]string{
		"1::":     "15:07:09",
		"-1:-30:": "12:37:09",
		"::51":    "14:08:00",
		"0:0:0":   "14:07:09",
	} {
		if s := ez("%H:%M:%S", offset); s != want {
			t.Fatalf("Expected %s for offset %q; got %q", want, offset, s)
		}
	}

	err := task.Catch(func() { ez("%H", "soon") })
	if err == nil || !strings.Contains(err.Error(), `invalid offset string "soon"`) {
		t.Fatalf("Expected an invalid offset error; got %v", err)
	}
}

func TestEztimeLocale(t *testing.T) {
	frozen(t)

	if s := ez("%A %d %B", "0:0:0", "de-DE"); s != "Dienstag 05 März" {
		t.Fatalf("Expected Dienstag 05 März; got %q", s)
	}

	if s := ez("%A", "0:0:0", "xx"); s != "Tuesday" {
		t.Fatalf("Expected an unknown locale to fall back to English; got %q", s)
	}
}

func TestEztimeEmptyOffset(t *testing.T) {
	frozen(t)

	err := task.Catch(func() { ez("%H", "") })
	if err == nil || !strings.Contains(err.Error(), `invalid offset string ""`) {
		t.Fatalf("Expected an empty offset to be rejected; got %v", err)
	}
}

func TestFormatTimeDirectives(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	for pattern, want := range map[string]string{
		"%j":        "065",
		"%u %w":     "2 2",
		"%G-W%V":    "2024-W10",
		"100%%":     "100%",
		"%q":        "%q",
		"trailing%": "trailing%",
		"%I%p":      "02PM",
		"%y/%m/%d":  "24/03/05",
		"%U %W":     "09 10",
		"%U %W %j":  "09 10 065",
		"%f":        "000000",
		"%s":        "1709647629",
		"%F %T":     "2024-03-05 14:07:09",
		"%e":        " 5",
	} {
		if s := formatTime(at, pattern, monday.LocaleEnUS); s != want {
			t.Fatalf("Expected %q for %q; got %q", want, pattern, s)
		}
	}
}

func TestMondayLocale(t *testing.T) {
	for k, want := range map[string]monday.Locale{
		"pt-BR": monday.LocalePtBR,
		"de_AT": monday.LocaleDeDE,
		"fr-BE": monday.LocaleFrFR,
		"":      monday.LocaleEnUS,
	} {
		if l := mondayLocale(k); l != want {
			t.Fatalf("Expected %s for %q; got %s", want, k, l)
		}
	}
}
