// Package locale holds the user-facing strings of the rasterlab commands in
// English and Russian.
//
// Strings are registered in the golang.org/x/text message catalog; English
// keys double as the English text. Counts use CLDR plural rules, so Russian
// gets the right "точка/точки/точек" form.
package locale

import (
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rasterlab"
)

// Message keys. The key is also the English text.
const (
	keyStepByStep      = "Step-by-step"
	keyDDA             = "DDA"
	keyBresenhamLine   = "Bresenham (line)"
	keyBresenhamCircle = "Bresenham (circle)"
	keyElapsed         = "Time: %d ns"
	keyPoints          = "%d points"
	keyScale           = "Scale: %d px"
	keyHelp            = "1-4/Tab method  +/- scale  arrows move  Space handle  D dedup"
	keyEndpoint        = "editing: end point"
	keyStartpoint      = "editing: start point"
	keyCentre          = "editing: centre"
	keyRadius          = "editing: radius"
)

var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

func init() {
	ru := map[string]string{
		keyStepByStep:      "Пошаговый алгоритм",
		keyDDA:             "Алгоритм ЦДА (DDA)",
		keyBresenhamLine:   "Брезенхем (Линия)",
		keyBresenhamCircle: "Брезенхем (Окружность)",
		keyElapsed:         "Время: %d нс",
		keyScale:           "Масштаб: %d px",
		keyHelp:            "1-4/Tab метод  +/- масштаб  стрелки сдвиг  Пробел точка/радиус  D дубли",
		keyEndpoint:        "правка: конец отрезка",
		keyStartpoint:      "правка: начало отрезка",
		keyCentre:          "правка: центр",
		keyRadius:          "правка: радиус",
	}
	for key, msg := range ru {
		must(message.SetString(language.Russian, key, msg))
	}

	must(message.Set(language.English, keyPoints, plural.Selectf(1, "%d",
		"one", "%d point",
		"other", "%d points",
	)))
	must(message.Set(language.Russian, keyPoints, plural.Selectf(1, "%d",
		"one", "%d точка",
		"few", "%d точки",
		"many", "%d точек",
		"other", "%d точки",
	)))
}

func must(err error) {
	if err != nil {
		panic("locale: " + err.Error())
	}
}

// Supported returns the languages with a translation.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Printer formats user-facing strings for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for the best supported match of a BCP 47 tag such
// as "ru", "ru-RU" or "en-GB". Unparsable or unsupported tags fall back to
// English.
func New(tag string) *Printer {
	t := language.English
	if parsed, err := language.Parse(tag); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			t = supported[idx]
		}
	}
	return &Printer{tag: t, p: message.NewPrinter(t)}
}

// Tag returns the resolved language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Algorithm returns the display title of an algorithm.
func (p *Printer) Algorithm(a rasterlab.Algorithm) string {
	switch a {
	case rasterlab.AlgorithmStepByStep:
		return p.p.Sprintf(keyStepByStep)
	case rasterlab.AlgorithmDDA:
		return p.p.Sprintf(keyDDA)
	case rasterlab.AlgorithmBresenhamLine:
		return p.p.Sprintf(keyBresenhamLine)
	case rasterlab.AlgorithmBresenhamCircle:
		return p.p.Sprintf(keyBresenhamCircle)
	default:
		return a.String()
	}
}

// Elapsed formats a duration in whole nanoseconds.
func (p *Printer) Elapsed(d time.Duration) string {
	return p.p.Sprintf(keyElapsed, d.Nanoseconds())
}

// Points formats a point count with the plural form of the language.
func (p *Printer) Points(n int) string {
	return p.p.Sprintf(keyPoints, n)
}

// Scale formats the grid cell size.
func (p *Printer) Scale(px int) string {
	return p.p.Sprintf(keyScale, px)
}

// Help returns the one-line key reference of the viewer.
func (p *Printer) Help() string {
	return p.p.Sprintf(keyHelp)
}

// Editing describes what the arrow keys currently move. For circles the
// second handle is the radius.
func (p *Printer) Editing(a rasterlab.Algorithm, endpoint bool) string {
	switch {
	case a.IsCircle() && endpoint:
		return p.p.Sprintf(keyRadius)
	case a.IsCircle():
		return p.p.Sprintf(keyCentre)
	case endpoint:
		return p.p.Sprintf(keyEndpoint)
	default:
		return p.p.Sprintf(keyStartpoint)
	}
}
