// Package i18n holds the message catalog for captions, story text and menu
// labels. Catalogs are gettext .po files embedded in the binary.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalog loaded at start-up
const DefaultLanguage = "en_GB"

// ErrUnknownLanguage is returned when no catalog exists for a language
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*/default.po
var locales embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
)

func init() {
	if err := Load(DefaultLanguage); err != nil {
		panic(err)
	}
}

// Load switches the active catalog
func Load(lang string) error {
	data, err := locales.ReadFile("locales/" + lang + "/default.po")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	mu.Unlock()
	return nil
}

// T translates key, formatting args into it when given.
// Unknown keys are returned as-is.
func T(key string, args ...interface{}) string {
	mu.RLock()
	lookup := current.Get
	mu.RUnlock()

	msg := lookup(key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// OnOff returns the translated state word for a boolean setting
func OnOff(v bool) string {
	if v {
		return T("ON")
	}
	return T("OFF")
}
