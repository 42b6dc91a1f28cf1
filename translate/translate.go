// Package translate formats user facing messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sic1: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the best match for the BCP 47 language tags.
// With no tags, en-US is selected.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	match := message.MatchLanguage(locales...)

	mutex.Lock()
	defer mutex.Unlock()

	tag = match
	printer = message.NewPrinter(match)
}

// Language returns the currently selected language.
func Language() language.Tag {
	mutex.RLock()
	defer mutex.RUnlock()

	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
