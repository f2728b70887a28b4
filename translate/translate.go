// Package translate formats user facing messages for the locale of the
// current user.
package translate

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer atomic.Pointer[message.Printer]
)

// load picks the printer from the user locales on first use.
func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("rissy: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer.CompareAndSwap(nil, message.NewPrinter(message.MatchLanguage(locales...)))
}

// SetLanguage overrides the locale discovered from the environment.
func SetLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(load)

	return printer.Load().Sprintf(key, args...)
}
