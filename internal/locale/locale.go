// Package locale looks up every user-facing string.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
)

//go:embed messages/*.toml
var messageFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			bundleErr = fmt.Errorf("locale: %w", err)
			return
		}
		for _, e := range entries {
			name := path.Join("messages", e.Name())
			data, err := messageFS.ReadFile(name)
			if err != nil {
				bundleErr = fmt.Errorf("locale: %w", err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = fmt.Errorf("locale: parse %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Languages lists the languages with a message catalog.
func Languages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}

// Localizer resolves message IDs for one language, falling back to
// English for anything missing.
type Localizer struct {
	loc *i18n.Localizer
	tag language.Tag
}

// New returns a Localizer for lang, a BCP 47 tag such as "en" or "de-AT".
// Unsupported languages resolve to the closest catalog.
func New(lang string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	want, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("locale: %q: %w", lang, err)
	}
	supported := b.LanguageTags()
	_, idx, _ := language.NewMatcher(supported).Match(want)
	tag := supported[idx]
	return &Localizer{loc: i18n.NewLocalizer(b, tag.String()), tag: tag}, nil
}

// Tag returns the catalog language in use.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T returns the message for id. A missing message yields id itself so a
// gap in a catalog is visible but harmless.
func (l *Localizer) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	s, err := l.loc.Localize(cfg)
	if err != nil {
		return id
	}
	return s
}

// Describe turns an error into a message fit for the error screen.
func (l *Localizer) Describe(err error) string {
	var (
		missing *apperr.MissingFilesError
		fsErr   *apperr.FSError
		saveErr *apperr.SaveError
		custom  *apperr.CustomError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return l.T("err_missing_files", map[string]any{"Dir": missing.Dir, "Ext": missing.Ext})
	case errors.As(err, &fsErr):
		return l.T("err_"+fsErr.Op, map[string]any{"Path": fsErr.Path})
	case errors.As(err, &saveErr):
		return l.T("err_"+saveErr.Op, map[string]any{"Name": saveErr.Name})
	case apperr.IsNotFound(err):
		return l.T("err_not_found")
	case errors.As(err, &custom):
		return custom.Msg
	default:
		return err.Error()
	}
}
