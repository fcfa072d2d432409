package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded catalogues when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	fsys, dir := catalogues(cfg)

	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !isSupported(f.Name(), cfg.SupportedLanguages) {
			continue
		}
		filepath := path.Join(dir, f.Name())

		buf, err := fs.ReadFile(fsys, filepath)
		if err != nil {
			zap.L().Warn("failed to read translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}
		if _, err := Translator.ParseMessageFileBytes(buf, filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localizer returns a localizer for lang that falls back to English.
func Localizer(lang string) *i18n.Localizer {
	if Translator == nil {
		InitTranslator(Config{SupportedLanguages: []string{LanguageEn, LanguageFr}})
	}
	return i18n.NewLocalizer(Translator, lang, LanguageEn)
}

// ResolveLanguage turns values such as "fr_FR.UTF-8" or "en-GB" into a base language
// code, falling back to English.
func ResolveLanguage(raw string) string {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")

	tag, err := language.Parse(value)
	if err != nil || value == "" || strings.EqualFold(value, "C") || strings.EqualFold(value, "POSIX") {
		return LanguageEn
	}
	base, _ := tag.Base()
	return base.String()
}

func catalogues(cfg Config) (fs.FS, string) {
	if cfg.TranslationFolder != "" {
		return os.DirFS(cfg.TranslationFolder), "."
	}
	return embedded, "translation"
}

func isSupported(fileName string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	lang := strings.SplitN(fileName, ".", 2)[0]
	return slices.Contains(supported, lang)
}
