package main

import (
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed i18n/*.toml
var translationFiles embed.FS

func loadTranslations() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := translationFiles.ReadDir("i18n")
	if err != nil {
		return nil, fmt.Errorf("unable to list translations: %w", err)
	}
	for _, f := range files {
		fn := path.Join("i18n", f.Name())
		data, err := translationFiles.ReadFile(fn)
		if err != nil {
			return nil, fmt.Errorf("unable to read translations %s: %w", fn, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, fn); err != nil {
			return nil, fmt.Errorf("unable to parse translations %s: %w", fn, err)
		}
	}

	log.Printf("Loaded translations for %v", bundle.LanguageTags())
	return bundle, nil
}
