package main

import (
	"context"
	"log"
	"os"
	"slices"

	"playpalace-i18n/internal/config"
	"playpalace-i18n/internal/infrastructure/catalog"
	"playpalace-i18n/internal/infrastructure/database"
)

// i18n-status loads the message catalogs, reports key-set drift against the
// reference locale, and (when a database is configured) compares stored user
// locale preferences with what the catalog actually carries.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	opts, err := config.LoadLocales(cfg.LocalesConfig)
	if err != nil {
		log.Fatalf("❌ Locale options error: %v", err)
	}

	cat := catalog.New(buildOptions(cfg, opts))

	if err := cat.LoadEmbedded(); err != nil {
		log.Printf("⚠️ Embedded catalogs: %v", err)
	}
	if cfg.LocalesDir != "" {
		if err := cat.LoadDir(cfg.LocalesDir); err != nil {
			log.Printf("⚠️ Catalogs in %s: %v", cfg.LocalesDir, err)
		}
	}

	locales := cat.ListLocales()
	if len(locales) == 0 {
		log.Fatal("❌ No catalog loaded.")
	}
	log.Printf("✅ %d locale(s) loaded.", len(locales))
	for _, locale := range locales {
		log.Printf("   %s: %d keys (%s)", locale, cat.KeyCount(locale), cat.State(locale))
	}

	issues := cat.Validate(cfg.ReferenceLocale)
	for _, issue := range issues {
		log.Printf("⚠️ %s %s/%s: %s %q", issue.Severity, issue.Locale, issue.Namespace, issue.Kind, issue.Key)
	}
	if len(issues) == 0 {
		log.Printf("✅ All locales match the reference locale %q.", cfg.ReferenceLocale)
	}

	st := cat.Stats()
	log.Printf("   loads=%d load-failures=%d resolves=%d fallbacks=%d missing-keys=%d missing-arguments=%d",
		st.Loads, st.LoadFailures, st.Resolves, st.Fallbacks, st.MissingKeys, st.MissingArguments)

	if cfg.DatabaseURL != "" {
		reportPreferences(cfg, locales)
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
}

// buildOptions maps the locale options file onto the catalog engine.
func buildOptions(cfg *config.Config, opts config.Locales) catalog.Options {
	joins := map[string]catalog.JoinStyle{}
	grouped := map[string]bool{}
	fallbacks := map[string][]string{}
	for locale, lo := range opts.Locales {
		if lo.ListSeparator != "" || lo.ListAnd != "" {
			joins[locale] = catalog.JoinStyle{Separator: lo.ListSeparator, And: lo.ListAnd}
		}
		if lo.GroupedNumbers {
			grouped[locale] = true
		}
		if len(lo.Fallbacks) > 0 {
			fallbacks[locale] = lo.Fallbacks
		}
	}
	return catalog.Options{
		DefaultLocale:   cfg.DefaultLocale,
		ModuleNamespace: opts.ModuleNamespace,
		SharedNamespace: opts.SharedNamespace,
		Fallbacks:       fallbacks,
		Formatter:       catalog.NewFormatter(joins, grouped),
	}
}

// reportPreferences flags locales users prefer but the catalog does not carry.
func reportPreferences(cfg *config.Config, loaded []string) {
	ctx := context.Background()

	if cfg.MigrationsDir != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			log.Printf("⚠️ Migrations: %v", err)
			return
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("⚠️ Database: %v", err)
		return
	}
	defer pool.Close()

	repo := database.NewLocalePreferenceRepository(pool)
	counts, err := repo.CountByLocale(ctx)
	if err != nil {
		log.Printf("⚠️ Locale preferences: %v", err)
		return
	}

	for locale, count := range counts {
		if slices.Contains(loaded, locale) {
			log.Printf("   %s: %d user(s)", locale, count)
		} else {
			log.Printf("⚠️ %d user(s) prefer %q but no catalog is loaded for it.", count, locale)
		}
	}
}
