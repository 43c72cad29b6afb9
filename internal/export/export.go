// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package export prerenders the site data as JSON files at build time.

Layout of the output directory:

	formations/index.json      every catalogue page, concatenated
	formations/<slug>.json     one course page per slug of the snapshot
	faq.json                   the FAQ page of each audience
	pages/home.json
	pages/about.json
	pages/formateurs.json

Only the static snapshot is read, so an export never calls the content API.
*/
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scable-inc/syloma/internal/catalog"
	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/faq"
	"github.com/scable-inc/syloma/internal/showcase"
	"github.com/scable-inc/syloma/pkg/slug"
)

const filePerm = 0o644

// Result counts the files written.
type Result struct {
	Formations int
	Files      int
}

// Exporter writes the prerendered pages.
type Exporter struct {
	catalog  *catalog.Service
	faq      *faq.Service
	showcase *showcase.Service
	logger   *slog.Logger
}

// New builds an [Exporter] over the snapshot. No remote is attached.
func New(store *content.Store, logger *slog.Logger) *Exporter {
	client := cms.NewClient(store, nil, nil, cms.Config{}, logger)
	return &Exporter{
		catalog:  catalog.NewService(client, logger),
		faq:      faq.NewService(client, logger),
		showcase: showcase.NewService(client, logger),
		logger:   logger,
	}
}

/*
Run writes every page under dir, creating directories as needed.

Returns:
  - Result: The number of course pages and files written
  - error: The first assembly or filesystem failure
*/
func (exporter *Exporter) Run(context context.Context, dir string) (Result, error) {
	writer := &fileWriter{root: dir}

	if err := exporter.formations(context, writer); err != nil {
		return writer.result, err
	}
	if err := exporter.faqPage(context, writer); err != nil {
		return writer.result, err
	}
	if err := exporter.pages(context, writer); err != nil {
		return writer.result, err
	}

	exporter.logger.Info("export_completed",
		slog.String("dir", dir),
		slog.Int("formations", writer.result.Formations),
		slog.Int("files", writer.result.Files),
	)
	return writer.result, nil
}

// formations writes the catalogue index and one page per slug.
func (exporter *Exporter) formations(context context.Context, writer *fileWriter) error {
	var index []catalog.Summary
	for page := 1; ; page++ {
		result, err := exporter.catalog.List(context, catalog.Filter{Page: page})
		if err != nil {
			return fmt.Errorf("export: list formations: %w", err)
		}
		index = append(index, result.Items...)
		if page >= result.Meta.TotalPages {
			break
		}
	}
	if index == nil {
		index = []catalog.Summary{}
	}
	if err := writer.write(filepath.Join("formations", "index.json"), index); err != nil {
		return err
	}

	slugs, err := exporter.catalog.Slugs()
	if err != nil {
		return fmt.Errorf("export: list slugs: %w", err)
	}

	for _, courseSlug := range slugs {
		if courseSlug == "" || slug.From(courseSlug) != courseSlug {
			return fmt.Errorf("export: formation slug %q is not a valid file name", courseSlug)
		}
		detail, err := exporter.catalog.Detail(context, courseSlug)
		if err != nil {
			return fmt.Errorf("export: formation %q: %w", courseSlug, err)
		}
		if err := writer.write(filepath.Join("formations", courseSlug+".json"), detail); err != nil {
			return err
		}
		writer.result.Formations++
	}
	return nil
}

// faqPage writes the FAQ of both audiences, keyed by category.
func (exporter *Exporter) faqPage(context context.Context, writer *fileWriter) error {
	pages := make(map[string]*faq.Page, 2)
	for _, categorie := range []string{faq.CategorieStagiaire, faq.CategorieFormateur} {
		page, err := exporter.faq.Page(context, faq.Filter{Categorie: categorie})
		if err != nil {
			return fmt.Errorf("export: faq %s: %w", categorie, err)
		}
		pages[categorie] = page
	}
	return writer.write("faq.json", pages)
}

// pages writes the editorial pages.
func (exporter *Exporter) pages(ctx context.Context, writer *fileWriter) error {
	builders := []struct {
		name  string
		build func(context.Context) (*showcase.Page, error)
	}{
		{"home", exporter.showcase.Home},
		{"about", exporter.showcase.About},
		{"formateurs", exporter.showcase.Trainers},
	}

	for _, builder := range builders {
		page, err := builder.build(ctx)
		if err != nil {
			return fmt.Errorf("export: page %s: %w", builder.name, err)
		}
		if err := writer.write(filepath.Join("pages", builder.name+".json"), page); err != nil {
			return err
		}
	}
	return nil
}

// fileWriter writes indented JSON files below root.
type fileWriter struct {
	root   string
	result Result
}

func (writer *fileWriter) write(name string, value any) error {
	path := filepath.Join(writer.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create directory: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}

	writer.result.Files++
	return nil
}
