package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
)

// loadConcurrency bounds the worker pool used for bulk loads.
const loadConcurrency = 4

// LoadFS loads every catalog file under root in fsys. Files are named
// <namespace>.<locale>.ftl. Each file loads independently: a broken locale is
// reported but never prevents the others from becoming Ready.
func (c *Catalog) LoadFS(fsys fs.FS, root string) error {
	paths, err := fs.Glob(fsys, path.Join(root, "*.ftl"))
	if err != nil {
		return fmt.Errorf("glob catalog files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no catalog files under %s", root)
	}

	pool := pond.NewPool(loadConcurrency)

	var mu sync.Mutex
	var errs []error

	for _, p := range paths {
		pool.Submit(func() {
			if err := c.loadPath(fsys, p); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}

	pool.StopAndWait()
	return errors.Join(errs...)
}

// LoadDir loads every catalog file from a directory on disk.
func (c *Catalog) LoadDir(dir string) error {
	return c.LoadFS(os.DirFS(dir), ".")
}

func (c *Catalog) loadPath(fsys fs.FS, p string) error {
	namespace, locale, err := SplitFileName(path.Base(p))
	if err != nil {
		return err
	}
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", p, err)
	}
	if err := c.Load(locale, namespace, string(data)); err != nil {
		return fmt.Errorf("load catalog %s: %w", p, err)
	}
	return nil
}

// SplitFileName splits "tossup.zh-CN.ftl" into namespace and locale.
func SplitFileName(base string) (namespace, locale string, err error) {
	name := strings.TrimSuffix(base, ".ftl")
	if name == base {
		return "", "", fmt.Errorf("catalog file %s: want .ftl extension", base)
	}
	namespace, locale, found := strings.Cut(name, ".")
	if !found || namespace == "" || locale == "" {
		return "", "", fmt.Errorf("catalog file %s: want <namespace>.<locale>.ftl", base)
	}
	return namespace, locale, nil
}
