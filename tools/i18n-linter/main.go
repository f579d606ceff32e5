// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every translation key used in the Go sources exists
// in the primary locale and that every other locale carries the same keys.
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// keyPattern matches i18n.T("key") calls and bare literals shaped like keys,
// such as entries of a label table. Only calls must resolve; a bare literal
// merely keeps a key from being reported as orphaned.
var keyPattern = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)

// Report is the outcome of one lint run. Sorted slices keep the output stable.
type Report struct {
	Used     int
	Primary  int
	Unknown  []string            // passed to i18n.T, missing from the primary locale
	Orphaned []string            // in the primary locale, never used
	Missing  map[string][]string // locale file -> keys absent there
}

// Failed reports whether the run found errors. Orphaned keys only warn.
func (r Report) Failed() bool {
	if len(r.Unknown) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
	if r.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	called, mentioned, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("load %s: %w", primaryLocale, err)
	}

	r := Report{Used: len(called), Primary: len(primary), Missing: map[string][]string{}}
	for key := range called {
		if _, ok := primary[key]; !ok {
			r.Unknown = append(r.Unknown, key)
		}
	}
	for key := range primary {
		_, isCalled := called[key]
		_, isMentioned := mentioned[key]
		if !isCalled && !isMentioned {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	slices.Sort(r.Unknown)
	slices.Sort(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		slices.Sort(missing)
		r.Missing[filepath.Base(file)] = missing
	}
	return r, nil
}

func (r Report) print(w io.Writer) {
	fmt.Fprintf(w, "%d keys translated in code, %d in %s\n", r.Used, r.Primary, primaryLocale)
	for _, key := range r.Unknown {
		fmt.Fprintf(w, "  unknown:  %s\n", key)
	}
	for _, key := range r.Orphaned {
		fmt.Fprintf(w, "  orphaned: %s\n", key)
	}
	names := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, key := range r.Missing[name] {
			fmt.Fprintf(w, "  missing in %s: %s\n", name, key)
		}
	}
	if r.Failed() {
		fmt.Fprintln(w, "FAIL")
		return
	}
	fmt.Fprintln(w, "ok")
}

// findUsedKeys scans non-test .go files below root, skipping tools/ and
// underscore or dot directories. It returns the keys passed to i18n.T and
// the other key-shaped literals separately.
func findUsedKeys(root string) (called, mentioned map[string]struct{}, err error) {
	called = make(map[string]struct{})
	mentioned = make(map[string]struct{})
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyPattern.FindAllStringSubmatch(string(content), -1) {
			switch {
			case m[1] != "":
				called[m[1]] = struct{}{}
			case m[2] != "":
				mentioned[m[2]] = struct{}{}
			}
		}
		return nil
	})
	return called, mentioned, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested mappings with dots. Locale files are flat today;
// nesting is accepted so both layouts lint the same.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
