package specfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Forms is a named collection of forms. It is safe for concurrent use.
type Forms struct {
	mu    sync.RWMutex
	forms map[string]*Form
}

// NewForms builds a collection from forms. Later forms replace earlier
// ones with the same name.
func NewForms(forms ...*Form) *Forms {
	fs := &Forms{forms: make(map[string]*Form, len(forms))}
	for _, f := range forms {
		fs.Put(f)
	}
	return fs
}

// Put adds or replaces a form. Nil forms are ignored.
func (fs *Forms) Put(f *Form) {
	if f == nil {
		return
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.forms[f.Name] = f
}

// Get returns the form called name.
func (fs *Forms) Get(name string) (*Form, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	f, ok := fs.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormNotFound, name)
	}
	return f, nil
}

// Names returns the form names in sorted order.
func (fs *Forms) Names() []string {
	fs.mu.RLock()
	names := make([]string, 0, len(fs.forms))
	for name := range fs.forms {
		names = append(names, name)
	}
	fs.mu.RUnlock()

	slices.Sort(names)
	return names
}

func (fs *Forms) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.forms)
}

// LoadDir loads every supported file in dir. Subdirectories and files with
// other extensions are skipped. Two files declaring the same form name is
// an error.
func LoadDir(ctx context.Context, dir string) (*Forms, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	fs := NewForms()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatForFile(entry.Name()); !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		form, err := Load(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, err := fs.Get(form.Name); err == nil {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateForm, form.Name, entry.Name())
		}
		fs.Put(form)
	}
	return fs, nil
}
