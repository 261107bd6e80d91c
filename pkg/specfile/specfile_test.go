package specfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/specfile"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const signupYAML = `
name: signup
labels:
  email: E-mail address
specs:
  - select: "#email"
    validate: required
  - select: "#username"
    validate: lengthRange(2,10)
  - select: "#code"
    validate: pattern
    args: ["##-@@"]
    invalidMessage: "{0} looks wrong"
`

const loginJSON = `{
  "specs": [
    {"select": "#email", "validate": "required", "signature": "mandatory"},
    {"select": "#password", "validate": "lengthMin", "args": [8]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		form, err := specfile.Parse(ctx, specfile.FormatYAML, []byte(signupYAML))
		require.NoError(t, err)

		assert.Equal(t, "signup", form.Name)
		assert.Equal(t, field.Labels{"email": "E-mail address"}, form.Labels)
		require.Len(t, form.Specs, 3)

		specs := form.ValidatorSpecs()
		assert.Equal(t, "#email", specs[0].Select)
		assert.Equal(t, validator.Named{Name: "required"}, specs[0].Validate)
		assert.Equal(t, validator.Named{Name: "lengthRange", Args: validator.Args{"2", "10"}}, specs[1].Validate)
		assert.Equal(t, validator.Args{"##-@@"}, specs[2].Args)
		assert.Equal(t, "{0} looks wrong", specs[2].InvalidMessage)
		assert.Nil(t, specs[0].Args)
	})

	t.Run("json keeps numbers exact", func(t *testing.T) {
		form, err := specfile.Parse(ctx, specfile.FormatJSON, []byte(loginJSON))
		require.NoError(t, err)
		assert.Empty(t, form.Name)

		specs := form.ValidatorSpecs()
		require.Len(t, specs, 2)
		assert.Equal(t, "mandatory", specs[0].Signature)
		assert.Equal(t, validator.Args{json.Number("8")}, specs[1].Args)

		n, err := specs[1].Args.Int(0)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := specfile.Parse(ctx, specfile.FormatYAML, []byte("specs: [1, 2"))
		assert.ErrorIs(t, err, specfile.ErrFailedToParse)

		_, err = specfile.Parse(ctx, specfile.FormatJSON, []byte(`{"specs":[{"validate":"required"}]}`))
		assert.ErrorIs(t, err, specfile.ErrInvalidEntry)

		_, err = specfile.Parse(ctx, specfile.FormatJSON, []byte(`{"specs":[{"select":"#a"}]}`))
		assert.ErrorIs(t, err, specfile.ErrInvalidEntry)

		_, err = specfile.Parse(ctx, "toml", nil)
		assert.ErrorIs(t, err, specfile.ErrUnsupportedFormat)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = specfile.Parse(cancelled, specfile.FormatYAML, []byte(signupYAML))
		assert.ErrorIs(t, err, specfile.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	form, err := specfile.Load(ctx, writeFile(t, dir, "login.json", loginJSON))
	require.NoError(t, err)
	assert.Equal(t, "login", form.Name, "named after the file")

	form, err = specfile.Load(ctx, writeFile(t, dir, "other.yml", signupYAML))
	require.NoError(t, err)
	assert.Equal(t, "signup", form.Name)

	_, err = specfile.Load(ctx, writeFile(t, dir, "notes.txt", "x"))
	assert.ErrorIs(t, err, specfile.ErrUnsupportedFormat)

	_, err = specfile.Load(ctx, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, specfile.ErrFailedToReadFile)
}

func TestLoadDir(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads supported files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "signup.yaml", signupYAML)
		writeFile(t, dir, "login.json", loginJSON)
		writeFile(t, dir, "README.md", "# forms")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o700))

		forms, err := specfile.LoadDir(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"login", "signup"}, forms.Names())
		assert.Equal(t, 2, forms.Len())

		form, err := forms.Get("signup")
		require.NoError(t, err)
		assert.Len(t, form.Specs, 3)

		_, err = forms.Get("checkout")
		assert.ErrorIs(t, err, specfile.ErrFormNotFound)
	})

	t.Run("duplicate names", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", signupYAML)
		writeFile(t, dir, "b.yaml", signupYAML)

		_, err := specfile.LoadDir(ctx, dir)
		assert.ErrorIs(t, err, specfile.ErrDuplicateForm)
	})

	t.Run("invalid file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.json", `{"specs":[{"select":""}]}`)

		_, err := specfile.LoadDir(ctx, dir)
		assert.ErrorIs(t, err, specfile.ErrInvalidEntry)
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := specfile.LoadDir(ctx, filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, specfile.ErrFailedToReadDir)
	})
}

func TestForms(t *testing.T) {
	t.Parallel()

	forms := specfile.NewForms(&specfile.Form{Name: "a"}, nil, &specfile.Form{Name: "b"})
	forms.Put(&specfile.Form{Name: "a", Specs: []specfile.Entry{{Select: "*", Validate: "required"}}})

	assert.Equal(t, []string{"a", "b"}, forms.Names())
	form, err := forms.Get("a")
	require.NoError(t, err)
	assert.Len(t, form.Specs, 1)
}
