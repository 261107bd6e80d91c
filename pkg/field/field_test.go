package field_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

func TestDeriveLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"email":           "Email",
		"first_name":      "First Name",
		"user.first_name": "First Name",
		"zip-code":        "Zip Code",
		"tags.0":          "0",
		"":                "",
	}
	for id, want := range tests {
		assert.Equal(t, want, field.DeriveLabel(id), "id %q", id)
	}
}

func TestField_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "E-mail", field.Field{ID: "email", Label: "E-mail"}.DisplayName())
	assert.Equal(t, "Email", field.Field{ID: "email"}.DisplayName())
}

func TestSet_Select(t *testing.T) {
	t.Parallel()

	set := field.NewSet(
		field.Field{ID: "email", Label: "Email"},
		field.Field{ID: "phone_home", Label: "Home phone"},
		field.Field{ID: "phone_work", Label: "Work phone"},
		field.Field{ID: "password", Label: "Password"},
	)

	t.Run("exact id", func(t *testing.T) {
		fields, err := set.Select("#email")
		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "Email", fields[0].Label)
	})

	t.Run("id without hash", func(t *testing.T) {
		fields, err := set.Select("password")
		require.NoError(t, err)
		require.Len(t, fields, 1)
	})

	t.Run("glob keeps source order", func(t *testing.T) {
		fields, err := set.Select("#phone_*")
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "phone_home", fields[0].ID)
		assert.Equal(t, "phone_work", fields[1].ID)
	})

	t.Run("several terms follow term order without duplicates", func(t *testing.T) {
		fields, err := set.Select("#password, #email, #e*")
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "password", fields[0].ID)
		assert.Equal(t, "email", fields[1].ID)
	})

	t.Run("star selects everything", func(t *testing.T) {
		fields, err := set.Select("*")
		require.NoError(t, err)
		assert.Len(t, fields, 4)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		fields, err := set.Select("#missing")
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("empty terms are rejected", func(t *testing.T) {
		for _, sel := range []string{"", "#", "#email,", " , #email"} {
			_, err := set.Select(sel)
			assert.ErrorIs(t, err, field.ErrInvalidSelector, "selector %q", sel)
		}
	})
}

func TestSelector_Matches(t *testing.T) {
	t.Parallel()

	sel, err := field.ParseSelector("#code?, #name")
	require.NoError(t, err)
	assert.True(t, sel.Matches("code1"))
	assert.False(t, sel.Matches("code12"))
	assert.True(t, sel.Matches("name"))
	assert.Equal(t, "#code?, #name", sel.String())
}

func TestFromForm(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"username": {"jo"},
		"email":    {"  "},
		"tags":     {"a", "b"},
		"empty":    {},
	}
	set := field.FromForm(values, field.Labels{"email": "Email address"})

	fields := set.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, field.Field{ID: "email", Label: "Email address", Value: "  "}, fields[0])
	assert.Equal(t, field.Field{ID: "empty", Label: "Empty"}, fields[1])
	assert.Equal(t, "a", fields[2].Value)
	assert.Equal(t, "b", fields[3].Value)
	assert.Equal(t, field.Field{ID: "username", Label: "Username", Value: "jo"}, fields[4])

	tags, err := set.Select("#tags")
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	t.Run("flattens leaves in document order", func(t *testing.T) {
		doc := []byte(`{
			"user": {"email": "a@b.co", "first_name": "Ann", "age": 31},
			"tags": ["x", "y"],
			"active": true,
			"note": null,
			"meta": {}
		}`)

		set, err := field.FromJSON(doc, field.Labels{"user.email": "Email"})
		require.NoError(t, err)

		fields := set.Fields()
		require.Len(t, fields, 7)
		assert.Equal(t, field.Field{ID: "user.email", Label: "Email", Value: "a@b.co"}, fields[0])
		assert.Equal(t, field.Field{ID: "user.first_name", Label: "First Name", Value: "Ann"}, fields[1])
		assert.Equal(t, "31", fields[2].Value)
		assert.Equal(t, "tags.0", fields[3].ID)
		assert.Equal(t, "tags.1", fields[4].ID)
		assert.Equal(t, "true", fields[5].Value)
		assert.Equal(t, field.Field{ID: "note", Label: "Note"}, fields[6])
	})

	t.Run("selects nested fields by glob", func(t *testing.T) {
		set, err := field.FromJSON([]byte(`{"tags": ["x", "y"], "name": "n"}`), nil)
		require.NoError(t, err)

		fields, err := set.Select("#tags.*")
		require.NoError(t, err)
		assert.Len(t, fields, 2)

		f, ok := set.Lookup("name")
		require.True(t, ok)
		assert.Equal(t, "n", f.Value)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		for _, doc := range []string{`{`, `"scalar"`, `42`, ``} {
			_, err := field.FromJSON([]byte(doc), nil)
			assert.ErrorIs(t, err, field.ErrInvalidDocument, "doc %q", doc)
		}
	})
}
