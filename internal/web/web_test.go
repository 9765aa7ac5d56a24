package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, page Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	return buf.String()
}

func TestRenderEmptyForm(t *testing.T) {
	out := render(t, Page{})

	assert.Contains(t, out, `id="bonusMalusForm"`)
	assert.NotContains(t, out, `id="result"`)
	assert.NotContains(t, out, `id="error"`)
}

func TestRenderResultPluralization(t *testing.T) {
	out := render(t, Page{Result: &Result{FirstName: "Jane", DrivingYears: 5, AccidentsAtFault: 1, Score: 9}})

	assert.Contains(t, out, "Hey Jane,")
	assert.Contains(t, out, "<strong>5</strong> years")
	assert.Contains(t, out, "<strong>1</strong> accident in")
	assert.Contains(t, out, `<div id="score">9</div>`)
	assert.Contains(t, out, "Reset Form")

	out = render(t, Page{Result: &Result{FirstName: "Jane", DrivingYears: 1, AccidentsAtFault: 2, Score: 3}})
	assert.Contains(t, out, "<strong>1</strong> year and")
	assert.Contains(t, out, "<strong>2</strong> accidents in")
}

func TestRenderEscapesInput(t *testing.T) {
	out := render(t, Page{
		Form:  FormValues{FirstName: `<script>alert(1)</script>`, Usage: "1"},
		Error: "first_name: must be a non-empty string",
	})

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `<option value="1" selected>Professional</option>`)
	assert.Contains(t, out, `id="error"`)
}
