package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText_BlocksBecomeLines(t *testing.T) {
	html := `<html><body>
<h1>Jean Dupont</h1>
<h2>Formation</h2>
<ul><li>Master en Informatique - 2023</li><li>Licence - 2021</li></ul>
</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Contains(t, lines, "Jean Dupont")
	assert.Contains(t, lines, "Formation")
	assert.Contains(t, lines, "Master en Informatique - 2023")
	assert.Contains(t, lines, "Licence - 2021")
}

func TestExtractHTMLText_NoDuplicationFromNestedBlocks(t *testing.T) {
	html := `<div><div><p>Jean Dupont</p></div></div>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(text, "Jean Dupont"))
}

func TestExtractHTMLText_StripsScriptAndStyle(t *testing.T) {
	html := `<html><head><style>body{margin:0}</style></head>
<body><p>Profil</p><script>alert("x")</script><noscript>enable js</noscript></body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Profil")
	assert.NotContains(t, text, "margin")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "enable js")
}

func TestExtractHTMLText_FallsBackToBodyText(t *testing.T) {
	text, err := ExtractHTMLText("Jean Dupont sans balises")
	require.NoError(t, err)

	assert.Contains(t, text, "Jean Dupont sans balises")
}
