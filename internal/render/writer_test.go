package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csv2html/internal/ledger"
)

func TestWriteGroup_EntryRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteGroup(transfer(nil)))

	want := `        <tr class="row-entry-odd" name="transaction-abc123"><td class="col-date">03/01/2019</td>` +
		`<td class="col-num">42</td><td class="col-description">Move savings</td>` +
		`<td class="col-transfer">Assets:Savings</td><td class="col-debit"></td><td class="col-credit"></td>` +
		`<td class="col-balance"><span class="symbol">$</span>10.00</td><td class="col-rate-price">1.00</td></tr>` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGroup_SplitRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteGroup(transfer(money("$", "5.00"))))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `        <tr class="row-entry-odd" name="transaction-abc123">`))
	assert.Equal(t, `        <tr class="row-split-first"><td class="col-date"></td><td class="col-action"></td>`+
		`<td class="col-memo"></td><td class="col-account">Assets:Checking</td><td class="col-debit"></td>`+
		`<td class="col-credit"></td><td class="col-balance"></td><td class="col-rate-price">1.00</td></tr>`, lines[1])
	assert.Contains(t, lines[2], `<tr class="row-split-rest">`)
	assert.Contains(t, lines[2], `<td class="col-debit"><span class="symbol">$</span>5.00</td>`)
}

func TestWriteGroup_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	g := ledger.Group{
		Entry: &ledger.Entry{
			Odd:           true,
			TransactionID: `x"y`,
			Description:   `Fish & <Chips>`,
		},
		Splits: []ledger.Split{
			{First: true, Memo: "<script>alert(1)</script>", Account: "A", Debit: money("$", "1")},
			{Account: "B & C", Credit: money("$", "1")},
		},
	}
	require.NoError(t, w.WriteGroup(g))

	out := buf.String()
	assert.Contains(t, out, "Fish &amp; &lt;Chips&gt;")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, "B &amp; C")
	assert.NotContains(t, out, `x"y`)
	assert.Contains(t, out, `<span class="symbol">$</span>1`, "amount markup is not escaped")
}

func TestWriteHead(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHead(Document{
		Title:  "Checking & Savings",
		Styles: []string{"print.css", "extra/theme.css"},
	}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<!-- Generated by csv2html -->\n<html>\n"))
	assert.Contains(t, out, "    <title>Checking &amp; Savings</title>\n")
	assert.Contains(t, out, `    <h1 class="ledger">Checking &amp; Savings</h1>`)
	assert.Contains(t, out, `<link rel="stylesheet" type="text/css" href="print.css" />`)
	assert.Contains(t, out, `<link rel="stylesheet" type="text/css" href="extra/theme.css" />`)
	assert.Contains(t, out, "table.ledger span.negative { font-weight: bold; }")
	assert.Contains(t, out, `<th class="col-rate-price" rowspan="2">`)
	assert.True(t, strings.HasSuffix(out, "      <tbody>\n"))
	assert.Less(t, strings.Index(out, "print.css"), strings.Index(out, "extra/theme.css"), "styles keep their order")
}

func TestWriteHead_NoTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteHead(Document{}))

	out := buf.String()
	assert.NotContains(t, out, "<title>")
	assert.NotContains(t, out, "<h1")
	assert.Contains(t, out, "    <meta charset=\"utf-8\" />\n    <style type=\"text/css\">\n")
}

func TestWriteFoot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteFoot(Document{Scripts: []string{"sort.js"}}))

	want := "      </tbody>\n" +
		"    </table>\n" +
		"    <script language=\"javascript\" src=\"sort.js\"></script>\n" +
		"  </body>\n" +
		"</html>\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	w := NewWriter(failingWriter{})
	require.Error(t, w.WriteHead(Document{}))
	require.Error(t, w.WriteGroup(transfer(nil)))
	require.Error(t, w.WriteFoot(Document{}))
}
