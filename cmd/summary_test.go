package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holdingRecord(t *testing.T, body string) *Record {
	t.Helper()
	rec, err := parseMARCXML([]byte(body))
	require.NoError(t, err)
	return rec
}

func TestSummarizeHoldingRecord(t *testing.T) {
	rec := holdingRecord(t, `<record>
  <datafield tag="852" ind1="8" ind2="1">
    <subfield code="b">MAIN</subfield>
    <subfield code="c">STACKS</subfield>
    <subfield code="h">Z 1</subfield>
    <subfield code="z">Note one</subfield>
  </datafield>
  <datafield tag="852" ind1="8" ind2=" ">
    <subfield code="b">MAIN</subfield>
    <subfield code="c">ANNEX</subfield>
    <subfield code="h">Z 1</subfield>
    <subfield code="z">Note two</subfield>
  </datafield>
  <datafield tag="852" ind1="0" ind2=" ">
    <subfield code="b">IGNORED</subfield>
  </datafield>
  <datafield tag="866" ind1="3" ind2="0">
    <subfield code="a">1.1990 - 10.1999</subfield>
    <subfield code="z">5.1994</subfield>
  </datafield>
  <datafield tag="866" ind1="3" ind2="0">
    <subfield code="a">11.2000 -</subfield>
    <subfield code="z">5.1994</subfield>
  </datafield>
  <datafield tag="866" ind1=" " ind2="0">
    <subfield code="a">Laufender Bestand</subfield>
    <subfield code="z">Ältere Jahrgänge im Magazin</subfield>
  </datafield>
</record>`)

	sh := summarizeHoldingRecord(rec, "UNASSIGNED")
	require.NotNil(t, sh)
	assert.Equal(t, "MAIN", sh.Library)
	assert.Equal(t, "STACKS, ANNEX", sh.Location)
	assert.Equal(t, "Z 1", sh.CallNumber)
	assert.Equal(t, []string{"Note one", "Note two"}, sh.CallNumberNotes)
	assert.Equal(t, "1.1990 - 10.1999, 11.2000 -", sh.HoldingsAvailable)
	assert.Equal(t, []string{"5.1994"}, sh.Gaps)
	assert.Equal(t, "Laufender Bestand", sh.HoldingsPrefix)
	assert.Equal(t, []string{"Ältere Jahrgänge im Magazin"}, sh.HoldingsNotes)
	assert.False(t, sh.isEmpty("UNASSIGNED"))
}

func TestSummarizeHoldingRecordWithoutStatement(t *testing.T) {
	rec := holdingRecord(t, `<record>
  <datafield tag="852" ind1="8" ind2="1"><subfield code="b">MAIN</subfield></datafield>
</record>`)
	assert.Nil(t, summarizeHoldingRecord(rec, "UNASSIGNED"))
}

func TestSummarizeHoldingRecordDefaults(t *testing.T) {
	rec := holdingRecord(t, `<record>
  <datafield tag="866" ind1="3" ind2="0"><subfield code="a">1.2001 -</subfield></datafield>
</record>`)
	sh := summarizeHoldingRecord(rec, "UNASSIGNED")
	require.NotNil(t, sh)
	assert.Equal(t, "UNASSIGNED", sh.Location)
	assert.Equal(t, "", sh.Library)
	assert.Nil(t, sh.Gaps)

	// a statement with neither indicator yields nothing but the default location
	rec = holdingRecord(t, `<record>
  <datafield tag="866" ind1="4" ind2="0"><subfield code="a">ignored</subfield></datafield>
</record>`)
	sh = summarizeHoldingRecord(rec, "UNASSIGNED")
	require.NotNil(t, sh)
	assert.True(t, sh.isEmpty("UNASSIGNED"))
}

func TestGetSummarizedHoldings(t *testing.T) {
	for _, workers := range []int{1, 4} {
		alma := newAlmaMock(t)
		alma.handle("/bibs/990002/holdings", holdingsListXML)
		alma.handle("/bibs/990002/holdings/3301", holding3301XML)
		// 3302 is missing from Alma
		alma.handle("/bibs/990002/holdings/3303", holding3303XML)
		alma.handle("/bibs/990002/holdings/3304", holding3304XML)

		rules := defaultRules()
		rules.SummaryWorkers = workers
		c := newTestClient(newTestService(t, alma, rules), "en", false)

		out := getSummarizedHoldings(c, "990002")
		require.Len(t, out, 2, "workers=%d", workers)
		assert.Equal(t, "HB", out[0].Library)
		assert.Equal(t, "MAG", out[0].Location)
		assert.Equal(t, "Z 100, Z 100a", out[0].CallNumber)
		assert.Equal(t, []string{"Jg. 12 fehlt"}, out[0].Gaps)
		assert.Equal(t, "Bestand:", out[0].HoldingsPrefix)
		assert.Equal(t, []string{"Laufend"}, out[0].HoldingsNotes)
		assert.Equal(t, "FBNW", out[1].Library)
		assert.Equal(t, "UNASSIGNED", out[1].Location)
		assert.Equal(t, "2000 -", out[1].HoldingsAvailable)

		assert.Equal(t, 1, alma.count("/bibs/990002/holdings"))
		for _, hid := range []string{"3301", "3302", "3303", "3304"} {
			assert.Equal(t, 1, alma.count("/bibs/990002/holdings/"+hid))
		}
	}
}

func TestGetSummarizedHoldingsAllEmpty(t *testing.T) {
	alma := newAlmaMock(t)
	alma.handle("/bibs/990003/holdings", `<holdings total_record_count="1"><holding><holding_id>1</holding_id></holding></holdings>`)
	alma.handle("/bibs/990003/holdings/1", `<holding><holding_id>1</holding_id><record>
  <datafield tag="866" ind1="4" ind2="0"><subfield code="a">x</subfield></datafield>
</record></holding>`)
	c := newTestClient(newTestService(t, alma, defaultRules()), "en", false)

	out := getSummarizedHoldings(c, "990003")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetSummarizedHoldingsListFailure(t *testing.T) {
	alma := newAlmaMock(t)
	c := newTestClient(newTestService(t, alma, defaultRules()), "en", false)

	out := getSummarizedHoldings(c, "990004")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFetchHoldingRecordWithoutRecord(t *testing.T) {
	alma := newAlmaMock(t)
	alma.handle("/bibs/990005/holdings/7", `<holding><holding_id>7</holding_id></holding>`)
	c := newTestClient(newTestService(t, alma, defaultRules()), "en", false)

	_, err := fetchHoldingRecord(c, "990005", "7")
	assert.Error(t, err)
	assert.Nil(t, summarizeHolding(c, "990005", "7"))
}
