package main

import (
	"encoding/xml"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// holdingList returns the holdings attached to a bib record, or nil on failure
func holdingList(c *clientContext, bibID string) []almaHoldingListMember {
	path := fmt.Sprintf("/bibs/%s/holdings", url.PathEscape(bibID))
	respBytes, almaErr := c.svc.AlmaGet(path, nil, c.svc.HTTPClient)
	if almaErr != nil {
		if shouldLogAsError(almaErr.StatusCode) {
			c.err("unable to get holdings for %s: %d %s", bibID, almaErr.StatusCode, almaErr.Message)
		}
		return nil
	}

	var resp almaHoldings
	if err := xml.Unmarshal(respBytes, &resp); err != nil {
		c.err("unable to parse holdings for %s: %s", bibID, err.Error())
		return nil
	}
	return resp.Holdings
}

// fetchHoldingRecord returns the MARC holdings record of one holding
func fetchHoldingRecord(c *clientContext, bibID string, holdingID string) (*Record, error) {
	path := fmt.Sprintf("/bibs/%s/holdings/%s", url.PathEscape(bibID), url.PathEscape(holdingID))
	respBytes, almaErr := c.svc.AlmaGet(path, nil, c.svc.HTTPClient)
	if almaErr != nil {
		return nil, fmt.Errorf("holding %s: %d %s", holdingID, almaErr.StatusCode, almaErr.Message)
	}

	var resp almaHolding
	if err := xml.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("holding %s: %w", holdingID, err)
	}
	if resp.Record == nil {
		return nil, fmt.Errorf("holding %s has no MARC record", holdingID)
	}
	return resp.Record.toRecord(), nil
}

// getSummarizedHoldings builds summarized holdings from the MARC holdings
// records of a bib that has no items. Holdings that fail to load are skipped.
func getSummarizedHoldings(c *clientContext, bibID string) []*SummarizedHolding {
	holdings := holdingList(c, bibID)
	if len(holdings) == 0 {
		return []*SummarizedHolding{}
	}

	slots := make([]*SummarizedHolding, len(holdings))
	var g errgroup.Group
	g.SetLimit(c.svc.Rules.workers())
	for i, h := range holdings {
		i, h := i, h
		g.Go(func() error {
			slots[i] = summarizeHolding(c, bibID, h.HoldingID)
			return nil
		})
	}
	g.Wait()

	out := make([]*SummarizedHolding, 0, len(slots))
	for _, sh := range slots {
		if sh != nil && !sh.isEmpty(c.svc.Rules.UnassignedLocation) {
			out = append(out, sh)
		}
	}
	c.log("%s has %d holdings, %d summarized", bibID, len(holdings), len(out))
	return out
}

// summarizeHolding fetches and summarizes a single holding. It returns nil
// when the holding cannot be loaded or has no holdings statement.
func summarizeHolding(c *clientContext, bibID string, holdingID string) *SummarizedHolding {
	rec, err := fetchHoldingRecord(c, bibID, holdingID)
	if err != nil {
		c.warn("skipping summary for %s: %s", bibID, err.Error())
		return nil
	}
	return summarizeHoldingRecord(rec, c.svc.Rules.UnassignedLocation)
}

// summarizeHoldingRecord reads the 852 location and 866 holdings statement
// fields of a MARC holdings record.
//
//	852 ind1=8     $b library, $c location, $h call number, $z call number note
//	866 ind1=3     $a summarized holdings, $z gaps
//	866 ind1=blank $a prefix text, $z holdings note
func summarizeHoldingRecord(rec *Record, unassigned string) *SummarizedHolding {
	statements := rec.GetFields("866")
	if len(statements) == 0 {
		return nil
	}

	libraries, locations := newOrderedSet(), newOrderedSet()
	callNumbers, callNumberNotes := newOrderedSet(), newOrderedSet()
	for _, f := range rec.GetFields("852") {
		if f.GetIndicator(1) != '8' {
			continue
		}
		libraries.add(f.GetSubfieldValues("b")...)
		locations.add(f.GetSubfieldValues("c")...)
		callNumbers.add(f.GetSubfieldValues("h")...)
		callNumberNotes.add(f.GetSubfieldValues("z")...)
	}

	available, gaps := newOrderedSet(), newOrderedSet()
	prefixes, notes := newOrderedSet(), newOrderedSet()
	for _, f := range statements {
		switch f.GetIndicator(1) {
		case '3':
			available.add(f.GetSubfieldValues("a")...)
			gaps.add(f.GetSubfieldValues("z")...)
		case ' ':
			prefixes.add(f.GetSubfieldValues("a")...)
			notes.add(f.GetSubfieldValues("z")...)
		}
	}

	sh := SummarizedHolding{
		Library:           libraries.join(", "),
		Location:          locations.join(", "),
		CallNumber:        callNumbers.join(", "),
		CallNumberNotes:   callNumberNotes.values(),
		HoldingsAvailable: available.join(", "),
		Gaps:              gaps.values(),
		HoldingsPrefix:    prefixes.join(", "),
		HoldingsNotes:     notes.values(),
	}
	if sh.Location == "" {
		sh.Location = unassigned
	}
	return &sh
}

// isEmpty is true when nothing but the default location is set
func (sh *SummarizedHolding) isEmpty(unassigned string) bool {
	return sh.Library == "" &&
		(sh.Location == "" || sh.Location == unassigned) &&
		sh.CallNumber == "" &&
		len(sh.CallNumberNotes) == 0 &&
		sh.HoldingsAvailable == "" &&
		len(sh.Gaps) == 0 &&
		sh.HoldingsPrefix == "" &&
		len(sh.HoldingsNotes) == 0
}
