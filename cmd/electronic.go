package main

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// fetchBib returns the full bib record, including any inventory fields
// requested through expand
func fetchBib(c *clientContext, bibID string, expand string) (*Record, error) {
	params := url.Values{}
	params.Set("mms_id", bibID)
	params.Set("view", "full")
	if expand != "" {
		params.Set("expand", expand)
	}
	respBytes, almaErr := c.svc.AlmaGet("/bibs", params, c.svc.HTTPClient)
	if almaErr != nil {
		return nil, fmt.Errorf("bib %s: %d %s", bibID, almaErr.StatusCode, almaErr.Message)
	}

	var resp almaBibs
	if err := xml.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("bib %s: %w", bibID, err)
	}
	if len(resp.Bibs) == 0 || resp.Bibs[0].Record == nil {
		return nil, fmt.Errorf("bib %s not found", bibID)
	}
	return resp.Bibs[0].Record.toRecord(), nil
}

// getElectronicHoldings returns the electronic (AVE) and digital (AVD)
// inventory of a bib record
func getElectronicHoldings(c *clientContext, bibID string) []*ElectronicHolding {
	var expand []string
	for _, t := range c.svc.Rules.InventoryTypes {
		if t == "e_avail" || t == "d_avail" {
			expand = append(expand, t)
		}
	}
	if len(expand) == 0 {
		return nil
	}

	rec, err := fetchBib(c, bibID, strings.Join(expand, ","))
	if err != nil {
		c.warn("no electronic inventory for %s: %s", bibID, err.Error())
		return make([]*ElectronicHolding, 0)
	}
	return electronicHoldingsFromRecord(rec)
}

func electronicHoldingsFromRecord(rec *Record) []*ElectronicHolding {
	out := make([]*ElectronicHolding, 0)
	for _, f := range rec.GetFields("AVE") {
		status := firstSubfield(f, "e")
		out = append(out, &ElectronicHolding{
			ID:           firstSubfield(f, "8"),
			Type:         "electronic",
			Availability: isAvailableStatus(status),
			Status:       status,
			Location:     firstSubfield(f, "m"),
			Link:         firstSubfield(f, "u"),
		})
	}
	for _, f := range rec.GetFields("AVD") {
		status := firstSubfield(f, "e")
		out = append(out, &ElectronicHolding{
			Type:         "digital",
			Availability: isAvailableStatus(status),
			Status:       status,
			Location:     firstSubfield(f, "b"),
			Link:         firstSubfield(f, "d"),
		})
	}
	return out
}

func isAvailableStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "available")
}

func firstSubfield(f Field, code string) string {
	if vals := f.GetSubfieldValues(code); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
