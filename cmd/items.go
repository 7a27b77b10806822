package main

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// pagingOptions selects one page of items. An ItemLimit of zero leaves
// paging to Alma and only shifts the item numbering by Offset.
type pagingOptions struct {
	ItemLimit int
	Offset    int
}

type itemsQuery struct {
	Limit     *int   `url:"limit,omitempty"`
	Offset    *int   `url:"offset,omitempty"`
	OrderBy   string `url:"order_by"`
	Direction string `url:"direction"`
	Expand    string `url:"expand"`
}

func (p pagingOptions) values() url.Values {
	req := itemsQuery{
		OrderBy:   "library,location,enum_a,enum_b",
		Direction: "desc",
		Expand:    "due_date",
	}
	if p.ItemLimit > 0 {
		limit, offset := p.ItemLimit, p.Offset
		req.Limit = &limit
		req.Offset = &offset
	}
	vals, _ := query.Values(req)
	return vals
}

// fetchHoldingItems reads one page of physical items for a bib record. Any
// failure is reported as no items.
func fetchHoldingItems(c *clientContext, bibID string, opts pagingOptions) (int, []*HoldingItem) {
	items := make([]*HoldingItem, 0)
	path := fmt.Sprintf("/bibs/%s/holdings/ALL/items", url.PathEscape(bibID))
	respBytes, almaErr := c.svc.AlmaGet(path, opts.values(), c.svc.HTTPClient)
	if almaErr != nil {
		if shouldLogAsError(almaErr.StatusCode) {
			c.err("unable to get items for %s: %d %s", bibID, almaErr.StatusCode, almaErr.Message)
		}
		return 0, items
	}

	var resp almaItems
	if err := xml.Unmarshal(respBytes, &resp); err != nil {
		c.err("unable to parse items for %s: %s", bibID, err.Error())
		return 0, items
	}

	number := opts.Offset
	for i := range resp.Items {
		number++
		items = append(items, c.holdingItemFromAlma(bibID, number, &resp.Items[i]))
	}
	c.log("%s has %d items in total, %d in this page", bibID, resp.TotalRecordCount, len(items))

	return resp.TotalRecordCount, items
}

// holdingItemFromAlma applies the local item rules to one Alma item
func (c *clientContext) holdingItemFromAlma(bibID string, number int, raw *almaItem) *HoldingItem {
	data := &raw.ItemData
	rules := &c.svc.Rules

	item := HoldingItem{
		ID:           bibID,
		Source:       rules.Source,
		Availability: data.BaseStatus.Code == "1",
		Status:       data.BaseStatus.text(),
		Location:     data.Location.text(),
		LocationCode: data.Location.Code,
		Library:      data.Library.text(),
		LibraryCode:  data.Library.Code,
		CallNumber:   raw.HoldingData.CallNumber,
		Number:       number,
		ItemID:       data.PID,
		HoldingID:    raw.HoldingData.HoldingID,
		AddLink:      addLink(c.hasPatron()),
		Barcode:      stringOrNil(data.Barcode),
		Description:  stringOrNil(data.Description),
		PolicyCode:   stringOrNil(data.Policy.Code),
		PolicyDesc:   stringOrNil(data.Policy.Desc),
	}

	if data.DueDate != "" {
		due := formatDueDate(data.DueDate, rules.DateFormat)
		item.DueDate = &due
		if item.Status == "Item not in place" {
			item.Status = "Checked Out"
		}
	}

	// a process type other than a loan overrides anything derived from the due date
	if pt := data.ProcessType.Code; pt != "" && pt != "LOAN" {
		item.Status = c.localize("status_"+pt, data.ProcessType.text())
	}

	if data.PublicNote != "" {
		item.ItemNotes = []string{data.PublicNote}
		item.Notes = []string{data.PublicNote}
	}

	item.PolicyHidden = isPolicyHidden(rules.ItemPolicyToHide, data.Policy.Code)
	item.LocationHref = c.svc.locationHref(item.LibraryCode, item.LocationCode)

	return &item
}

// isPolicyHidden is true only when a hide list exists and contains the code
func isPolicyHidden(hide []string, code string) bool {
	if len(hide) == 0 || code == "" {
		return false
	}
	for _, h := range hide {
		if h == code {
			return true
		}
	}
	return false
}

// dueDateLayouts are the forms Alma uses for dates. Date only values may
// carry a trailing zone, as in 2012-07-13Z.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02Z07:00", "2006-01-02"}

// formatDueDate reformats an Alma date. Anything unparsable is passed through.
func formatDueDate(raw string, layout string) string {
	for _, l := range dueDateLayouts {
		if due, err := time.Parse(l, raw); err == nil {
			return due.Format(layout)
		}
	}
	return raw
}

func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
