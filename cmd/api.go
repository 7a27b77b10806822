package main

import (
	"encoding/json"
	"encoding/xml"
)

// almaCode is a coded Alma value with a human readable description attribute
type almaCode struct {
	Code string `xml:",chardata"`
	Desc string `xml:"desc,attr"`
}

// text prefers the description, falling back to the code
func (a almaCode) text() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Code
}

// ItemsData coming from Alma /bibs/{id}/holdings/ALL/items
type almaItems struct {
	XMLName          xml.Name   `xml:"items"`
	TotalRecordCount int        `xml:"total_record_count,attr"`
	Items            []almaItem `xml:"item"`
}

// almaItem represents a single physical item
type almaItem struct {
	HoldingData struct {
		HoldingID  string `xml:"holding_id"`
		CallNumber string `xml:"call_number"`
	} `xml:"holding_data"`
	ItemData almaItemData `xml:"item_data"`
}

type almaItemData struct {
	PID         string   `xml:"pid"`
	Barcode     string   `xml:"barcode"`
	BaseStatus  almaCode `xml:"base_status"`
	DueDate     string   `xml:"due_date"`
	ProcessType almaCode `xml:"process_type"`
	PublicNote  string   `xml:"public_note"`
	Description string   `xml:"description"`
	Policy      almaCode `xml:"policy"`
	Library     almaCode `xml:"library"`
	Location    almaCode `xml:"location"`
}

// almaHoldings is the holdings list for a bib record
type almaHoldings struct {
	XMLName          xml.Name                `xml:"holdings"`
	TotalRecordCount int                     `xml:"total_record_count,attr"`
	Holdings         []almaHoldingListMember `xml:"holding"`
}

type almaHoldingListMember struct {
	HoldingID  string   `xml:"holding_id"`
	Library    almaCode `xml:"library"`
	Location   almaCode `xml:"location"`
	CallNumber string   `xml:"call_number"`
}

// almaHolding is a single holding with its MARC holdings record
type almaHolding struct {
	XMLName   xml.Name       `xml:"holding"`
	HoldingID string         `xml:"holding_id"`
	Record    *marcXMLRecord `xml:"record"`
}

// almaBibs is the response from /bibs?mms_id=...
type almaBibs struct {
	XMLName          xml.Name  `xml:"bibs"`
	TotalRecordCount int       `xml:"total_record_count,attr"`
	Bibs             []almaBib `xml:"bib"`
}

type almaBib struct {
	MmsID  string         `xml:"mms_id"`
	Title  string         `xml:"title"`
	Record *marcXMLRecord `xml:"record"`
}

// addLink renders as "check" when a patron is present, false otherwise
type addLink bool

func (a addLink) MarshalJSON() ([]byte, error) {
	if a {
		return json.Marshal("check")
	}
	return json.Marshal(false)
}

// HoldingItem is one physical item as reported to clients
type HoldingItem struct {
	ID              string   `json:"id"`
	Source          string   `json:"source"`
	Availability    bool     `json:"availability"`
	Status          string   `json:"status"`
	Location        string   `json:"location"`
	LocationCode    string   `json:"location_code,omitempty"`
	LocationHref    string   `json:"locationhref,omitempty"`
	Library         string   `json:"library"`
	LibraryCode     string   `json:"library_code,omitempty"`
	CallNumber      string   `json:"callnumber"`
	DueDate         *string  `json:"duedate"`
	Number          int      `json:"number"`
	Barcode         *string  `json:"barcode"`
	ItemNotes       []string `json:"item_notes"`
	ItemID          string   `json:"item_id"`
	HoldingID       string   `json:"holding_id"`
	AddLink         addLink  `json:"addLink"`
	Description     *string  `json:"description"`
	PolicyCode      *string  `json:"item_policy_code"`
	PolicyDesc      *string  `json:"item_policy_desc"`
	PolicyHidden    bool     `json:"item_policy_hide"`
	Notes           []string `json:"notes,omitempty"`
	HoldingsNotes   []string `json:"holdings_notes,omitempty"`
	Summary         []string `json:"summary,omitempty"`
	Supplements     []string `json:"supplements,omitempty"`
	Indexes         []string `json:"indexes,omitempty"`
	PurchaseHistory []string `json:"purchase_history,omitempty"`
}

// SummarizedHolding is built from MARC holdings 852/866 when a title has no items
type SummarizedHolding struct {
	Library           string   `json:"library,omitempty"`
	Location          string   `json:"location"`
	CallNumber        string   `json:"callnumber,omitempty"`
	CallNumberNotes   []string `json:"callnumber_notes,omitempty"`
	HoldingsAvailable string   `json:"holdings_available,omitempty"`
	Gaps              []string `json:"gaps,omitempty"`
	HoldingsPrefix    string   `json:"holdings_prefix,omitempty"`
	HoldingsNotes     []string `json:"holdings_notes,omitempty"`
}

// ElectronicHolding is electronic or digital inventory attached to a bib record
type ElectronicHolding struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type"`
	Availability bool   `json:"availability"`
	Status       string `json:"status,omitempty"`
	Location     string `json:"location,omitempty"`
	Link         string `json:"link,omitempty"`
}

// TextField is one merged text field of a display group
type TextField struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// GroupedHolding is a display group of items sharing a location key
type GroupedHolding struct {
	Key             string              `json:"key"`
	Items           []*HoldingItem      `json:"items"`
	Location        string              `json:"location"`
	LocationHref    string              `json:"locationhref"`
	Library         string              `json:"library"`
	TextFields      []*TextField        `json:"textfields,omitempty"`
	PurchaseHistory []string            `json:"purchase_history,omitempty"`
}

// HoldingsResult is the response for one bib id lookup. The summarized and
// electronic lists are null when they were not looked up and [] when they
// were looked up and found nothing.
type HoldingsResult struct {
	Total              int                  `json:"total"`
	Holdings           []*HoldingItem       `json:"holdings"`
	SummarizedHoldings []*SummarizedHolding `json:"summarizedHoldings"`
	ElectronicHoldings []*ElectronicHolding `json:"electronicHoldings"`
}

// GroupedResult is the response for the grouped holdings view
type GroupedResult struct {
	Total              int                  `json:"total"`
	Groups             []*GroupedHolding    `json:"groups"`
	SummarizedHoldings []*SummarizedHolding `json:"summarizedHoldings"`
	ElectronicHoldings []*ElectronicHolding `json:"electronicHoldings"`
}
