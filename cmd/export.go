package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/unicode"
)

const exportPageSize = 100

// csvFormat is the separator and encoding expected by the client's spreadsheet software
type csvFormat struct {
	os    string
	comma rune
	utf16 bool
}

// detectCSVFormat guesses the client OS from the user agent. Unknown agents
// are treated as Windows.
func detectCSVFormat(userAgent string) csvFormat {
	ua := strings.ToLower(userAgent)
	os := "win"
	for _, unix := range []string{"linux", "cros", "bsd", "sunos", "unix"} {
		if strings.Contains(ua, unix) {
			os = "linux"
			break
		}
	}
	if os == "win" && strings.Contains(ua, "mac") {
		os = "mac"
	}

	if os == "win" {
		return csvFormat{os: os, comma: ';', utf16: true}
	}
	return csvFormat{os: os, comma: ',', utf16: false}
}

// exportHoldings sends all items of a bib record as a CSV download
func (svc *ServiceContext) exportHoldings(c *gin.Context) {
	cc := newClientContext(svc, c)
	bibID := c.Param("id")
	format := detectCSVFormat(c.GetHeader("User-Agent"))
	cc.log("Exporting holdings for %s as csv for %s", bibID, format.os)

	title := ""
	if rec, err := fetchBib(cc, bibID, ""); err != nil {
		cc.warn("no title for export of %s: %s", bibID, err.Error())
	} else {
		title = rec.Title()
	}

	items := fetchAllHoldingItems(cc, bibID)
	var summarized []*SummarizedHolding
	if len(items) == 0 {
		summarized = getSummarizedHoldings(cc, bibID)
	}

	out, err := holdingsCSV(cc, format, title, items, summarized)
	if err != nil {
		cc.err("unable to write csv for %s: %s", bibID, err.Error())
		c.String(http.StatusInternalServerError, "unable to export holdings")
		return
	}

	contentType := "text/csv; charset=UTF-8"
	if format.utf16 {
		contentType = "text/csv; charset=UTF-16LE"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"holdings_%s.csv\"", bibID))
	cc.log("Export of %s complete: %d items, %d summarized. Elapsed Time: %d (ms)", bibID, len(items), len(summarized), cc.elapsedMS())
	c.Data(http.StatusOK, contentType, out)
}

// fetchAllHoldingItems pages through every item of a bib record
func fetchAllHoldingItems(c *clientContext, bibID string) []*HoldingItem {
	var all []*HoldingItem
	opts := pagingOptions{ItemLimit: exportPageSize}
	for {
		total, items := fetchHoldingItems(c, bibID, opts)
		all = append(all, items...)
		opts.Offset += len(items)
		if len(items) == 0 || opts.Offset >= total {
			break
		}
	}
	return all
}

func holdingsCSV(c *clientContext, format csvFormat, title string, items []*HoldingItem, summarized []*SummarizedHolding) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = format.comma

	rows := [][]string{{c.localize("csv_title", "Title"), title}}
	if len(items) > 0 {
		rows = append(rows, localizedHeadings(c, "number", "library", "location", "callnumber",
			"status", "duedate", "barcode", "description", "notes"))
		for _, item := range items {
			rows = append(rows, []string{
				strconv.Itoa(item.Number),
				item.Library,
				item.Location,
				item.CallNumber,
				item.Status,
				derefString(item.DueDate),
				derefString(item.Barcode),
				derefString(item.Description),
				strings.Join(item.ItemNotes, "; "),
			})
		}
	} else if len(summarized) > 0 {
		rows = append(rows, localizedHeadings(c, "library", "location", "callnumber",
			"holdings_available", "gaps", "holdings_prefix", "holdings_notes"))
		for _, sh := range summarized {
			rows = append(rows, []string{
				sh.Library,
				sh.Location,
				sh.CallNumber,
				sh.HoldingsAvailable,
				strings.Join(sh.Gaps, "; "),
				sh.HoldingsPrefix,
				strings.Join(sh.HoldingsNotes, "; "),
			})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	if !format.utf16 {
		return buf.Bytes(), nil
	}

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	return encoder.Bytes(buf.Bytes())
}

func localizedHeadings(c *clientContext, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, c.localize("csv_"+name, name))
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
