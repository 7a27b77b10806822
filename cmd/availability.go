package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// lookupHoldings gets one page of items for a bib record, plus electronic
// inventory when configured. Summarized holdings are only looked up when
// there are no items, and are then always attached.
func lookupHoldings(c *clientContext, bibID string, opts pagingOptions) *HoldingsResult {
	result := HoldingsResult{}
	result.Total, result.Holdings = fetchHoldingItems(c, bibID, opts)

	if c.svc.Rules.wantsElectronic() {
		result.ElectronicHoldings = getElectronicHoldings(c, bibID)
	}

	if len(result.Holdings) == 0 {
		c.log("%s has no items; checking summarized holdings", bibID)
		result.SummarizedHoldings = getSummarizedHoldings(c, bibID)
	}

	return &result
}

// getHoldings returns the items of a bib record
func (svc *ServiceContext) getHoldings(c *gin.Context) {
	cc := newClientContext(svc, c)
	bibID := c.Param("id")
	opts, err := parsePaging(c)
	if err != nil {
		cc.warn("bad paging for %s: %s", bibID, err.Error())
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	cc.log("Getting holdings for %s (limit %d, offset %d)", bibID, opts.ItemLimit, opts.Offset)
	result := lookupHoldings(cc, bibID, opts)
	cc.log("Holdings for %s complete. Elapsed Time: %d (ms)", bibID, cc.elapsedMS())
	c.JSON(http.StatusOK, result)
}

// getGroupedHoldings returns the items of a bib record grouped for display
func (svc *ServiceContext) getGroupedHoldings(c *gin.Context) {
	cc := newClientContext(svc, c)
	bibID := c.Param("id")
	opts, err := parsePaging(c)
	if err != nil {
		cc.warn("bad paging for %s: %s", bibID, err.Error())
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	cc.log("Getting grouped holdings for %s (limit %d, offset %d)", bibID, opts.ItemLimit, opts.Offset)
	result := lookupHoldings(cc, bibID, opts)
	if len(result.Holdings) > 0 {
		attachHoldingText(cc, bibID, result.Holdings)
	}

	groups := groupHoldings(result.Holdings, svc.Rules.GroupBy)
	out := GroupedResult{
		Total:              result.Total,
		Groups:             formatHoldings(groups, svc.Rules.TextFieldNames),
		SummarizedHoldings: result.SummarizedHoldings,
		ElectronicHoldings: result.ElectronicHoldings,
	}
	cc.log("Grouped holdings for %s complete: %d groups. Elapsed Time: %d (ms)", bibID, len(out.Groups), cc.elapsedMS())
	c.JSON(http.StatusOK, out)
}

// parsePaging reads the optional limit and offset query params
func parsePaging(c *gin.Context) (pagingOptions, error) {
	var opts pagingOptions
	if val := c.Query("limit"); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil || limit < 0 {
			return opts, fmt.Errorf("invalid limit %s", val)
		}
		opts.ItemLimit = limit
	}
	if val := c.Query("offset"); val != "" {
		offset, err := strconv.Atoi(val)
		if err != nil || offset < 0 {
			return opts, fmt.Errorf("invalid offset %s", val)
		}
		opts.Offset = offset
	}
	return opts, nil
}
