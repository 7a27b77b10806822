package main

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// holdingText is the holdings level text copied onto every item of a holding
type holdingText struct {
	HoldingsNotes   []string
	Summary         []string
	Supplements     []string
	Indexes         []string
	PurchaseHistory []string
}

// attachHoldingText loads the MARC record of each distinct holding on the
// page and copies its text fields onto the items. A holding that fails to
// load leaves its items unchanged.
func attachHoldingText(c *clientContext, bibID string, items []*HoldingItem) {
	ids := newOrderedSet()
	for _, item := range items {
		ids.add(item.HoldingID)
	}
	if ids.len() == 0 {
		return
	}

	holdingIDs := ids.values()
	texts := make([]*holdingText, len(holdingIDs))
	var g errgroup.Group
	g.SetLimit(c.svc.Rules.workers())
	for i, hid := range holdingIDs {
		i, hid := i, hid
		g.Go(func() error {
			rec, err := fetchHoldingRecord(c, bibID, hid)
			if err != nil {
				c.warn("no holding text for %s: %s", bibID, err.Error())
				return nil
			}
			texts[i] = holdingTextFromRecord(rec)
			return nil
		})
	}
	g.Wait()

	byID := make(map[string]*holdingText)
	for i, hid := range holdingIDs {
		if texts[i] != nil {
			byID[hid] = texts[i]
		}
	}
	for _, item := range items {
		if ht, ok := byID[item.HoldingID]; ok {
			item.HoldingsNotes = ht.HoldingsNotes
			item.Summary = ht.Summary
			item.Supplements = ht.Supplements
			item.Indexes = ht.Indexes
			item.PurchaseHistory = ht.PurchaseHistory
		}
	}
}

// holdingTextFromRecord reads the public notes and holdings statements of a
// MARC holdings record
//
//	852 $z          public note
//	866/867/868 $a  holdings statement for the title, its supplements and indexes
//	541 $d, $3      date and extent of an acquisition, as "date: extent"
func holdingTextFromRecord(rec *Record) *holdingText {
	subfieldSet := func(tag string, code string) []string {
		set := newOrderedSet()
		for _, f := range rec.GetFields(tag) {
			set.add(nonemptyValues(f.GetSubfieldValues(code))...)
		}
		return set.values()
	}

	purchases := newOrderedSet()
	for _, f := range rec.GetFields("541") {
		var parts []string
		if date := strings.TrimSpace(firstSubfield(f, "d")); date != "" {
			parts = append(parts, date)
		}
		if extent := strings.TrimSpace(firstSubfield(f, "3")); extent != "" {
			parts = append(parts, extent)
		}
		purchases.add(strings.Join(parts, ": "))
	}

	return &holdingText{
		HoldingsNotes:   subfieldSet("852", "z"),
		Summary:         subfieldSet("866", "a"),
		Supplements:     subfieldSet("867", "a"),
		Indexes:         subfieldSet("868", "a"),
		PurchaseHistory: purchases.values(),
	}
}
