package main

import (
	"log"

	"github.com/mitchellh/mapstructure"
)

// textFieldAliases lets an empty text field borrow the value of its partner
var textFieldAliases = map[string]string{
	"notes":          "holdings_notes",
	"holdings_notes": "notes",
}

// holdingGroup is a list of items that share a group key
type holdingGroup struct {
	key   string
	items []*HoldingItem
}

func groupKey(item *HoldingItem, groupBy string) string {
	if groupBy == "holding" {
		return item.HoldingID + "|" + item.LocationCode
	}
	return item.LibraryCode + "|" + item.LocationCode
}

// groupHoldings splits items into groups. Groups are ordered by first
// appearance and each keeps its items in their original order.
func groupHoldings(items []*HoldingItem, groupBy string) []*holdingGroup {
	var groups []*holdingGroup
	byKey := make(map[string]*holdingGroup)
	for _, item := range items {
		key := groupKey(item, groupBy)
		grp, ok := byKey[key]
		if !ok {
			grp = &holdingGroup{key: key}
			byKey[key] = grp
			groups = append(groups, grp)
		}
		grp.items = append(grp.items, item)
	}
	return groups
}

// formatHoldings merges the text fields and purchase history of each group's
// items into one display group
func formatHoldings(groups []*holdingGroup, textFieldNames []string) []*GroupedHolding {
	out := make([]*GroupedHolding, 0, len(groups))
	for _, grp := range groups {
		gh := GroupedHolding{Key: grp.key, Items: grp.items}
		if len(grp.items) > 0 {
			first := grp.items[0]
			gh.Location = first.Location
			gh.LocationHref = first.LocationHref
			gh.Library = first.Library
		}

		textFields := make(map[string]*orderedSet)
		purchases := newOrderedSet()
		for _, item := range grp.items {
			fields := itemFields(item)
			for _, name := range textFieldNames {
				vals := fieldStrings(fields[name])
				if len(vals) == 0 {
					if alias, ok := textFieldAliases[name]; ok {
						vals = fieldStrings(fields[alias])
					}
				}
				if len(vals) == 0 {
					continue
				}
				if textFields[name] == nil {
					textFields[name] = newOrderedSet()
				}
				textFields[name].add(vals...)
			}
			purchases.add(item.PurchaseHistory...)
		}

		for _, name := range textFieldNames {
			if set, ok := textFields[name]; ok && set.len() > 0 {
				gh.TextFields = append(gh.TextFields, &TextField{Name: name, Values: set.values()})
			}
		}
		gh.PurchaseHistory = purchases.values()
		out = append(out, &gh)
	}
	return out
}

// textField returns the merged values of one text field, or nil
func (gh *GroupedHolding) textField(name string) []string {
	for _, tf := range gh.TextFields {
		if tf.Name == name {
			return tf.Values
		}
	}
	return nil
}

// itemFields exposes the item under its JSON field names
func itemFields(item *HoldingItem) map[string]interface{} {
	fields := make(map[string]interface{})
	cfg := &mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &fields,
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(*item); err != nil {
		log.Printf("ERROR: unable to read fields of item %s: %s", item.ItemID, err.Error())
	}
	return fields
}

// fieldStrings turns a string-ish field value into a list of non-empty strings
func fieldStrings(val interface{}) []string {
	switch v := val.(type) {
	case string:
		if v != "" {
			return []string{v}
		}
	case *string:
		if v != nil && *v != "" {
			return []string{*v}
		}
	case []string:
		return nonemptyValues(v)
	}
	return nil
}
