package main

import (
	"encoding/xml"
	"log"
	"strings"
)

// MARCXML as embedded by Alma in holdings and bib responses

type marcXMLSubfield struct {
	Code  string `xml:"code,attr"`
	Value string `xml:",chardata"`
}

type marcXMLDataField struct {
	Tag       string            `xml:"tag,attr"`
	Ind1      string            `xml:"ind1,attr"`
	Ind2      string            `xml:"ind2,attr"`
	Subfields []marcXMLSubfield `xml:"subfield"`
}

type marcXMLControlField struct {
	Tag   string `xml:"tag,attr"`
	Value string `xml:",chardata"`
}

type marcXMLRecord struct {
	Leader        string                `xml:"leader"`
	ControlFields []marcXMLControlField `xml:"controlfield"`
	DataFields    []marcXMLDataField    `xml:"datafield"`
}

// Subfield is a single coded value inside a data field
type Subfield struct {
	Code byte
	Data string
}

// Field is a MARC data field
type Field struct {
	Tag        string
	Indicator1 byte
	Indicator2 byte
	Subfields  []Subfield
}

// ControlField is a MARC control field (00X)
type ControlField struct {
	Tag   string
	Value string
}

// Record is a parsed MARC record. Fields keep their record order.
type Record struct {
	Leader        string
	ControlFields []ControlField
	Fields        []Field
}

func parseMARCXML(data []byte) (*Record, error) {
	var raw marcXMLRecord
	if err := xml.Unmarshal(data, &raw); err != nil {
		log.Printf("ERROR: MARC XML parsing error: %v", err)
		return nil, err
	}
	return raw.toRecord(), nil
}

func (r *marcXMLRecord) toRecord() *Record {
	rec := Record{Leader: r.Leader}
	for _, cf := range r.ControlFields {
		rec.ControlFields = append(rec.ControlFields, ControlField{Tag: cf.Tag, Value: cf.Value})
	}
	for _, df := range r.DataFields {
		f := Field{
			Tag:        df.Tag,
			Indicator1: indicatorByte(df.Ind1),
			Indicator2: indicatorByte(df.Ind2),
		}
		for _, sf := range df.Subfields {
			if sf.Code == "" {
				continue
			}
			f.Subfields = append(f.Subfields, Subfield{Code: sf.Code[0], Data: sf.Value})
		}
		rec.Fields = append(rec.Fields, f)
	}
	return &rec
}

// missing and '#' indicators are both treated as blank
func indicatorByte(ind string) byte {
	if ind == "" || ind[0] == '#' {
		return ' '
	}
	return ind[0]
}

// GetFields returns all data fields with the given tag
func (r *Record) GetFields(tag string) []Field {
	if r == nil {
		return nil
	}
	var out []Field
	for _, f := range r.Fields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// GetControlField returns the value of the first control field with the given tag
func (r *Record) GetControlField(tag string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, cf := range r.ControlFields {
		if cf.Tag == tag {
			return cf.Value, true
		}
	}
	return "", false
}

// GetFirstFieldValue returns the data of the first subfield matching any of codes,
// looking only at the first field with the given tag.
func (r *Record) GetFirstFieldValue(tag string, codes ...string) (string, bool) {
	fields := r.GetFields(tag)
	if len(fields) == 0 {
		return "", false
	}
	for _, sf := range fields[0].Subfields {
		for _, code := range codes {
			if code != "" && sf.Code == code[0] {
				return sf.Data, true
			}
		}
	}
	return "", false
}

// GetSubfields returns the subfields matching any of codes, in field order
func (f Field) GetSubfields(codes ...string) []Subfield {
	var out []Subfield
	for _, sf := range f.Subfields {
		for _, code := range codes {
			if code != "" && sf.Code == code[0] {
				out = append(out, sf)
				break
			}
		}
	}
	return out
}

// GetSubfieldValues is GetSubfields reduced to the data strings
func (f Field) GetSubfieldValues(codes ...string) []string {
	var out []string
	for _, sf := range f.GetSubfields(codes...) {
		out = append(out, sf.Data)
	}
	return out
}

// GetIndicator returns indicator 1 or 2. Anything else is blank.
func (f Field) GetIndicator(pos int) byte {
	switch pos {
	case 1:
		return blankIfZero(f.Indicator1)
	case 2:
		return blankIfZero(f.Indicator2)
	}
	return ' '
}

func blankIfZero(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

// Title builds the display title: main title, subtitle, part number and part
// name (245 a, b, n, p) joined with " : "
func (r *Record) Title() string {
	var parts []string
	for _, code := range []string{"a", "b", "n", "p"} {
		val, _ := r.GetFirstFieldValue("245", code)
		if val = trimISBD(val); val != "" {
			parts = append(parts, val)
		}
	}
	return strings.Join(parts, " : ")
}

// strip trailing cataloging punctuation like " /" or " :"
func trimISBD(s string) string {
	s = strings.TrimSpace(s)
	for {
		trimmed := strings.TrimSpace(strings.TrimRight(s, "/:;=,"))
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
